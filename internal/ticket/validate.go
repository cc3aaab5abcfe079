// Package ticket validates and prints weighing tickets.
package ticket

import (
	"errors"
	"fmt"

	"weighbridge/internal/domain"
)

// Check identifies one print precondition.
type Check int

const (
	CheckScaleStable Check = iota
	CheckNetPositive
	CheckTruck
	CheckCustomer
	CheckOrder
	CheckProduct
)

// Sentinel errors, one per check, in evaluation order.
var (
	ErrNotStable   = errors.New("scale is not stable, wait for the reading to settle")
	ErrNoNetWeight = errors.New("net weight must be greater than zero")
	ErrNoTruck     = errors.New("select a truck")
	ErrNoCustomer  = errors.New("select a customer")
	ErrNoOrder     = errors.New("select an order")
	ErrNoProduct   = errors.New("select a product")
)

// ValidationError reports the first failing print check.
type ValidationError struct {
	Check Check
	Err   error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// Draft is everything needed to print a ticket.
type Draft struct {
	Reading   domain.Reading
	Selection domain.Selection
}

// Validate runs the print checks in order and returns the first failure,
// or nil when the draft can be printed.
func Validate(d Draft) error {
	checks := []struct {
		check Check
		ok    bool
		err   error
	}{
		{CheckScaleStable, d.Reading.Status == domain.ScaleStable, ErrNotStable},
		{CheckNetPositive, d.Reading.Net() > 0, ErrNoNetWeight},
		{CheckTruck, d.Selection.Get(domain.SlotTruck) != "", ErrNoTruck},
		{CheckCustomer, d.Selection.Get(domain.SlotCustomer) != "", ErrNoCustomer},
		{CheckOrder, d.Selection.Get(domain.SlotOrder) != "", ErrNoOrder},
		{CheckProduct, d.Selection.Get(domain.SlotProduct) != "", ErrNoProduct},
	}
	for _, c := range checks {
		if !c.ok {
			return &ValidationError{Check: c.check, Err: c.err}
		}
	}
	return nil
}

func (c Check) String() string {
	switch c {
	case CheckScaleStable:
		return "scale-stable"
	case CheckNetPositive:
		return "net-positive"
	case CheckTruck:
		return "truck"
	case CheckCustomer:
		return "customer"
	case CheckOrder:
		return "order"
	case CheckProduct:
		return "product"
	default:
		return fmt.Sprintf("check(%d)", int(c))
	}
}
