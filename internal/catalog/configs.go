// Package catalog holds the entity configurations and the reference data
// sets the dashboard searches.
package catalog

import "weighbridge/internal/domain"

// Field names used across the catalog.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldLicense   = "license"
	FieldDriver    = "driver"
	FieldType      = "type"
	FieldCarrier   = "carrier"
	FieldTare      = "tare"
	FieldLoads     = "loads"
	FieldLocation  = "location"
	FieldStatus    = "status"
	FieldTerms     = "terms"
	FieldCredit    = "credit"
	FieldOrder     = "order"
	FieldPO        = "po"
	FieldProject   = "project"
	FieldCustomer  = "customer"
	FieldJobSite   = "jobSite"
	FieldRemaining = "remaining"
	FieldDOT       = "dot"
	FieldCategory  = "category"
	FieldStockpile = "stockpile"
	FieldPrice     = "price"
)

var truckConfig = domain.EntityConfig{
	Slot:             domain.SlotTruck,
	ValueField:       FieldID,
	DisplayField:     FieldID,
	SearchableFields: []string{FieldID, FieldLicense, FieldDriver, FieldType, FieldCarrier, FieldTare},
	Columns: []domain.Column{
		{Label: "ID", Field: FieldID, MinWidth: 9},
		{Label: "LICENSE", Field: FieldLicense, MinWidth: 11},
		{Label: "DRIVER", Field: FieldDriver, MinWidth: 15},
		{Label: "TYPE", Field: FieldType, MinWidth: 9},
		{Label: "CARRIER", Field: FieldCarrier, MinWidth: 18},
		{Label: "TARE", Field: FieldTare, MinWidth: 6},
	},
	DetailColumns: []domain.Column{
		{Label: "LICENSE", Field: FieldLicense},
		{Label: "DRIVER", Field: FieldDriver},
		{Label: "TYPE", Field: FieldType},
		{Label: "CARRIER", Field: FieldCarrier},
		{Label: "TARE", Field: FieldTare},
		{Label: "LOADS", Field: FieldLoads},
	},
	Placeholder:  "Search truck...",
	EmptyMessage: "No trucks found",
}

var customerConfig = domain.EntityConfig{
	Slot:             domain.SlotCustomer,
	ValueField:       FieldName,
	DisplayField:     FieldName,
	SearchableFields: []string{FieldName, FieldID, FieldLocation, FieldStatus, FieldTerms},
	Columns: []domain.Column{
		{Label: "NAME", Field: FieldName, MinWidth: 18},
		{Label: "ID", Field: FieldID, MinWidth: 10},
		{Label: "LOCATION", Field: FieldLocation, MinWidth: 15},
		{Label: "STATUS", Field: FieldStatus, MinWidth: 9},
		{Label: "TERMS", Field: FieldTerms, MinWidth: 14},
		{Label: "CREDIT", Field: FieldCredit, MinWidth: 6},
	},
	DetailColumns: []domain.Column{
		{Label: "ID", Field: FieldID},
		{Label: "LOCATION", Field: FieldLocation},
		{Label: "STATUS", Field: FieldStatus},
		{Label: "TERMS", Field: FieldTerms},
		{Label: "CREDIT", Field: FieldCredit},
	},
	Placeholder:  "Search customer...",
	EmptyMessage: "No customers found",
}

var orderConfig = domain.EntityConfig{
	Slot:             domain.SlotOrder,
	ValueField:       FieldOrder,
	DisplayField:     FieldOrder,
	SearchableFields: []string{FieldOrder, FieldPO, FieldProject, FieldCustomer, FieldJobSite},
	Columns: []domain.Column{
		{Label: "ORDER", Field: FieldOrder, MinWidth: 9},
		{Label: "PO", Field: FieldPO, MinWidth: 8},
		{Label: "PROJECT", Field: FieldProject, MinWidth: 22},
		{Label: "CUSTOMER", Field: FieldCustomer, MinWidth: 17},
		{Label: "JOB SITE", Field: FieldJobSite, MinWidth: 18},
		{Label: "REMAINING", Field: FieldRemaining, MinWidth: 9},
	},
	DetailColumns: []domain.Column{
		{Label: "PO", Field: FieldPO},
		{Label: "PROJECT", Field: FieldProject},
		{Label: "CUSTOMER", Field: FieldCustomer},
		{Label: "JOB SITE", Field: FieldJobSite},
		{Label: "REMAINING", Field: FieldRemaining},
	},
	Placeholder:  "Search order...",
	EmptyMessage: "No orders found",
}

var productConfig = domain.EntityConfig{
	Slot:             domain.SlotProduct,
	ValueField:       FieldName,
	DisplayField:     FieldName,
	SearchableFields: []string{FieldName, FieldID, FieldDOT, FieldCategory, FieldStockpile},
	Columns: []domain.Column{
		{Label: "PRODUCT", Field: FieldName, MinWidth: 17},
		{Label: "ID", Field: FieldID, MinWidth: 9},
		{Label: "DOT", Field: FieldDOT, MinWidth: 10},
		{Label: "CATEGORY", Field: FieldCategory, MinWidth: 9},
		{Label: "STOCKPILE", Field: FieldStockpile, MinWidth: 12},
		{Label: "PRICE", Field: FieldPrice, MinWidth: 8},
	},
	DetailColumns: []domain.Column{
		{Label: "DOT", Field: FieldDOT},
		{Label: "CATEGORY", Field: FieldCategory},
		{Label: "STOCKPILE", Field: FieldStockpile},
		{Label: "PRICE", Field: FieldPrice},
	},
	Placeholder:  "Search product...",
	EmptyMessage: "No products found",
}

// Config returns the static configuration of a slot. Unknown slots fall
// back to the truck configuration.
func Config(slot domain.Slot) domain.EntityConfig {
	switch slot {
	case domain.SlotCustomer:
		return customerConfig
	case domain.SlotOrder:
		return orderConfig
	case domain.SlotProduct:
		return productConfig
	default:
		return truckConfig
	}
}
