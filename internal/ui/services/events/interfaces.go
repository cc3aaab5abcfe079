// Package events is the in-process bus the UI services use to notify each
// other and the root model.
package events

// EventBus publishes UI service events keyed by their Go type name
type EventBus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// NullBus drops every event. Services built with it work standalone.
type NullBus struct{}

func (n *NullBus) Publish(event interface{})                             {}
func (n *NullBus) Subscribe(eventType string, handler func(interface{})) {}
