package ports

import "context"

// AlertSink is the outbound port for care-team notifications. The core
// decides when to alert; the sink decides how the alert reaches people.
type AlertSink interface {
	// Notify delivers one alert. A failed delivery surfaces as a
	// DELIVERY error.
	Notify(ctx context.Context, subject, message string) error
}

// EventPublisher publishes domain events to interested consumers
type EventPublisher interface {
	Publish(ctx context.Context, events ...interface{}) error
}
