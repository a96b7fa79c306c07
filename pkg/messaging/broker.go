package messaging

import (
	"context"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Event channels published by the portal.
const (
	ChannelPatientRegistered = "patient.registered"
	ChannelBookingCreated    = "booking.created"
)

// NoopBroker discards everything. Used when no broker is configured.
type NoopBroker struct{}

func NewNoopBroker() Broker {
	return &NoopBroker{}
}

func (b *NoopBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	return nil
}

func (b *NoopBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	ch := make(chan []byte)
	close(ch)
	return ch, nil
}

func (b *NoopBroker) Close() error {
	return nil
}
