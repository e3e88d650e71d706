package messaging

import (
	"context"
	"io"
	"time"
)

// Messaging is a client that can publish and consume messages.
//
// Business code depends on this interface rather than the broker client so
// use cases stay testable without a running broker.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher publishes messages to a subject.
type Publisher interface {
	// Publish sends a message to the subject.
	Publish(ctx context.Context, subject string, msg OutgoingMessage) (PublishResult, error)
}

// Consumer consumes messages from a subject.
type Consumer interface {
	// Consume starts consuming messages from the subject. It blocks until the
	// context is canceled.
	Consume(ctx context.Context, subject string, handler Handler, opts ...ConsumeOption) error
}

// Handler processes a received message.
//
// Returning a non-nil error does not imply any particular broker behavior.
// With auto-ack enabled the wrapper acks on nil and nacks on error.
type Handler func(ctx context.Context, msg Message) error

// OutgoingMessage represents a message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte

	// Headers support arbitrary binary values and duplicate keys.
	Headers []Header
}

// Header is a key/value pair used for message headers.
type Header struct {
	// Key is the header name.
	Key string
	// Value is the header value.
	Value []byte
}

// PublishResult carries publish metadata.
type PublishResult struct {
	// Subject is the subject the message was published to.
	Subject string

	// Timestamp is when the client accepted the message.
	Timestamp time.Time
}

// Message is a received message.
type Message interface {
	// Body returns the message payload.
	Body() []byte
	// Headers returns message headers.
	Headers() []Header
	// Subject returns the subject the message arrived on.
	Subject() string
	// Timestamp returns when the message was received.
	Timestamp() time.Time

	// Ack acknowledges successful processing.
	Ack(ctx context.Context) error
}

// Nackable can request a message redelivery.
type Nackable interface {
	// Nack requests a message redelivery.
	Nack(ctx context.Context) error
}

// RawCarrier exposes the underlying broker message type.
type RawCarrier interface {
	// Raw returns the underlying broker message type.
	Raw() any
}
