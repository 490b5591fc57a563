// Package eventbus defines the contract for the event-driven seams of the
// application. Today that is notification dispatch; the bus stays narrow on
// purpose.
package eventbus

import "context"

// Event is anything that can travel on the bus. The type string routes the
// event to its registered handlers.
type Event interface {
	Type() string
}

// HandlerFunc consumes one event. Returning an error marks the delivery
// failed for transports that track acknowledgement; it never propagates to
// the emitter.
type HandlerFunc func(ctx context.Context, e Event) error

// Bus is the publish/consume contract. Emit is fire-and-forget from the
// caller's point of view: transport errors surface to the emitter, handler
// errors do not.
type Bus interface {
	Emit(ctx context.Context, event Event) error
	Register(eventType string, handler HandlerFunc)
}
