// Package delivery groups the inbound transports of the application.
package delivery

import "context"

// Delivery is a transport started by the application and stopped through its fx lifecycle hook.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
