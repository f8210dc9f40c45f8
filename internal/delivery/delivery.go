// Package delivery defines the contract shared by all inbound servers.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, consumer).
// Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
