// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is implemented by each serving surface (HTTP, workers).
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
