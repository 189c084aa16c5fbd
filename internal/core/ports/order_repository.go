// Package ports defines the contracts between the tailoring application core
// and its infrastructure: persistence, notification providers, event
// publishing and idempotency.
package ports

import (
	"context"
	"time"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its pending audit entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order fields and its pending audit entries.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// AppendEntries persists only the pending audit entries of the order.
	// Used for notes recorded after the status change was committed.
	AppendEntries(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its full audit trail.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByReference retrieves an order by its human-facing reference.
	GetByReference(ctx context.Context, reference string) (*order.Order, error)

	// NextReference draws the next reference from the order sequence,
	// e.g. "TO/00042".
	NextReference(ctx context.Context) (string, error)

	// GetDueForDelivery retrieves orders whose delivery date lies in
	// [from, to) and whose status is one of statuses.
	GetDueForDelivery(ctx context.Context, from, to time.Time, statuses []order.Status) ([]*order.Order, error)
}
