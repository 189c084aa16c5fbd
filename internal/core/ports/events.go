package ports

import (
	"context"
	"time"
)

// StatusChangedEvent is published after an order status change commits.
type StatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	Reference  string    `json:"reference"`
	CustomerID string    `json:"customer_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangedAt  time.Time `json:"changed_at"`
}

// StatusChangedPublisher publishes status changes. Delivery is best-effort.
type StatusChangedPublisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error
}
