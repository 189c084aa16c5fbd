package commands

import (
	"context"

	"tailor/internal/core/application/notifications"
	"tailor/internal/core/domain/model/order"
)

// Notification capabilities used by the command handlers. All of them are
// fire-and-forget: outcomes are logged and recorded as order notes by the
// implementation, never returned.
type (
	// StatusNotifier notifies the customer of a status change on the
	// channels enabled for the order.
	StatusNotifier interface {
		StatusChanged(ctx context.Context, o *order.Order, status order.Status)
	}

	// ChannelNotifier sends one channel regardless of order preferences.
	ChannelNotifier interface {
		SendEmail(ctx context.Context, o *order.Order, status order.Status)
		SendMessage(
			ctx context.Context,
			o *order.Order,
			notes notifications.NoteRecorder,
			status order.Status,
			targetPhone string,
		)
	}

	// ReminderNotifier sends the delivery-day reminder.
	ReminderNotifier interface {
		SendDeliveryReminder(ctx context.Context, o *order.Order)
	}
)
