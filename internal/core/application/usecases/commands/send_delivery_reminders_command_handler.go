package commands

import (
	"context"
	"log/slog"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/domain/services"
)

// SendDeliveryRemindersCommandHandler sends the delivery-day reminder for
// every due order. It never changes an order status. A failure on one order
// is logged and the batch moves on.
type SendDeliveryRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.DeliveryReminderPolicy
	notifier   ReminderNotifier
	logger     *slog.Logger
}

func NewSendDeliveryRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.DeliveryReminderPolicy,
	notifier ReminderNotifier,
	logger *slog.Logger,
) SendDeliveryRemindersCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SendDeliveryRemindersCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
		logger:     logger.With("component", "SendDeliveryRemindersCommandHandler"),
	}
}

// Handle returns the number of orders reminded. Only loading the due orders
// can fail the command.
func (h SendDeliveryRemindersCommandHandler) Handle(ctx context.Context, cmd SendDeliveryRemindersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	due, err := h.loadDue(ctx, cmd)
	if err != nil {
		return 0, err
	}

	for _, o := range due {
		if err = ctx.Err(); err != nil {
			return 0, err
		}

		h.notifier.SendDeliveryReminder(ctx, o)

		if err = persistNotes(ctx, h.uowFactory, o); err != nil {
			h.logger.Error("failed to persist reminder notes",
				"order_id", o.ID().String(),
				"reference", o.Reference(),
				"error", err,
			)
		}
	}

	h.logger.Info("delivery reminders processed", "orders", len(due))
	return len(due), nil
}

func (h SendDeliveryRemindersCommandHandler) loadDue(
	ctx context.Context,
	cmd SendDeliveryRemindersCommand,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	from, to := h.policy.Day(cmd.Now())
	orders, err := uow.OrderRepository().GetDueForDelivery(ctx, from, to, order.InProgressStatuses())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.policy.Filter(orders, cmd.Now()), nil
}
