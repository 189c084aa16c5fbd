package commands

import (
	"context"
	"log/slog"

	"tailor/internal/core/domain/model/order"
)

// SendTestNotificationCommandHandler lets staff check a customer's contact
// details by sending the current-status notification on demand.
type SendTestNotificationCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ChannelNotifier
	logger     *slog.Logger
}

func NewSendTestNotificationCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ChannelNotifier,
	logger *slog.Logger,
) SendTestNotificationCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return SendTestNotificationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "SendTestNotificationCommandHandler"),
	}
}

// Handle returns an error only when the order cannot be loaded.
func (h SendTestNotificationCommandHandler) Handle(ctx context.Context, cmd SendTestNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.load(ctx, cmd)
	if err != nil {
		return err
	}

	switch cmd.Channel() {
	case ChannelEmail:
		h.notifier.SendEmail(ctx, o, o.Status())
	case ChannelMessaging:
		h.notifier.SendMessage(ctx, o, o, o.Status(), cmd.TargetPhone())
	}

	h.logger.Info("test notification dispatched",
		"order_id", o.ID().String(),
		"reference", o.Reference(),
		"channel", string(cmd.Channel()),
	)

	if err = persistNotes(ctx, h.uowFactory, o); err != nil {
		h.logger.Error("failed to persist notification notes", "order_id", o.ID().String(), "error", err)
	}

	return nil
}

func (h SendTestNotificationCommandHandler) load(
	ctx context.Context,
	cmd SendTestNotificationCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
