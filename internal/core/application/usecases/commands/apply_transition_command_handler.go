package commands

import (
	"context"
	"log/slog"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"
)

// ApplyTransitionCommandHandler runs one lifecycle transition:
//  1. load the order, write the status and its audit entry, commit
//  2. publish a status-changed event, best-effort
//  3. notify the customer on the enabled channels
//  4. persist the notes the notification step recorded
//
// Only step 1 can fail the command. Nothing after the commit undoes it.
//
// Example:
//
//	handler := NewApplyTransitionCommandHandler(uowFactory, dispatcher, publisher, logger)
//	cmd, _ := NewApplyTransitionCommand(orderID, order.TransitionStartSewing)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // validation, not found or storage error; no notification was sent
//	}
type ApplyTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   StatusNotifier
	publisher  ports.StatusChangedPublisher
	logger     *slog.Logger
}

// NewApplyTransitionCommandHandler creates the handler. publisher may be nil
// when no event stream is configured.
func NewApplyTransitionCommandHandler(
	uowFactory OrderUoWFactory,
	notifier StatusNotifier,
	publisher ports.StatusChangedPublisher,
	logger *slog.Logger,
) ApplyTransitionCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger.With("component", "ApplyTransitionCommandHandler"),
	}
}

// Handle applies the transition and returns the resulting audit entry.
func (h ApplyTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyTransitionCommand) (order.AuditEntry, error) {
	if err := cmd.Validate(); err != nil {
		return order.AuditEntry{}, err
	}

	o, entry, err := h.apply(ctx, cmd)
	if err != nil {
		return order.AuditEntry{}, err
	}

	logger := h.logger.With("order_id", o.ID().String(), "reference", o.Reference())
	logger.Info("order status changed",
		"old_status", entry.From().String(),
		"new_status", entry.To().String(),
		"transition", cmd.Transition().String(),
	)

	if h.publisher != nil {
		event := ports.StatusChangedEvent{
			OrderID:    o.ID().String(),
			Reference:  o.Reference(),
			CustomerID: o.Customer().ID().String(),
			OldStatus:  entry.From().String(),
			NewStatus:  entry.To().String(),
			ChangedAt:  entry.CreatedAt(),
		}
		if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
			logger.Warn("failed to publish status change", "error", err)
		}
	}

	h.notifier.StatusChanged(ctx, o, entry.To())

	if err = persistNotes(ctx, h.uowFactory, o); err != nil {
		logger.Error("failed to persist notification notes", "error", err)
	}

	return entry, nil
}

func (h ApplyTransitionCommandHandler) apply(
	ctx context.Context,
	cmd ApplyTransitionCommand,
) (*order.Order, order.AuditEntry, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.AuditEntry{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, order.AuditEntry{}, err
	}

	entry, err := cmd.Transition().Apply(o)
	if err != nil {
		return nil, order.AuditEntry{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, order.AuditEntry{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, order.AuditEntry{}, err
	}

	o.MarkEntriesPersisted()
	return o, entry, nil
}
