package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"
	"tailor/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Orders start in draft status and send no notification.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	reference, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle creates the order and returns its reference. The reference is drawn
// from the order sequence inside the same transaction when the command has none.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	reference := cmd.Reference()
	if reference == "" {
		next, err := orderRepo.NextReference(ctx)
		if err != nil {
			return "", err
		}
		reference = next
	} else if err := h.ensureReferenceFree(ctx, orderRepo, reference); err != nil {
		return "", err
	}

	o, err := order.NewOrder(cmd.OrderID(), reference, cmd.Customer(), cmd.Details())
	if err != nil {
		return "", err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	h.logger.Info("order created", "order_id", o.ID().String(), "reference", o.Reference())
	return o.Reference(), nil
}

func (h CreateOrderCommandHandler) ensureReferenceFree(ctx context.Context, repo ports.OrderRepository, reference string) error {
	_, err := repo.GetByReference(ctx, reference)
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("reference", fmt.Errorf("%q is already used", reference))
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return err
	}
}
