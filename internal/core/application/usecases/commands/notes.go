package commands

import (
	"context"

	"tailor/internal/core/domain/model/order"
)

// persistNotes writes the audit entries recorded on o after its last commit,
// in a short transaction of its own.
func persistNotes(ctx context.Context, uowFactory OrderUoWFactory, o *order.Order) error {
	if len(o.PendingEntries()) == 0 {
		return nil
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().AppendEntries(ctx, o); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	o.MarkEntriesPersisted()
	return nil
}
