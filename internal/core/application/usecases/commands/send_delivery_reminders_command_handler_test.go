package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/domain/services"
	"tailor/internal/pkg/logging"
)

func dueOrder(t *testing.T, status order.Status, delivery time.Time) *order.Order {
	t.Helper()
	details := newDetails(t)
	details.DeliveryDate = &delivery
	o, err := order.NewOrder(kernel.NewUUID(), "TO/00100", newCustomer(t), details)
	require.NoError(t, err)
	_, err = o.ApplyStatus(status)
	require.NoError(t, err)
	o.MarkEntriesPersisted()
	return o
}

func TestNewSendDeliveryRemindersCommand(t *testing.T) {
	_, err := commands.NewSendDeliveryRemindersCommand(time.Time{})
	require.Error(t, err)

	cmd, err := commands.NewSendDeliveryRemindersCommand(time.Now())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestSendDeliveryRemindersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	sewing := dueOrder(t, order.Sewing, now)
	qc := dueOrder(t, order.QualityCheck, now)
	ready := dueOrder(t, order.Ready, now)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockReminderNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetDueForDelivery", ctx, start, end, order.InProgressStatuses()).
		Return([]*order.Order{sewing, qc, ready}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("SendDeliveryReminder", ctx, sewing).Once()
	notifier.On("SendDeliveryReminder", ctx, qc).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, _ := commands.NewSendDeliveryRemindersCommand(now)
	h := commands.NewSendDeliveryRemindersCommandHandler(
		factory, services.NewDeliveryReminderPolicy(time.UTC), notifier, logging.Discard(),
	)
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	notifier.AssertExpectations(t)
	notifier.AssertNotCalled(t, "SendDeliveryReminder", ctx, ready)
	assert.Equal(t, order.Sewing, sewing.Status())
	assert.Equal(t, order.QualityCheck, qc.Status())
}

func TestSendDeliveryRemindersCommandHandler_Handle_ContinuesAfterNoteFailure(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	first := dueOrder(t, order.Cutting, now)
	second := dueOrder(t, order.Finishing, now)

	repo := new(MockOrderRepository)
	loadUoW := new(MockOrderUoW)
	failingUoW := new(MockOrderUoW)
	noteUoW := new(MockOrderUoW)
	notifier := new(MockReminderNotifier)

	loadUoW.On("Begin", ctx).Return(nil)
	loadUoW.On("OrderRepository").Return(repo)
	loadUoW.On("Commit", ctx).Return(nil)
	loadUoW.On("Rollback", ctx).Return(nil)
	repo.On("GetDueForDelivery", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]*order.Order{first, second}, nil)

	recordNote := func(args mock.Arguments) {
		args.Get(1).(*order.Order).RecordNote("WhatsApp message sent")
	}
	notifier.On("SendDeliveryReminder", ctx, first).Run(recordNote).Once()
	notifier.On("SendDeliveryReminder", ctx, second).Run(recordNote).Once()

	failingUoW.On("Begin", ctx).Return(errors.New("pool exhausted"))

	noteUoW.On("Begin", ctx).Return(nil)
	noteUoW.On("OrderRepository").Return(repo)
	noteUoW.On("Commit", ctx).Return(nil)
	noteUoW.On("Rollback", ctx).Return(nil)
	repo.On("AppendEntries", ctx, second).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(loadUoW).Once()
	factory.On("Create").Return(failingUoW).Once()
	factory.On("Create").Return(noteUoW).Once()

	cmd, _ := commands.NewSendDeliveryRemindersCommand(now)
	h := commands.NewSendDeliveryRemindersCommandHandler(
		factory, services.NewDeliveryReminderPolicy(time.UTC), notifier, logging.Discard(),
	)
	count, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	notifier.AssertExpectations(t)
	repo.AssertExpectations(t)
	assert.Len(t, first.PendingEntries(), 1)
	assert.Empty(t, second.PendingEntries())
}

func TestSendDeliveryRemindersCommandHandler_Handle_LoadError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("GetDueForDelivery", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("query failed"))

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockReminderNotifier)

	cmd, _ := commands.NewSendDeliveryRemindersCommand(time.Now())
	h := commands.NewSendDeliveryRemindersCommandHandler(
		factory, services.NewDeliveryReminderPolicy(time.UTC), notifier, logging.Discard(),
	)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "query failed")
	notifier.AssertNotCalled(t, "SendDeliveryReminder", mock.Anything, mock.Anything)
}
