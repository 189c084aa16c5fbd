package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tailor/internal/core/application/notifications"
	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendEntries(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByReference(ctx context.Context, reference string) (*order.Order, error) {
	args := m.Called(ctx, reference)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) NextReference(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) GetDueForDelivery(
	ctx context.Context,
	from, to time.Time,
	statuses []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, from, to, statuses)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) StatusChanged(ctx context.Context, o *order.Order, status order.Status) {
	m.Called(ctx, o, status)
}

type MockChannelNotifier struct{ mock.Mock }

func (m *MockChannelNotifier) SendEmail(ctx context.Context, o *order.Order, status order.Status) {
	m.Called(ctx, o, status)
}

func (m *MockChannelNotifier) SendMessage(
	ctx context.Context,
	o *order.Order,
	notes notifications.NoteRecorder,
	status order.Status,
	targetPhone string,
) {
	m.Called(ctx, o, notes, status, targetPhone)
}

type MockReminderNotifier struct{ mock.Mock }

func (m *MockReminderNotifier) SendDeliveryReminder(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer(kernel.NewUUID(), "Aline", "0788123456", "", "aline@example.com")
	require.NoError(t, err)
	return c
}

func newDetails(t *testing.T) order.Details {
	t.Helper()
	garment, err := order.NewGarment(order.Thobe, "cotton", "white", "")
	require.NoError(t, err)
	payment, err := order.NewPayment(decimal.NewFromInt(1000), decimal.NewFromInt(400))
	require.NoError(t, err)
	currency, err := kernel.NewCurrency("RWF", "FRw")
	require.NoError(t, err)
	return order.Details{
		Garment:     garment,
		Payment:     payment,
		Currency:    currency,
		OrderDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Preferences: order.DefaultPreferences(),
	}
}

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "TO/00042", newCustomer(t), newDetails(t))
	require.NoError(t, err)
	if status != order.Draft {
		_, err = o.ApplyStatus(status)
		require.NoError(t, err)
	}
	o.MarkEntriesPersisted()
	return o
}
