package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/logging"
)

type MockOrderCreator struct {
	mock.Mock
}

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

var fixedNow = time.Date(2026, 10, 17, 14, 30, 0, 0, time.UTC)

func newHandler(t *testing.T, creator *MockOrderCreator, store *MockIdempotencyStore) *SalesOrderConfirmedHandler {
	t.Helper()
	currency, err := kernel.NewCurrency("RWF", "FRw")
	require.NoError(t, err)

	h := NewSalesOrderConfirmedHandler(creator, store, currency, time.Hour, logging.Discard())
	h.now = func() time.Time { return fixedNow }
	return h
}

func confirmedSale() SalesOrderConfirmedEvent {
	return SalesOrderConfirmedEvent{
		Name: "S00042",
		Partner: Partner{
			ID:    "7b0c3a52-8d7e-4a55-9b8f-2f4c1d2e3a10",
			Name:  "Eric Nshimiyimana",
			Phone: "0788111222",
			Email: "eric@example.com",
		},
		GarmentType:     "trousers",
		FabricType:      "cotton",
		FabricColor:     "black",
		MeasureChest:    40,
		MeasureWaist:    32,
		MeasureSleeve:   24,
		MeasureShoulder: 18,
		AmountTotal:     decimal.NewFromInt(45000),
	}
}

func TestSalesOrderConfirmedHandler_CreatesOrder(t *testing.T) {
	ctx := t.Context()
	creator := new(MockOrderCreator)
	store := new(MockIdempotencyStore)

	store.On("Acquire", ctx, "sales_order:S00042", time.Hour).Return(true, nil).Once()
	creator.On("Handle", ctx, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		d := cmd.Details()
		return cmd.Reference() == "S00042" &&
			cmd.Customer().Name() == "Eric Nshimiyimana" &&
			d.Garment.Type() == order.Pants &&
			d.Garment.Fabric() == "cotton" &&
			d.Measurements.SleeveLength == 24 &&
			d.Measurements.ShoulderWidth == 18 &&
			d.Payment.Total().Equal(decimal.NewFromInt(45000)) &&
			d.Payment.Advance().IsZero() &&
			d.Currency.Symbol() == "FRw" &&
			d.DeliveryDate != nil &&
			d.DeliveryDate.Equal(time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC))
	})).Return("S00042", nil).Once()

	err := newHandler(t, creator, store).Handle(ctx, confirmedSale())

	require.NoError(t, err)
	creator.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestSalesOrderConfirmedHandler_UsesCommitmentDate(t *testing.T) {
	ctx := t.Context()
	creator := new(MockOrderCreator)
	store := new(MockIdempotencyStore)

	commitment := time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)
	ev := confirmedSale()
	ev.CommitmentDate = &commitment
	ev.GarmentType = "Dress"

	store.On("Acquire", ctx, mock.Anything, mock.Anything).Return(true, nil).Once()
	creator.On("Handle", ctx, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		d := cmd.Details()
		return d.Garment.Type() == order.Other && d.DeliveryDate.Equal(commitment)
	})).Return("S00042", nil).Once()

	require.NoError(t, newHandler(t, creator, store).Handle(ctx, ev))
	creator.AssertExpectations(t)
}

func TestSalesOrderConfirmedHandler_SkipsSalesWithoutGarment(t *testing.T) {
	creator := new(MockOrderCreator)
	store := new(MockIdempotencyStore)

	ev := confirmedSale()
	ev.GarmentType = ""

	require.NoError(t, newHandler(t, creator, store).Handle(t.Context(), ev))
	store.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
	creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSalesOrderConfirmedHandler_DropsInvalidPayload(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SalesOrderConfirmedEvent)
	}{
		{"missing name", func(ev *SalesOrderConfirmedEvent) { ev.Name = " " }},
		{"bad partner id", func(ev *SalesOrderConfirmedEvent) { ev.Partner.ID = "42" }},
		{"missing partner name", func(ev *SalesOrderConfirmedEvent) { ev.Partner.Name = "" }},
		{"unknown garment", func(ev *SalesOrderConfirmedEvent) { ev.GarmentType = "hat" }},
		{"negative measurement", func(ev *SalesOrderConfirmedEvent) { ev.MeasureWaist = -1 }},
		{"negative amount", func(ev *SalesOrderConfirmedEvent) { ev.AmountTotal = decimal.NewFromInt(-5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := new(MockOrderCreator)
			store := new(MockIdempotencyStore)

			ev := confirmedSale()
			tt.mutate(&ev)

			require.NoError(t, newHandler(t, creator, store).Handle(t.Context(), ev))
			creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestSalesOrderConfirmedHandler_SkipsDuplicates(t *testing.T) {
	ctx := t.Context()
	creator := new(MockOrderCreator)
	store := new(MockIdempotencyStore)
	store.On("Acquire", ctx, "sales_order:S00042", time.Hour).Return(false, nil).Once()

	require.NoError(t, newHandler(t, creator, store).Handle(ctx, confirmedSale()))
	creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSalesOrderConfirmedHandler_StoreFailureIsRetried(t *testing.T) {
	ctx := t.Context()
	creator := new(MockOrderCreator)
	store := new(MockIdempotencyStore)
	store.On("Acquire", ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down")).Once()

	err := newHandler(t, creator, store).Handle(ctx, confirmedSale())

	require.EqualError(t, err, "redis down")
}

func TestSalesOrderConfirmedHandler_CreateFailureReleasesKey(t *testing.T) {
	ctx := t.Context()
	creator := new(MockOrderCreator)
	store := new(MockIdempotencyStore)

	mock.InOrder(
		store.On("Acquire", ctx, "sales_order:S00042", time.Hour).Return(true, nil).Once(),
		creator.On("Handle", ctx, mock.Anything).Return("", errors.New("db down")).Once(),
		store.On("Release", ctx, "sales_order:S00042").Return(nil).Once(),
	)

	err := newHandler(t, creator, store).Handle(ctx, confirmedSale())

	require.EqualError(t, err, "db down")
	store.AssertExpectations(t)
}

func TestSalesOrderConfirmedHandler_ValidationFailureIsDropped(t *testing.T) {
	ctx := t.Context()
	creator := new(MockOrderCreator)
	store := new(MockIdempotencyStore)

	store.On("Acquire", ctx, mock.Anything, mock.Anything).Return(true, nil).Once()
	creator.On("Handle", ctx, mock.Anything).
		Return("", errs.NewValueIsInvalidErrorWithCause("reference", errors.New(`"S00042" is already used`))).Once()
	store.On("Release", ctx, "sales_order:S00042").Return(nil).Once()

	assert.NoError(t, newHandler(t, creator, store).Handle(ctx, confirmedSale()))
	store.AssertExpectations(t)
}
