package http

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/order"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (string, error) {
	args := m.Called(ctx, cmd)
	return args.String(0), args.Error(1)
}

type MockTransitionApplier struct{ mock.Mock }

func (m *MockTransitionApplier) Handle(ctx context.Context, cmd commands.ApplyTransitionCommand) (order.AuditEntry, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.AuditEntry), args.Error(1)
}

type MockTestNotificationSender struct{ mock.Mock }

func (m *MockTestNotificationSender) Handle(ctx context.Context, cmd commands.SendTestNotificationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCustomerOrdersLister struct{ mock.Mock }

func (m *MockCustomerOrdersLister) Handle(
	ctx context.Context,
	query queries.ListCustomerOrdersQuery,
) (queries.ListCustomerOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListCustomerOrdersQueryResponse), args.Error(1)
}

type MockCustomerOrderGetter struct{ mock.Mock }

func (m *MockCustomerOrderGetter) Handle(
	ctx context.Context,
	query queries.GetCustomerOrderQuery,
) (queries.GetCustomerOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCustomerOrderQueryResponse), args.Error(1)
}

type observedRequest struct {
	method, path, status string
}

type fakeObserver struct {
	mu       sync.Mutex
	requests []observedRequest
}

func (f *fakeObserver) ObserveRequest(method, path, status string, _ float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, observedRequest{method: method, path: path, status: status})
}

func (f *fakeObserver) observed() []observedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]observedRequest(nil), f.requests...)
}
