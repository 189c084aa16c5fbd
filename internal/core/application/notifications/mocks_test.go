package notifications_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"
)

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(ctx context.Context, email ports.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(ctx context.Context, creds ports.MessagingCredentials, msg ports.Message) error {
	args := m.Called(ctx, creds, msg)
	return args.Error(0)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) NotificationSent(channel string) {
	m.Called(channel)
}

func (m *MockMetrics) NotificationSkipped(channel, reason string) {
	m.Called(channel, reason)
}

func (m *MockMetrics) NotificationFailed(channel string) {
	m.Called(channel)
}

type knownTemplates map[string]bool

func (k knownTemplates) HasTemplate(id string) bool {
	if k == nil {
		return true
	}
	return k[id]
}

type orderOptions struct {
	phone     string
	mobile    string
	email     string
	prefs     order.Preferences
	status    order.Status
	total     int64
	advance   int64
	reference string
}

func defaultOrderOptions() orderOptions {
	return orderOptions{
		phone:     "0788 123 456",
		email:     "aline@example.com",
		prefs:     order.Preferences{Email: true, Messaging: true},
		status:    order.Draft,
		total:     1000,
		advance:   400,
		reference: "TO/00042",
	}
}

func newOrder(t *testing.T, opts orderOptions) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer(kernel.NewUUID(), "Aline", opts.phone, opts.mobile, opts.email)
	require.NoError(t, err)
	garment, err := order.NewGarment(order.Kandura, "linen", "white", "")
	require.NoError(t, err)
	payment, err := order.NewPayment(decimal.NewFromInt(opts.total), decimal.NewFromInt(opts.advance))
	require.NoError(t, err)
	currency, err := kernel.NewCurrency("RWF", "FRw")
	require.NoError(t, err)
	delivery := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	o, err := order.NewOrder(kernel.NewUUID(), opts.reference, customer, order.Details{
		Garment:      garment,
		Payment:      payment,
		Currency:     currency,
		OrderDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate: &delivery,
		Preferences:  opts.prefs,
	})
	require.NoError(t, err)

	if opts.status != order.Draft {
		_, err = o.ApplyStatus(opts.status)
		require.NoError(t, err)
		o.MarkEntriesPersisted()
	}
	return o
}

func notes(o *order.Order) []string {
	var bodies []string
	for _, e := range o.AuditTrail() {
		if e.Kind() == order.EntryNote {
			bodies = append(bodies, e.Body())
		}
	}
	return bodies
}
