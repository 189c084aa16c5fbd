package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/guard"
)

var (
	ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
		"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
	)

	// ErrOrderNotOwned is returned when the order belongs to another customer.
	ErrOrderNotOwned = errors.New("order does not belong to the requesting customer")
)

// GetCustomerOrderQuery loads one order as seen by its customer.
type GetCustomerOrderQuery struct {
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerOrderQuery(customerID, orderID kernel.UUID) (GetCustomerOrderQuery, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return GetCustomerOrderQuery{}, err
	}

	return GetCustomerOrderQuery{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrderQuery) CustomerID() kernel.UUID { return q.customerID }
func (q GetCustomerOrderQuery) OrderID() kernel.UUID    { return q.orderID }

func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

// ActivityEntry is one line of the order's audit trail.
type ActivityEntry struct {
	Kind      order.EntryKind
	From      order.Status
	To        order.Status
	Body      string
	CreatedAt time.Time
}

type GetCustomerOrderQueryResponse struct {
	ID           kernel.UUID
	Reference    string
	CustomerName string
	GarmentType  order.GarmentType
	Fabric       string
	Color        string
	Instructions string
	Measurements order.Measurements
	OrderDate    time.Time
	DeliveryDate *time.Time
	Status       order.Status
	Total        decimal.Decimal
	Advance      decimal.Decimal
	BalanceDue   decimal.Decimal
	Currency     string
	Activity     []ActivityEntry
}
