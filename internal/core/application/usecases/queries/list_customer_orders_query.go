package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// OrderFilter narrows the portal order list by status.
type OrderFilter string

const (
	FilterAll        OrderFilter = "all"
	FilterActive     OrderFilter = "active"
	FilterProduction OrderFilter = "production"
	FilterReady      OrderFilter = "ready"
	FilterDelivered  OrderFilter = "delivered"
)

// ParseOrderFilter falls back to FilterAll for empty or unknown input.
func ParseOrderFilter(s string) OrderFilter {
	switch f := OrderFilter(s); f {
	case FilterAll, FilterActive, FilterProduction, FilterReady, FilterDelivered:
		return f
	default:
		return FilterAll
	}
}

// OrderSort orders the portal order list.
type OrderSort string

const (
	SortByDate   OrderSort = "date"
	SortByName   OrderSort = "name"
	SortByStatus OrderSort = "status"
)

// ParseOrderSort falls back to SortByDate for empty or unknown input.
func ParseOrderSort(s string) OrderSort {
	switch o := OrderSort(s); o {
	case SortByDate, SortByName, SortByStatus:
		return o
	default:
		return SortByDate
	}
}

// ListCustomerOrdersQuery pages through the orders of one customer.
//
// Example:
//
//	query, err := NewListCustomerOrdersQuery(customerID, 2, "name", "active")
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListCustomerOrdersQuery struct {
	customerID kernel.UUID
	page       int
	sortBy     OrderSort
	filterBy   OrderFilter

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery builds the query. Pages below 1 become 1; unknown
// sort and filter keys fall back to their defaults.
func NewListCustomerOrdersQuery(
	customerID kernel.UUID,
	page int,
	sortBy, filterBy string,
) (ListCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	if page < 1 {
		page = 1
	}

	return ListCustomerOrdersQuery{
		customerID: customerID,
		page:       page,
		sortBy:     ParseOrderSort(sortBy),
		filterBy:   ParseOrderFilter(filterBy),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }
func (q ListCustomerOrdersQuery) Page() int               { return q.page }
func (q ListCustomerOrdersQuery) SortBy() OrderSort       { return q.sortBy }
func (q ListCustomerOrdersQuery) FilterBy() OrderFilter   { return q.filterBy }

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// CustomerOrderSummary is one row of the portal order list.
type CustomerOrderSummary struct {
	ID           kernel.UUID
	Reference    string
	GarmentType  order.GarmentType
	OrderDate    time.Time
	DeliveryDate *time.Time
	Status       order.Status
	Total        decimal.Decimal
	BalanceDue   decimal.Decimal
	Currency     string
}

// Pager describes the page returned out of the filtered result set.
type Pager struct {
	Page      int
	PageCount int
	PageSize  int
	Total     int64
}

// OrderCounters summarize all orders of the customer, ignoring the filter.
type OrderCounters struct {
	Total        int64
	InProduction int64
	Ready        int64
	Delivered    int64
}

type ListCustomerOrdersQueryResponse struct {
	Orders   []CustomerOrderSummary
	Pager    Pager
	Counters OrderCounters
	SortBy   OrderSort
	FilterBy OrderFilter
}
