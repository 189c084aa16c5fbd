package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
)

// DefaultPageSize is used when the handler is given a non-positive page size.
const DefaultPageSize = 80

var productionStatuses = []string{
	order.Cutting.String(),
	order.Sewing.String(),
	order.Finishing.String(),
}

var closedStatuses = []string{
	order.Delivered.String(),
	order.Cancelled.String(),
}

var orderings = map[OrderSort]string{
	SortByDate:   "order_date DESC, reference",
	SortByName:   "reference",
	SortByStatus: "status, reference",
}

// ListCustomerOrdersQueryHandler serves the portal order list.
type ListCustomerOrdersQueryHandler struct {
	db       *gorm.DB
	pageSize int
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB, pageSize int) ListCustomerOrdersQueryHandler {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ListCustomerOrdersQueryHandler{db: db, pageSize: pageSize}
}

type customerOrderRow struct {
	ID             uuid.UUID
	Reference      string
	GarmentType    string
	OrderDate      time.Time
	DeliveryDate   *time.Time
	Status         string
	TotalAmount    decimal.Decimal
	AdvancePaid    decimal.Decimal
	CurrencySymbol string
}

// Handle returns one page of the customer's orders plus counters over all of
// them. A page past the end is clamped to the last page.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) (ListCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomerOrdersQueryResponse{}, err
	}

	customerID := query.CustomerID().Bytes()

	counters, err := h.counters(ctx, customerID)
	if err != nil {
		return ListCustomerOrdersQueryResponse{}, err
	}

	var total int64
	if err = h.filtered(ctx, customerID, query.FilterBy()).Count(&total).Error; err != nil {
		return ListCustomerOrdersQueryResponse{}, err
	}

	pager := newPager(query.Page(), h.pageSize, total)

	var rows []customerOrderRow
	if err = h.filtered(ctx, customerID, query.FilterBy()).
		Select("id, reference, garment_type, order_date, delivery_date, status, " +
			"total_amount, advance_paid, currency_symbol").
		Order(orderings[query.SortBy()]).
		Limit(pager.PageSize).
		Offset((pager.Page - 1) * pager.PageSize).
		Scan(&rows).Error; err != nil {
		return ListCustomerOrdersQueryResponse{}, err
	}

	orders := make([]CustomerOrderSummary, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return ListCustomerOrdersQueryResponse{}, idErr
		}

		orders = append(orders, CustomerOrderSummary{
			ID:           id,
			Reference:    row.Reference,
			GarmentType:  order.GarmentType(row.GarmentType),
			OrderDate:    row.OrderDate,
			DeliveryDate: row.DeliveryDate,
			Status:       order.Status(row.Status),
			Total:        row.TotalAmount,
			BalanceDue:   row.TotalAmount.Sub(row.AdvancePaid),
			Currency:     row.CurrencySymbol,
		})
	}

	return ListCustomerOrdersQueryResponse{
		Orders:   orders,
		Pager:    pager,
		Counters: counters,
		SortBy:   query.SortBy(),
		FilterBy: query.FilterBy(),
	}, nil
}

func (h ListCustomerOrdersQueryHandler) filtered(ctx context.Context, customerID uuid.UUID, filter OrderFilter) *gorm.DB {
	tx := h.db.WithContext(ctx).Table("orders").Where("customer_id = ?", customerID)

	switch filter {
	case FilterActive:
		tx = tx.Where("status NOT IN ?", closedStatuses)
	case FilterProduction:
		tx = tx.Where("status IN ?", productionStatuses)
	case FilterReady:
		tx = tx.Where("status = ?", order.Ready.String())
	case FilterDelivered:
		tx = tx.Where("status = ?", order.Delivered.String())
	case FilterAll:
	}

	return tx
}

func (h ListCustomerOrdersQueryHandler) counters(ctx context.Context, customerID uuid.UUID) (OrderCounters, error) {
	var counters OrderCounters
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status IN ?) AS in_production,
			COUNT(*) FILTER (WHERE status = ?) AS ready,
			COUNT(*) FILTER (WHERE status = ?) AS delivered
		FROM orders
		WHERE customer_id = ?
	`, productionStatuses, order.Ready.String(), order.Delivered.String(), customerID).
		Scan(&counters).Error

	return counters, err
}

func newPager(page, pageSize int, total int64) Pager {
	pageCount := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pageCount < 1 {
		pageCount = 1
	}

	page = min(max(page, 1), pageCount)

	return Pager{
		Page:      page,
		PageCount: pageCount,
		PageSize:  pageSize,
		Total:     total,
	}
}
