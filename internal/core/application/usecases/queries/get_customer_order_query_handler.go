package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
)

// GetCustomerOrderQueryHandler serves the portal order detail page.
type GetCustomerOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrderQueryHandler(db *gorm.DB) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{db: db}
}

type customerOrderDetailRow struct {
	ID                       uuid.UUID
	Reference                string
	CustomerID               uuid.UUID
	CustomerName             string
	GarmentType              string
	GarmentFabric            string
	GarmentColor             string
	GarmentInstructions      string
	MeasurementChest         float64
	MeasurementWaist         float64
	MeasurementHip           float64
	MeasurementShoulderWidth float64
	MeasurementSleeveLength  float64
	MeasurementArmhole       float64
	MeasurementBackLength    float64
	MeasurementFrontLength   float64
	OrderDate                time.Time
	DeliveryDate             *time.Time
	Status                   string
	TotalAmount              decimal.Decimal
	AdvancePaid              decimal.Decimal
	CurrencySymbol           string
}

type activityRow struct {
	Kind      string
	OldStatus string
	NewStatus string
	Body      string
	CreatedAt time.Time
}

// Handle returns the order detail with its activity, oldest first. It fails
// with ObjectNotFoundError for unknown orders and ErrOrderNotOwned when the
// order belongs to someone else.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (GetCustomerOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerOrderQueryResponse{}, err
	}

	var row customerOrderDetailRow
	err := h.db.WithContext(ctx).Table("orders").
		Where("id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetCustomerOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetCustomerOrderQueryResponse{}, err
	}

	if row.CustomerID != query.CustomerID().Bytes() {
		return GetCustomerOrderQueryResponse{}, ErrOrderNotOwned
	}

	var activity []activityRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT kind, old_status, new_status, body, created_at
		FROM order_audit_entries
		WHERE order_id = ?
		ORDER BY created_at, id
	`, row.ID).Scan(&activity).Error; err != nil {
		return GetCustomerOrderQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetCustomerOrderQueryResponse{}, err
	}

	response := GetCustomerOrderQueryResponse{
		ID:           id,
		Reference:    row.Reference,
		CustomerName: row.CustomerName,
		GarmentType:  order.GarmentType(row.GarmentType),
		Fabric:       row.GarmentFabric,
		Color:        row.GarmentColor,
		Instructions: row.GarmentInstructions,
		Measurements: order.Measurements{
			Chest:         row.MeasurementChest,
			Waist:         row.MeasurementWaist,
			Hip:           row.MeasurementHip,
			ShoulderWidth: row.MeasurementShoulderWidth,
			SleeveLength:  row.MeasurementSleeveLength,
			Armhole:       row.MeasurementArmhole,
			BackLength:    row.MeasurementBackLength,
			FrontLength:   row.MeasurementFrontLength,
		},
		OrderDate:    row.OrderDate,
		DeliveryDate: row.DeliveryDate,
		Status:       order.Status(row.Status),
		Total:        row.TotalAmount,
		Advance:      row.AdvancePaid,
		BalanceDue:   row.TotalAmount.Sub(row.AdvancePaid),
		Currency:     row.CurrencySymbol,
		Activity:     make([]ActivityEntry, 0, len(activity)),
	}

	for _, a := range activity {
		response.Activity = append(response.Activity, ActivityEntry{
			Kind:      order.EntryKind(a.Kind),
			From:      order.Status(a.OldStatus),
			To:        order.Status(a.NewStatus),
			Body:      a.Body,
			CreatedAt: a.CreatedAt,
		})
	}

	return response, nil
}
