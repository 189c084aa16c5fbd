package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
)

type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference      string          `gorm:"size:32;uniqueIndex;not null"`
	Customer       CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	Garment        GarmentDTO      `gorm:"embedded;embeddedPrefix:garment_"`
	Measurements   MeasurementsDTO `gorm:"embedded;embeddedPrefix:measurement_"`
	OrderDate      time.Time       `gorm:"type:timestamptz;not null;index"`
	DeliveryDate   *time.Time      `gorm:"type:timestamptz;index"`
	CurrencyCode   string          `gorm:"size:3;not null"`
	CurrencySymbol string          `gorm:"size:8"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AdvancePaid    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NotifyEmail    bool            `gorm:"not null"`
	NotifyMessage  bool            `gorm:"column:notify_messaging;not null"`
	Status         string          `gorm:"size:20;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;index"`
	Name   string    `gorm:"size:255;not null"`
	Phone  string    `gorm:"size:32"`
	Mobile string    `gorm:"size:32"`
	Email  string    `gorm:"size:255"`
}

type GarmentDTO struct {
	Type         string `gorm:"size:20;not null"`
	Fabric       string `gorm:"size:255"`
	Color        string `gorm:"size:64"`
	Instructions string `gorm:"type:text"`
}

type MeasurementsDTO struct {
	Chest         float64
	Waist         float64
	Hip           float64
	ShoulderWidth float64
	SleeveLength  float64
	Armhole       float64
	BackLength    float64
	FrontLength   float64
}

type AuditEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"size:20;not null"`
	OldStatus string    `gorm:"size:20"`
	NewStatus string    `gorm:"size:20"`
	Body      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (AuditEntryDTO) TableName() string {
	return "order_audit_entries"
}

func fromDomain(o *order.Order) OrderDTO {
	customer := o.Customer()
	garment := o.Garment()
	m := o.Measurements()
	payment := o.Payment()
	prefs := o.Preferences()

	return OrderDTO{
		ID:        o.ID().Bytes(),
		Reference: o.Reference(),
		Customer: CustomerDTO{
			ID:     customer.ID().Bytes(),
			Name:   customer.Name(),
			Phone:  customer.Phone(),
			Mobile: customer.Mobile(),
			Email:  customer.Email(),
		},
		Garment: GarmentDTO{
			Type:         string(garment.Type()),
			Fabric:       garment.Fabric(),
			Color:        garment.Color(),
			Instructions: garment.Instructions(),
		},
		Measurements: MeasurementsDTO{
			Chest:         m.Chest,
			Waist:         m.Waist,
			Hip:           m.Hip,
			ShoulderWidth: m.ShoulderWidth,
			SleeveLength:  m.SleeveLength,
			Armhole:       m.Armhole,
			BackLength:    m.BackLength,
			FrontLength:   m.FrontLength,
		},
		OrderDate:      o.OrderDate(),
		DeliveryDate:   o.DeliveryDate(),
		CurrencyCode:   o.Currency().Code(),
		CurrencySymbol: o.Currency().Symbol(),
		TotalAmount:    payment.Total(),
		AdvancePaid:    payment.Advance(),
		NotifyEmail:    prefs.Email,
		NotifyMessage:  prefs.Messaging,
		Status:         o.Status().String(),
	}
}

func entriesFromDomain(orderID kernel.UUID, entries []order.AuditEntry) []AuditEntryDTO {
	dtos := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, AuditEntryDTO{
			ID:        e.ID().Bytes(),
			OrderID:   orderID.Bytes(),
			Kind:      string(e.Kind()),
			OldStatus: e.From().String(),
			NewStatus: e.To().String(),
			Body:      e.Body(),
			CreatedAt: e.CreatedAt(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO, entryDTOs []AuditEntryDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.Customer.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		customerID, dto.Customer.Name, dto.Customer.Phone, dto.Customer.Mobile, dto.Customer.Email,
	)
	if err != nil {
		return nil, err
	}

	garment, err := order.NewGarment(
		order.GarmentType(dto.Garment.Type), dto.Garment.Fabric, dto.Garment.Color, dto.Garment.Instructions,
	)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(dto.TotalAmount, dto.AdvancePaid)
	if err != nil {
		return nil, err
	}

	currency, err := kernel.NewCurrency(dto.CurrencyCode, dto.CurrencySymbol)
	if err != nil {
		return nil, err
	}

	entries := make([]order.AuditEntry, 0, len(entryDTOs))
	for _, e := range entryDTOs {
		entryID, idErr := kernel.UUIDFromBytes(e.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		entry, entryErr := order.RestoreAuditEntry(
			entryID,
			order.EntryKind(e.Kind),
			order.Status(e.OldStatus),
			order.Status(e.NewStatus),
			e.Body,
			e.CreatedAt,
		)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	details := order.Details{
		Garment: garment,
		Measurements: order.Measurements{
			Chest:         dto.Measurements.Chest,
			Waist:         dto.Measurements.Waist,
			Hip:           dto.Measurements.Hip,
			ShoulderWidth: dto.Measurements.ShoulderWidth,
			SleeveLength:  dto.Measurements.SleeveLength,
			Armhole:       dto.Measurements.Armhole,
			BackLength:    dto.Measurements.BackLength,
			FrontLength:   dto.Measurements.FrontLength,
		},
		Payment:      payment,
		Currency:     currency,
		OrderDate:    dto.OrderDate,
		DeliveryDate: dto.DeliveryDate,
		Preferences:  order.Preferences{Email: dto.NotifyEmail, Messaging: dto.NotifyMessage},
	}

	return order.RestoreOrder(id, dto.Reference, customer, details, order.Status(dto.Status), entries)
}
