package kafka

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"
	"tailor/internal/pkg/errs"
)

// DefaultDeliveryLeadTime applies when a sale has no commitment date.
const DefaultDeliveryLeadTime = 7 * 24 * time.Hour

// SalesOrderConfirmedEvent is the payload of a confirmed sale.
type SalesOrderConfirmedEvent struct {
	Name            string          `json:"name"`
	Partner         Partner         `json:"partner"`
	GarmentType     string          `json:"garment_type"`
	FabricType      string          `json:"fabric_type"`
	FabricColor     string          `json:"fabric_color"`
	MeasureChest    float64         `json:"measure_chest"`
	MeasureWaist    float64         `json:"measure_waist"`
	MeasureSleeve   float64         `json:"measure_sleeve"`
	MeasureShoulder float64         `json:"measure_shoulder"`
	AmountTotal     decimal.Decimal `json:"amount_total"`
	CurrencyCode    string          `json:"currency_code"`
	DateOrder       *time.Time      `json:"date_order"`
	CommitmentDate  *time.Time      `json:"commitment_date"`
}

// Partner is the customer of a confirmed sale.
type Partner struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

var saleGarmentTypes = map[string]order.GarmentType{
	"suit":     order.Suit,
	"shirt":    order.Shirt,
	"trousers": order.Pants,
	"dress":    order.Other,
}

// OrderCreator creates tailoring orders.
type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (string, error)
}

// SalesOrderConfirmedHandler creates one tailoring order per confirmed sale
// that carries a garment type.
type SalesOrderConfirmedHandler struct {
	creator     OrderCreator
	idempotency ports.IdempotencyStore
	currency    kernel.Currency
	ttl         time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

func NewSalesOrderConfirmedHandler(
	creator OrderCreator,
	idempotency ports.IdempotencyStore,
	currency kernel.Currency,
	ttl time.Duration,
	logger *slog.Logger,
) *SalesOrderConfirmedHandler {
	return &SalesOrderConfirmedHandler{
		creator:     creator,
		idempotency: idempotency,
		currency:    currency,
		ttl:         ttl,
		now:         time.Now,
		logger:      logger.With("component", "SalesOrderConfirmedHandler"),
	}
}

// Handle returns an error only for failures worth redelivering. Invalid
// payloads and duplicates are logged and dropped.
func (h *SalesOrderConfirmedHandler) Handle(ctx context.Context, ev SalesOrderConfirmedEvent) error {
	if strings.TrimSpace(ev.GarmentType) == "" {
		h.logger.DebugContext(ctx, "sale has no garment type, skipping", "sale_order", ev.Name)
		return nil
	}

	cmd, err := h.toCommand(ev)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid sales order confirmation", "sale_order", ev.Name, "error", err)
		return nil
	}

	key := "sales_order:" + cmd.Reference()
	acquired, err := h.idempotency.Acquire(ctx, key, h.ttl)
	if err != nil {
		return err
	}
	if !acquired {
		h.logger.InfoContext(ctx, "sales order already processed", "sale_order", ev.Name)
		return nil
	}

	reference, err := h.creator.Handle(ctx, cmd)
	if err != nil {
		if releaseErr := h.idempotency.Release(ctx, key); releaseErr != nil {
			h.logger.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", releaseErr)
		}
		if errs.IsValidation(err) {
			h.logger.WarnContext(ctx, "rejected sales order confirmation", "sale_order", ev.Name, "error", err)
			return nil
		}
		return err
	}

	h.logger.InfoContext(ctx, "tailoring order created from sale", "sale_order", ev.Name, "reference", reference)
	return nil
}

func (h *SalesOrderConfirmedHandler) toCommand(ev SalesOrderConfirmedEvent) (commands.CreateOrderCommand, error) {
	reference := strings.TrimSpace(ev.Name)
	if reference == "" {
		return commands.CreateOrderCommand{}, errs.NewValueIsRequiredError("name")
	}

	customerID, err := kernel.UUIDFromString(ev.Partner.ID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	customer, err := order.NewCustomer(
		customerID, ev.Partner.Name, ev.Partner.Phone, ev.Partner.Mobile, ev.Partner.Email,
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	garmentType, err := mapGarmentType(ev.GarmentType)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	garment, err := order.NewGarment(garmentType, ev.FabricType, ev.FabricColor, "")
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	payment, err := order.NewPayment(ev.AmountTotal, decimal.Zero)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	currency, err := h.resolveCurrency(ev.CurrencyCode)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	now := h.now().UTC()
	orderDate := now
	if ev.DateOrder != nil {
		orderDate = ev.DateOrder.UTC()
	}

	delivery := now.Truncate(24 * time.Hour).Add(DefaultDeliveryLeadTime)
	if ev.CommitmentDate != nil {
		delivery = ev.CommitmentDate.UTC()
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), reference, customer, order.Details{
		Garment: garment,
		Measurements: order.Measurements{
			Chest:         ev.MeasureChest,
			Waist:         ev.MeasureWaist,
			SleeveLength:  ev.MeasureSleeve,
			ShoulderWidth: ev.MeasureShoulder,
		},
		Payment:      payment,
		Currency:     currency,
		OrderDate:    orderDate,
		DeliveryDate: &delivery,
		Preferences:  order.DefaultPreferences(),
	})
}

func (h *SalesOrderConfirmedHandler) resolveCurrency(code string) (kernel.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || code == h.currency.Code() {
		return h.currency, nil
	}
	return kernel.NewCurrency(code, "")
}

func mapGarmentType(raw string) (order.GarmentType, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if t, ok := saleGarmentTypes[raw]; ok {
		return t, nil
	}
	return order.ParseGarmentType(raw)
}
