package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details groups the descriptive fields of an order that callers supply at
// creation time and that persistence hands back on restore.
type Details struct {
	Garment      Garment
	Measurements Measurements
	Payment      Payment
	Currency     kernel.Currency
	OrderDate    time.Time
	DeliveryDate *time.Time
	Preferences  Preferences
}

// Order is the aggregate root of one tailoring job.
//
// Order follows these invariants:
//   - id, reference and customer are always set
//   - status is one of the ten known statuses
//   - 0 <= advance <= total
//   - measurements are never negative
//   - the audit trail only grows, and every status write adds one entry
//
// Fields are private; all writes go through validated methods.
type Order struct {
	id           kernel.UUID
	reference    string
	customer     Customer
	garment      Garment
	measurements Measurements
	orderDate    time.Time
	deliveryDate *time.Time
	currency     kernel.Currency
	payment      Payment
	preferences  Preferences
	status       Status

	// auditTrail[persisted:] have not been written to storage yet.
	auditTrail []AuditEntry
	persisted  int

	isConstructed bool
}

// NewOrder creates a draft order.
//
// Parameters:
//   - id: unique identifier of the order
//   - reference: human-facing order number, e.g. "TO/00042"
//   - customer: contact snapshot used for notifications
//   - details: garment, measurements, payment, dates and preferences
//
// Example:
//
//	customer, _ := order.NewCustomer(kernel.NewUUID(), "Aline", "0788123456", "", "aline@example.com")
//	o, err := order.NewOrder(kernel.NewUUID(), "TO/00042", customer, details)
//	if err != nil {
//	    // validation error
//	}
func NewOrder(id kernel.UUID, reference string, customer Customer, details Details) (*Order, error) {
	o := &Order{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setCustomer(customer),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence. The given audit
// trail is considered already persisted.
func RestoreOrder(
	id kernel.UUID,
	reference string,
	customer Customer,
	details Details,
	status Status,
	auditTrail []AuditEntry,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setCustomer(customer),
		o.setDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.auditTrail = slices.Clone(auditTrail)
	o.persisted = len(o.auditTrail)
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Reference() string {
	return o.reference
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Garment() Garment {
	return o.garment
}

func (o *Order) Measurements() Measurements {
	return o.measurements
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns nil when no delivery date was agreed.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

func (o *Order) Currency() kernel.Currency {
	return o.currency
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) BalanceDue() decimal.Decimal {
	return o.payment.BalanceDue()
}

func (o *Order) Preferences() Preferences {
	return o.preferences
}

func (o *Order) Status() Status {
	return o.status
}

// SetPayment replaces the order amounts. The advance must lie in [0, total].
func (o *Order) SetPayment(total, advance decimal.Decimal) error {
	payment, err := NewPayment(total, advance)
	if err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) SetPreferences(p Preferences) {
	o.preferences = p
}

// ApplyStatus writes the new status and appends one status-change entry
// recording the old and new values. Any status may follow any other,
// including the current one.
//
// Returns:
//   - the appended audit entry
//   - a validation error if status is unknown; the order is left untouched
func (o *Order) ApplyStatus(status Status) (AuditEntry, error) {
	if err := status.Validate(); err != nil {
		return AuditEntry{}, err
	}

	entry := newStatusChangeEntry(o.status, status, time.Now().UTC())
	o.status = status
	o.auditTrail = append(o.auditTrail, entry)
	return entry, nil
}

func (o *Order) MarkReceived() (AuditEntry, error) {
	return o.ApplyStatus(Received)
}

func (o *Order) StartMeasurement() (AuditEntry, error) {
	return o.ApplyStatus(Measurement)
}

func (o *Order) StartCutting() (AuditEntry, error) {
	return o.ApplyStatus(Cutting)
}

func (o *Order) StartSewing() (AuditEntry, error) {
	return o.ApplyStatus(Sewing)
}

func (o *Order) StartFinishing() (AuditEntry, error) {
	return o.ApplyStatus(Finishing)
}

func (o *Order) StartQualityCheck() (AuditEntry, error) {
	return o.ApplyStatus(QualityCheck)
}

func (o *Order) MarkReady() (AuditEntry, error) {
	return o.ApplyStatus(Ready)
}

func (o *Order) MarkDelivered() (AuditEntry, error) {
	return o.ApplyStatus(Delivered)
}

func (o *Order) Cancel() (AuditEntry, error) {
	return o.ApplyStatus(Cancelled)
}

// RecordNote appends a free-text activity note. Blank notes are ignored.
func (o *Order) RecordNote(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	o.auditTrail = append(o.auditTrail, newNoteEntry(text, time.Now().UTC()))
}

// AuditTrail returns all entries, oldest first.
func (o *Order) AuditTrail() []AuditEntry {
	return slices.Clone(o.auditTrail)
}

// StatusChanges returns only the status-change entries, oldest first.
func (o *Order) StatusChanges() []AuditEntry {
	changes := make([]AuditEntry, 0, len(o.auditTrail))
	for _, e := range o.auditTrail {
		if e.Kind() == EntryStatusChange {
			changes = append(changes, e)
		}
	}
	return changes
}

// PendingEntries returns the entries appended since the order was created,
// restored or last marked as persisted.
func (o *Order) PendingEntries() []AuditEntry {
	return slices.Clone(o.auditTrail[o.persisted:])
}

func (o *Order) MarkEntriesPersisted() {
	o.persisted = len(o.auditTrail)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setDetails(d Details) error {
	if err := errors.Join(
		d.Garment.Type().Validate(),
		d.Measurements.Validate(),
		d.Currency.Validate(),
	); err != nil {
		return err
	}

	payment, err := NewPayment(d.Payment.Total(), d.Payment.Advance())
	if err != nil {
		return err
	}

	if d.OrderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}

	o.garment = d.Garment
	o.measurements = d.Measurements
	o.payment = payment
	o.currency = d.Currency
	o.orderDate = d.OrderDate
	o.deliveryDate = d.DeliveryDate
	o.preferences = d.Preferences
	return nil
}
