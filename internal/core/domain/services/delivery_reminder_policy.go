package services

import (
	"time"

	"tailor/internal/core/domain/model/order"
)

// DeliveryReminderPolicy selects orders that are due for delivery on a given
// day while still in production.
//
// An order is due when:
//   - its delivery date falls on the same calendar day as today, in loc
//   - its status is cutting, sewing, finishing or quality_check
//
// Orders already marked ready are excluded because the ready notification
// has told the customer to collect.
type DeliveryReminderPolicy struct {
	loc *time.Location
}

func NewDeliveryReminderPolicy(loc *time.Location) DeliveryReminderPolicy {
	if loc == nil {
		loc = time.UTC
	}
	return DeliveryReminderPolicy{loc: loc}
}

// Day returns the [start, end) bounds of the calendar day containing now.
func (p DeliveryReminderPolicy) Day(now time.Time) (time.Time, time.Time) {
	now = now.In(p.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)
	return start, start.AddDate(0, 0, 1)
}

func (p DeliveryReminderPolicy) IsDue(o *order.Order, now time.Time) bool {
	if o == nil || o.DeliveryDate() == nil || !o.Status().IsInProgress() {
		return false
	}
	start, end := p.Day(now)
	d := o.DeliveryDate().In(p.loc)
	return !d.Before(start) && d.Before(end)
}

// Filter keeps the due orders, preserving input order.
func (p DeliveryReminderPolicy) Filter(orders []*order.Order, now time.Time) []*order.Order {
	due := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if p.IsDue(o, now) {
			due = append(due, o)
		}
	}
	return due
}
