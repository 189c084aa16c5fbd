package order

import (
	"fmt"
	"slices"

	"tailor/internal/pkg/errs"
)

// Status is the production stage of an order.
//
//	draft ─> received ─> measurement ─> cutting ─> sewing ─> finishing ─> quality_check ─> ready ─> delivered
//	                                                                                         (any) ─> cancelled
//
// The arrows show the intended workflow only; transitions are not restricted.
type Status string

const (
	Draft        Status = "draft"
	Received     Status = "received"
	Measurement  Status = "measurement"
	Cutting      Status = "cutting"
	Sewing       Status = "sewing"
	Finishing    Status = "finishing"
	QualityCheck Status = "quality_check"
	Ready        Status = "ready"
	Delivered    Status = "delivered"
	Cancelled    Status = "cancelled"
)

var statusLabels = map[Status]string{
	Draft:        "Draft",
	Received:     "Received",
	Measurement:  "Measurement",
	Cutting:      "Cutting",
	Sewing:       "Sewing",
	Finishing:    "Finishing",
	QualityCheck: "Quality Check",
	Ready:        "Ready for Delivery",
	Delivered:    "Delivered",
	Cancelled:    "Cancelled",
}

var allStatuses = []Status{
	Draft, Received, Measurement, Cutting, Sewing, Finishing, QualityCheck, Ready, Delivered, Cancelled,
}

// Orders in these stages get a reminder on their delivery day.
var inProgressStatuses = []Status{Cutting, Sewing, Finishing, QualityCheck}

// Statuses returns every status in workflow order.
func Statuses() []Status {
	return slices.Clone(allStatuses)
}

// InProgressStatuses returns the production stages covered by delivery reminders.
func InProgressStatuses() []Status {
	return slices.Clone(inProgressStatuses)
}

// ParseStatus converts a stored or submitted value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := statusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// Label is the human-readable name used in audit entries and notifications.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Status) IsInProgress() bool {
	return slices.Contains(inProgressStatuses, s)
}

// IsFinal reports whether the workflow considers the order closed. It is
// informational; closed orders still accept transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}
