package order

import (
	"fmt"

	"tailor/internal/pkg/errs"
)

// Transition names one of the nine lifecycle operations.
type Transition string

const (
	TransitionMarkReceived     Transition = "mark_received"
	TransitionStartMeasurement Transition = "start_measurement"
	TransitionStartCutting     Transition = "start_cutting"
	TransitionStartSewing      Transition = "start_sewing"
	TransitionStartFinishing   Transition = "start_finishing"
	TransitionQualityCheck     Transition = "quality_check"
	TransitionMarkReady        Transition = "mark_ready"
	TransitionMarkDelivered    Transition = "mark_delivered"
	TransitionCancel           Transition = "cancel"
)

type transitionSpec struct {
	target Status
	apply  func(*Order) (AuditEntry, error)
}

var transitionSpecs = map[Transition]transitionSpec{
	TransitionMarkReceived:     {Received, (*Order).MarkReceived},
	TransitionStartMeasurement: {Measurement, (*Order).StartMeasurement},
	TransitionStartCutting:     {Cutting, (*Order).StartCutting},
	TransitionStartSewing:      {Sewing, (*Order).StartSewing},
	TransitionStartFinishing:   {Finishing, (*Order).StartFinishing},
	TransitionQualityCheck:     {QualityCheck, (*Order).StartQualityCheck},
	TransitionMarkReady:        {Ready, (*Order).MarkReady},
	TransitionMarkDelivered:    {Delivered, (*Order).MarkDelivered},
	TransitionCancel:           {Cancelled, (*Order).Cancel},
}

// Transitions lists the nine operations in workflow order.
func Transitions() []Transition {
	return []Transition{
		TransitionMarkReceived,
		TransitionStartMeasurement,
		TransitionStartCutting,
		TransitionStartSewing,
		TransitionStartFinishing,
		TransitionQualityCheck,
		TransitionMarkReady,
		TransitionMarkDelivered,
		TransitionCancel,
	}
}

func ParseTransition(s string) (Transition, error) {
	t := Transition(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Transition) Validate() error {
	if _, ok := transitionSpecs[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("%q is not a known transition", string(t)))
	}
	return nil
}

// Target is the status the transition writes.
func (t Transition) Target() Status {
	return transitionSpecs[t].target
}

// Apply runs the named operation on o.
func (t Transition) Apply(o *Order) (AuditEntry, error) {
	spec, ok := transitionSpecs[t]
	if !ok {
		return AuditEntry{}, t.Validate()
	}
	return spec.apply(o)
}

func (t Transition) String() string {
	return string(t)
}
