package commands

import (
	"errors"
	"time"

	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"
)

var (
	ErrSendDeliveryRemindersCommandIsNotConstructed = errors.New(
		"SendDeliveryRemindersCommand must be created via NewSendDeliveryRemindersCommand constructor",
	)
)

// SendDeliveryRemindersCommand reminds customers whose in-production orders
// are due for delivery on the day containing now.
type SendDeliveryRemindersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewSendDeliveryRemindersCommand(now time.Time) (SendDeliveryRemindersCommand, error) {
	if now.IsZero() {
		return SendDeliveryRemindersCommand{}, errs.NewValueIsRequiredError("now")
	}
	return SendDeliveryRemindersCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendDeliveryRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryRemindersCommandIsNotConstructed)
}

func (c SendDeliveryRemindersCommand) Now() time.Time {
	return c.now
}
