package commands

import (
	"errors"
	"fmt"
	"strings"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/pkg/errs"
	"tailor/internal/pkg/guard"
)

var (
	ErrSendTestNotificationCommandIsNotConstructed = errors.New(
		"SendTestNotificationCommand must be created via NewSendTestNotificationCommand constructor",
	)
)

// Channel selects the notification channel of a test send.
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelMessaging Channel = "messaging"
)

func ParseChannel(s string) (Channel, error) {
	switch c := Channel(strings.ToLower(strings.TrimSpace(s))); c {
	case ChannelEmail, ChannelMessaging:
		return c, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not email or messaging", s))
	}
}

// SendTestNotificationCommand re-sends the notification of the current
// order status on one channel, ignoring the order's channel preferences.
type SendTestNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	channel     Channel
	targetPhone string

	guard guard.ConstructorGuard
}

// NewSendTestNotificationCommand creates the command. targetPhone overrides
// the customer phone for the messaging channel and may be empty.
func NewSendTestNotificationCommand(
	orderID kernel.UUID,
	channel Channel,
	targetPhone string,
) (SendTestNotificationCommand, error) {
	cmd := SendTestNotificationCommand{
		targetPhone: strings.TrimSpace(targetPhone),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setChannel(channel),
	); err != nil {
		return SendTestNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendTestNotificationCommand) Validate() error {
	return c.guard.Validate(ErrSendTestNotificationCommandIsNotConstructed)
}

func (c SendTestNotificationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SendTestNotificationCommand) Channel() Channel {
	return c.channel
}

func (c SendTestNotificationCommand) TargetPhone() string {
	return c.targetPhone
}

func (c *SendTestNotificationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SendTestNotificationCommand) setChannel(channel Channel) error {
	parsed, err := ParseChannel(string(channel))
	if err != nil {
		return err
	}

	c.channel = parsed
	return nil
}
