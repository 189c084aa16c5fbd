// Package messaging sends WhatsApp and SMS messages through Twilio.
package messaging

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"tailor/internal/core/ports"
)

// messageCreator is the slice of the Twilio REST API used here.
type messageCreator interface {
	CreateMessage(params *twilioapi.CreateMessageParams) (*twilioapi.ApiV2010Message, error)
}

// TwilioSender builds a client per call from the credentials it is given.
type TwilioSender struct {
	newClient func(creds ports.MessagingCredentials) messageCreator
}

func NewTwilioSender() *TwilioSender {
	return &TwilioSender{
		newClient: func(creds ports.MessagingCredentials) messageCreator {
			return twilio.NewRestClientWithParams(twilio.ClientParams{
				Username: creds.AccountID,
				Password: creds.AuthToken,
			}).Api
		},
	}
}

func (s *TwilioSender) Send(ctx context.Context, creds ports.MessagingCredentials, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(msg.From)
	params.SetTo(msg.To)
	params.SetBody(msg.Body)

	if _, err := s.newClient(creds).CreateMessage(params); err != nil {
		return fmt.Errorf("twilio: %w", err)
	}
	return nil
}

var _ ports.MessageSender = (*TwilioSender)(nil)
