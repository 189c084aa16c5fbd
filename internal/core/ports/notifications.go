package ports

import (
	"context"
)

// TemplateData is the order view rendered into email and message templates.
type TemplateData struct {
	CustomerName string
	Reference    string
	Status       string
	StatusLabel  string
	GarmentType  string
	OrderDate    string
	DeliveryDate string
	Total        string
	Advance      string
	Balance      string
	Currency     string
	CurrencyCode string
	PortalURL    string
	CompanyName  string
}

// Email is one outgoing templated email.
type Email struct {
	TemplateID string
	From       string
	ReplyTo    string
	To         string
	Data       TemplateData
}

// EmailSender delivers templated emails.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// EmailTemplates reports which template ids the email sender can render.
type EmailTemplates interface {
	HasTemplate(id string) bool
}

// MessagingCredentials authenticate against the messaging provider.
type MessagingCredentials struct {
	AccountID string
	AuthToken string
}

// Message is one outgoing WhatsApp or SMS message. From and To already
// carry the channel prefix.
type Message struct {
	From string
	To   string
	Body string
}

// MessageSender delivers messages through the messaging provider.
type MessageSender interface {
	Send(ctx context.Context, creds MessagingCredentials, msg Message) error
}

// NotificationMetrics counts notification outcomes per channel.
type NotificationMetrics interface {
	NotificationSent(channel string)
	NotificationSkipped(channel, reason string)
	NotificationFailed(channel string)
}
