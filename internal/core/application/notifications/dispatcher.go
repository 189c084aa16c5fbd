package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/domain/services"
	"tailor/internal/core/ports"
)

const (
	ChannelEmail     = "email"
	ChannelMessaging = "messaging"
)

// Skip reasons reported to NotificationMetrics.
const (
	SkipNoTemplate       = "no_template"
	SkipNoRecipient      = "no_recipient"
	SkipNoCredentials    = "no_credentials"
	SkipInvalidRecipient = "invalid_recipient"
)

// NoteRecorder is the one write capability the dispatcher needs on an order.
type NoteRecorder interface {
	RecordNote(text string)
}

// Dispatcher routes an order event to the email and messaging providers.
type Dispatcher struct {
	catalog    *Catalog
	settings   SettingsSource
	normalizer services.PhoneNormalizer
	email      ports.EmailSender
	messages   ports.MessageSender
	metrics    ports.NotificationMetrics
	logger     *slog.Logger
}

func NewDispatcher(
	catalog *Catalog,
	settings SettingsSource,
	normalizer services.PhoneNormalizer,
	email ports.EmailSender,
	messages ports.MessageSender,
	metrics ports.NotificationMetrics,
	logger *slog.Logger,
) (*Dispatcher, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if settings == nil {
		return nil, errors.New("settings source is required")
	}
	if email == nil {
		return nil, errors.New("email sender is required")
	}
	if messages == nil {
		return nil, errors.New("message sender is required")
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		catalog:    catalog,
		settings:   settings,
		normalizer: normalizer,
		email:      email,
		messages:   messages,
		metrics:    metrics,
		logger:     logger.With("component", "NotificationDispatcher"),
	}, nil
}

// StatusChanged notifies the customer of status on every enabled channel.
// Email runs first; its outcome has no effect on messaging. Settings are
// resolved once for both channels.
func (d *Dispatcher) StatusChanged(ctx context.Context, o *order.Order, status order.Status) {
	logger := d.orderLogger(o, status)
	settings := d.settings.Settings()
	prefs := o.Preferences()
	if prefs.Email {
		d.statusEmail(ctx, logger, settings, o, status)
	}
	if prefs.Messaging {
		d.statusMessage(ctx, logger, settings, o, o, status, "")
	}
}

// SendEmail sends the email mapped to status, ignoring preferences.
func (d *Dispatcher) SendEmail(ctx context.Context, o *order.Order, status order.Status) {
	d.statusEmail(ctx, d.orderLogger(o, status), d.settings.Settings(), o, status)
}

// SendMessage sends the message mapped to status, ignoring preferences.
//
// The recipient is targetPhone when given, otherwise the customer phone,
// otherwise the customer mobile. Guards, in order:
//   - incomplete provider credentials: warning log only
//   - no recipient: silent return
//   - recipient not international after normalization: warning note
//
// Success and provider failures are recorded as notes through notes.
func (d *Dispatcher) SendMessage(
	ctx context.Context,
	o *order.Order,
	notes NoteRecorder,
	status order.Status,
	targetPhone string,
) {
	d.statusMessage(ctx, d.orderLogger(o, status), d.settings.Settings(), o, notes, status, targetPhone)
}

func (d *Dispatcher) orderLogger(o *order.Order, status order.Status) *slog.Logger {
	return d.logger.With("order_id", o.ID().String(), "reference", o.Reference(), "status", status.String())
}

// statusEmail skips statuses without a template. Quality check has none on
// purpose; any other gap is a catalog defect and is logged as a warning.
func (d *Dispatcher) statusEmail(
	ctx context.Context,
	logger *slog.Logger,
	settings Settings,
	o *order.Order,
	status order.Status,
) {
	templateID, ok := d.catalog.EmailTemplate(status)
	if !ok {
		if status == order.QualityCheck {
			logger.Info("no email template for status")
		} else {
			logger.Warn("no email template for status")
		}
		d.metrics.NotificationSkipped(ChannelEmail, SkipNoTemplate)
		return
	}

	d.sendEmail(ctx, logger, settings, o, status, templateID)
}

func (d *Dispatcher) statusMessage(
	ctx context.Context,
	logger *slog.Logger,
	settings Settings,
	o *order.Order,
	notes NoteRecorder,
	status order.Status,
	targetPhone string,
) {
	to, ok := d.recipient(logger, settings, o, notes, targetPhone)
	if !ok {
		return
	}

	body, found, err := d.catalog.RenderMessage(status, d.templateData(o, status, settings))
	if !found {
		logger.Warn("no message template for status")
		d.metrics.NotificationSkipped(ChannelMessaging, SkipNoTemplate)
		return
	}
	if err != nil {
		d.messageFailed(logger, notes, to, err)
		return
	}

	d.deliverMessage(ctx, logger, settings, notes, to, body)
}

// SendDeliveryReminder sends the delivery-day reminder on every enabled
// channel. The order status is not changed.
func (d *Dispatcher) SendDeliveryReminder(ctx context.Context, o *order.Order) {
	logger := d.logger.With("order_id", o.ID().String(), "reference", o.Reference(), "kind", "delivery_reminder")
	settings := d.settings.Settings()
	prefs := o.Preferences()

	if prefs.Email {
		d.sendEmail(ctx, logger, settings, o, o.Status(), d.catalog.ReminderEmailTemplate())
	}

	if !prefs.Messaging {
		return
	}

	to, ok := d.recipient(logger, settings, o, o, "")
	if !ok {
		return
	}

	body, err := d.catalog.RenderReminderMessage(d.templateData(o, o.Status(), settings))
	if err != nil {
		d.messageFailed(logger, o, to, err)
		return
	}

	d.deliverMessage(ctx, logger, settings, o, to, body)
}

func (d *Dispatcher) sendEmail(
	ctx context.Context,
	logger *slog.Logger,
	settings Settings,
	o *order.Order,
	status order.Status,
	templateID string,
) {
	to := o.Customer().Email()
	if to == "" {
		logger.Warn("customer has no email address, email skipped")
		d.metrics.NotificationSkipped(ChannelEmail, SkipNoRecipient)
		return
	}

	err := d.email.Send(ctx, ports.Email{
		TemplateID: templateID,
		From:       settings.MailServerIdentity,
		ReplyTo:    settings.ReplyTo,
		To:         to,
		Data:       d.templateData(o, status, settings),
	})
	if err != nil {
		logger.Error("failed to send email", "template", templateID, "error", err)
		d.metrics.NotificationFailed(ChannelEmail)
		return
	}

	logger.Info("email sent", "template", templateID)
	d.metrics.NotificationSent(ChannelEmail)
}

// recipient resolves and validates the channel address of the customer.
func (d *Dispatcher) recipient(
	logger *slog.Logger,
	settings Settings,
	o *order.Order,
	notes NoteRecorder,
	targetPhone string,
) (string, bool) {
	if !settings.MessagingConfigured() {
		logger.Warn("messaging provider credentials are incomplete, message skipped")
		d.metrics.NotificationSkipped(ChannelMessaging, SkipNoCredentials)
		return "", false
	}

	phone := targetPhone
	if phone == "" {
		phone = o.Customer().ContactPhone()
	}
	if phone == "" {
		d.metrics.NotificationSkipped(ChannelMessaging, SkipNoRecipient)
		return "", false
	}

	normalized := d.normalizer.Normalize(phone)
	if !d.normalizer.IsInternational(normalized) {
		logger.Warn("phone number is not in international format", "phone", normalized)
		notes.RecordNote(fmt.Sprintf(
			"%s message not sent: phone number %s is not in international format (%s...)",
			d.channelName(), normalized, d.normalizer.CountryCode(),
		))
		d.metrics.NotificationSkipped(ChannelMessaging, SkipInvalidRecipient)
		return "", false
	}

	return d.normalizer.WithChannel(normalized), true
}

func (d *Dispatcher) deliverMessage(
	ctx context.Context,
	logger *slog.Logger,
	settings Settings,
	notes NoteRecorder,
	to, body string,
) {
	from := d.normalizer.WithChannel(d.normalizer.Normalize(settings.ProviderSenderNumber))
	creds := ports.MessagingCredentials{
		AccountID: settings.ProviderAccountID,
		AuthToken: settings.ProviderAuthToken,
	}

	if err := d.messages.Send(ctx, creds, ports.Message{From: from, To: to, Body: body}); err != nil {
		d.messageFailed(logger, notes, to, err)
		return
	}

	logger.Info("message sent", "to", to)
	notes.RecordNote(fmt.Sprintf("%s message sent to %s", d.channelName(), to))
	d.metrics.NotificationSent(ChannelMessaging)
}

func (d *Dispatcher) messageFailed(logger *slog.Logger, notes NoteRecorder, to string, err error) {
	logger.Error("failed to send message", "to", to, "error", err)
	notes.RecordNote(fmt.Sprintf("%s message to %s failed: %v", d.channelName(), to, err))
	d.metrics.NotificationFailed(ChannelMessaging)
}

func (d *Dispatcher) channelName() string {
	if d.normalizer.ChannelPrefix() == services.DefaultChannelPrefix {
		return "WhatsApp"
	}
	return "SMS"
}

func (d *Dispatcher) templateData(o *order.Order, status order.Status, settings Settings) ports.TemplateData {
	payment := o.Payment()
	data := ports.TemplateData{
		CustomerName: o.Customer().Name(),
		Reference:    o.Reference(),
		Status:       status.String(),
		StatusLabel:  status.Label(),
		GarmentType:  string(o.Garment().Type()),
		OrderDate:    o.OrderDate().Format(time.DateOnly),
		Total:        payment.Total().StringFixed(2),
		Advance:      payment.Advance().StringFixed(2),
		Balance:      payment.BalanceDue().StringFixed(2),
		Currency:     o.Currency().Symbol(),
		CurrencyCode: o.Currency().Code(),
		PortalURL:    settings.PortalOrderURL(o.ID().String()),
		CompanyName:  settings.CompanyName,
	}
	if delivery := o.DeliveryDate(); delivery != nil {
		data.DeliveryDate = delivery.Format(time.DateOnly)
	}
	return data
}

type nopMetrics struct{}

func (nopMetrics) NotificationSent(string)            {}
func (nopMetrics) NotificationSkipped(string, string) {}
func (nopMetrics) NotificationFailed(string)          {}
