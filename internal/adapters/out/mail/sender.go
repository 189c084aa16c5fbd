// Package mail renders the order notification templates and delivers them
// over SMTP.
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	texttemplate "text/template"

	gomail "github.com/wneessen/go-mail"

	"tailor/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var subjects = map[string]string{
	"order_received":    "Order {{.Reference}} received",
	"measurement":       "Order {{.Reference}}: measurement in progress",
	"production":        "Order {{.Reference}}: {{.StatusLabel}}",
	"ready":             "Order {{.Reference}} is ready for pickup",
	"delivered":         "Order {{.Reference}} delivered",
	"cancelled":         "Order {{.Reference}} cancelled",
	"delivery_reminder": "Reminder: order {{.Reference}} is due today",
}

// SMTPConfig addresses the outgoing mail server. Auth is skipped when
// Username is empty.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Renderer turns a template id and order data into a subject and HTML body.
type Renderer struct {
	bodies   *template.Template
	subjects map[string]*texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	bodies, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}

	r := &Renderer{bodies: bodies, subjects: make(map[string]*texttemplate.Template, len(subjects))}
	for id, text := range subjects {
		if bodies.Lookup(id+".html") == nil {
			return nil, fmt.Errorf("mail template %q has a subject but no body", id)
		}
		tpl, parseErr := texttemplate.New(id).Parse(text)
		if parseErr != nil {
			return nil, fmt.Errorf("parse subject of %q: %w", id, parseErr)
		}
		r.subjects[id] = tpl
	}

	return r, nil
}

// HasTemplate reports whether id names an embedded template.
func (r *Renderer) HasTemplate(id string) bool {
	_, ok := r.subjects[id]
	return ok
}

func (r *Renderer) Render(id string, data ports.TemplateData) (string, string, error) {
	subjectTpl, ok := r.subjects[id]
	if !ok {
		return "", "", fmt.Errorf("unknown mail template %q", id)
	}

	var subject, body bytes.Buffer
	if err := subjectTpl.Execute(&subject, data); err != nil {
		return "", "", fmt.Errorf("render subject of %q: %w", id, err)
	}
	if err := r.bodies.ExecuteTemplate(&body, id+".html", data); err != nil {
		return "", "", fmt.Errorf("render body of %q: %w", id, err)
	}

	return subject.String(), body.String(), nil
}

// Sender delivers rendered emails through an SMTP client.
type Sender struct {
	client   *gomail.Client
	renderer *Renderer
}

func NewSender(cfg SMTPConfig, renderer *Renderer) (*Sender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Sender{client: client, renderer: renderer}, nil
}

func (s *Sender) HasTemplate(id string) bool {
	return s.renderer.HasTemplate(id)
}

func (s *Sender) Send(ctx context.Context, email ports.Email) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}
	return s.client.DialAndSendWithContext(ctx, msg)
}

func (s *Sender) message(email ports.Email) (*gomail.Msg, error) {
	subject, body, err := s.renderer.Render(email.TemplateID, email.Data)
	if err != nil {
		return nil, err
	}

	msg := gomail.NewMsg()
	if err = msg.From(email.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", email.From, err)
	}
	if err = msg.To(email.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", email.To, err)
	}
	if email.ReplyTo != "" {
		if err = msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to %q: %w", email.ReplyTo, err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	return msg, nil
}

var (
	_ ports.EmailSender    = (*Sender)(nil)
	_ ports.EmailTemplates = (*Renderer)(nil)
)
