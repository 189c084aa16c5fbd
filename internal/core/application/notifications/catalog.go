package notifications

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/core/ports"
)

// CatalogEnvPrefix prefixes environment overrides of the catalog. Nested
// keys are separated by "__", e.g. TAILOR_CATALOG_MESSAGES__TEMPLATES__READY.
const CatalogEnvPrefix = "TAILOR_CATALOG_"

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Email struct {
		Templates map[string]string `koanf:"templates"`
		Reminder  string            `koanf:"reminder"`
	} `koanf:"email"`
	Messages struct {
		Templates map[string]string `koanf:"templates"`
		Reminder  string            `koanf:"reminder"`
	} `koanf:"messages"`
}

// Catalog maps order statuses to email template ids and message templates.
// A Catalog is validated once when built and is read-only afterwards.
type Catalog struct {
	emailTemplates  map[order.Status]string
	reminderEmail   string
	messages        map[order.Status]*template.Template
	reminderMessage *template.Template
}

// LoadCatalog reads the embedded default catalog, overlays the YAML file at
// path when path is not empty, then overlays TAILOR_CATALOG_* variables.
func LoadCatalog(path string, templates ports.EmailTemplates) (*Catalog, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultCatalog), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load default catalog: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(CatalogEnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, CatalogEnvPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, fmt.Errorf("catalog env overlay: %w", err)
	}

	var raw catalogFile
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	emailTemplates := make(map[order.Status]string, len(raw.Email.Templates))
	for key, id := range raw.Email.Templates {
		emailTemplates[order.Status(key)] = id
	}
	messages := make(map[order.Status]string, len(raw.Messages.Templates))
	for key, body := range raw.Messages.Templates {
		messages[order.Status(key)] = body
	}

	return NewCatalog(emailTemplates, raw.Email.Reminder, messages, raw.Messages.Reminder, templates)
}

// NewCatalog validates and builds a catalog:
//   - every key is a known status
//   - every transition target has a message template
//   - every message template parses
//   - every email template id, including the reminder, is known to templates
func NewCatalog(
	emailTemplates map[order.Status]string,
	reminderEmail string,
	messages map[order.Status]string,
	reminderMessage string,
	templates ports.EmailTemplates,
) (*Catalog, error) {
	c := &Catalog{
		emailTemplates: make(map[order.Status]string, len(emailTemplates)),
		reminderEmail:  strings.TrimSpace(reminderEmail),
		messages:       make(map[order.Status]*template.Template, len(messages)),
	}

	var errs []error
	for _, status := range slices.Sorted(maps.Keys(emailTemplates)) {
		id := strings.TrimSpace(emailTemplates[status])
		if err := status.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("email template for %q: %w", status, err))
			continue
		}
		if id == "" {
			continue
		}
		if templates != nil && !templates.HasTemplate(id) {
			errs = append(errs, fmt.Errorf("email template %q for %s does not exist", id, status))
			continue
		}
		c.emailTemplates[status] = id
	}

	if c.reminderEmail == "" {
		errs = append(errs, errors.New("reminder email template is required"))
	} else if templates != nil && !templates.HasTemplate(c.reminderEmail) {
		errs = append(errs, fmt.Errorf("reminder email template %q does not exist", c.reminderEmail))
	}

	for _, status := range slices.Sorted(maps.Keys(messages)) {
		if err := status.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("message template for %q: %w", status, err))
			continue
		}
		tmpl, err := parseMessage(string(status), messages[status])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.messages[status] = tmpl
	}

	for _, tr := range order.Transitions() {
		if _, ok := c.messages[tr.Target()]; !ok {
			errs = append(errs, fmt.Errorf("message template for %s is required", tr.Target()))
		}
	}

	reminder, err := parseMessage("reminder", reminderMessage)
	if err != nil {
		errs = append(errs, err)
	}
	c.reminderMessage = reminder

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid notification catalog: %w", errors.Join(errs...))
	}
	return c, nil
}

func parseMessage(name, body string) (*template.Template, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("message template %s is empty", name)
	}
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("message template %s: %w", name, err)
	}
	if err := tmpl.Execute(io.Discard, ports.TemplateData{}); err != nil {
		return nil, fmt.Errorf("message template %s: %w", name, err)
	}
	return tmpl, nil
}

// EmailTemplate returns the email template id for status. It returns false
// for statuses that send no email, quality_check among them.
func (c *Catalog) EmailTemplate(status order.Status) (string, bool) {
	id, ok := c.emailTemplates[status]
	return id, ok
}

func (c *Catalog) ReminderEmailTemplate() string {
	return c.reminderEmail
}

// RenderMessage renders the message for status. It returns false when the
// status has no message template.
func (c *Catalog) RenderMessage(status order.Status, data ports.TemplateData) (string, bool, error) {
	tmpl, ok := c.messages[status]
	if !ok {
		return "", false, nil
	}
	body, err := render(tmpl, data)
	return body, true, err
}

func (c *Catalog) RenderReminderMessage(data ports.TemplateData) (string, error) {
	return render(c.reminderMessage, data)
}

func render(tmpl *template.Template, data ports.TemplateData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
