package notifications

import (
	"strings"
)

// Settings are the provider settings resolved for each dispatch.
type Settings struct {
	// MailServerIdentity is the From address of customer emails.
	MailServerIdentity string
	// ReplyTo is the organisational reply-to address.
	ReplyTo string

	ProviderAccountID    string
	ProviderAuthToken    string
	ProviderSenderNumber string

	PortalBaseURL string
	CompanyName   string
}

// MessagingConfigured reports whether all messaging credentials are present.
func (s Settings) MessagingConfigured() bool {
	return s.ProviderAccountID != "" && s.ProviderAuthToken != "" && s.ProviderSenderNumber != ""
}

// PortalOrderURL is the customer portal page of an order.
func (s Settings) PortalOrderURL(orderID string) string {
	if s.PortalBaseURL == "" {
		return ""
	}
	return strings.TrimRight(s.PortalBaseURL, "/") + "/my/tailor/orders/" + orderID
}

// SettingsSource resolves the current settings. It is consulted once per
// dispatch so that rotated credentials take effect without a restart.
type SettingsSource interface {
	Settings() Settings
}

// StaticSettings is a SettingsSource that never changes.
type StaticSettings Settings

func (s StaticSettings) Settings() Settings {
	return Settings(s)
}
