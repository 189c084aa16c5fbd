package services

import (
	"errors"
	"strings"

	"tailor/internal/pkg/errs"
)

const (
	DefaultCountryCode   = "+250"
	DefaultChannelPrefix = "whatsapp:"
	internationalPrefix  = "+"
	trunkPrefix          = "0"
)

// PhoneNormalizer converts locally entered phone numbers into the
// international form expected by the messaging provider.
//
// Normalization rules, applied in order:
//   - all spaces are removed
//   - a leading trunk prefix "0" is replaced by the country code
//
// Numbers that still do not start with "+" after normalization are not
// deliverable. The normalizer never guesses a country for them.
//
// Example:
//
//	n, _ := NewPhoneNormalizer("+250", "whatsapp:")
//	n.Normalize("0788 123 456")      // "+250788123456"
//	n.WithChannel("+250788123456")   // "whatsapp:+250788123456"
type PhoneNormalizer struct {
	countryCode   string
	channelPrefix string
}

// NewPhoneNormalizer builds a normalizer. The country code must start with
// "+"; the channel prefix may be empty for plain SMS.
func NewPhoneNormalizer(countryCode, channelPrefix string) (PhoneNormalizer, error) {
	countryCode = strings.TrimSpace(countryCode)
	if countryCode == "" {
		return PhoneNormalizer{}, errs.NewValueIsRequiredError("country code")
	}
	if !strings.HasPrefix(countryCode, internationalPrefix) {
		return PhoneNormalizer{}, errs.NewValueIsInvalidErrorWithCause(
			"country code", errors.New("must start with +"),
		)
	}

	return PhoneNormalizer{
		countryCode:   countryCode,
		channelPrefix: strings.TrimSpace(channelPrefix),
	}, nil
}

func (n PhoneNormalizer) CountryCode() string {
	return n.countryCode
}

func (n PhoneNormalizer) ChannelPrefix() string {
	return n.channelPrefix
}

// Normalize strips spaces and expands a leading trunk prefix.
func (n PhoneNormalizer) Normalize(phone string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	if strings.HasPrefix(phone, trunkPrefix) {
		phone = n.countryCode + strings.TrimPrefix(phone, trunkPrefix)
	}
	return phone
}

// IsInternational reports whether a normalized number is deliverable.
func (n PhoneNormalizer) IsInternational(phone string) bool {
	return strings.HasPrefix(phone, internationalPrefix)
}

// WithChannel prefixes a number with the messaging channel, once.
func (n PhoneNormalizer) WithChannel(phone string) string {
	if n.channelPrefix == "" || strings.HasPrefix(phone, n.channelPrefix) {
		return phone
	}
	return n.channelPrefix + phone
}
