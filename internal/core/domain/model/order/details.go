package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tailor/internal/pkg/errs"
)

// GarmentType is the kind of garment being made.
type GarmentType string

const (
	Kandura GarmentType = "kandura"
	Thobe   GarmentType = "thobe"
	Shirt   GarmentType = "shirt"
	Pants   GarmentType = "pants"
	Suit    GarmentType = "suit"
	Other   GarmentType = "other"
)

func ParseGarmentType(s string) (GarmentType, error) {
	if s == "" {
		return Kandura, nil
	}
	g := GarmentType(strings.ToLower(strings.TrimSpace(s)))
	if err := g.Validate(); err != nil {
		return "", err
	}
	return g, nil
}

func (g GarmentType) Validate() error {
	switch g {
	case Kandura, Thobe, Shirt, Pants, Suit, Other:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("garment type", fmt.Errorf("%q is not a known garment type", string(g)))
	}
}

// Garment holds the free-text production details of an order.
type Garment struct {
	garmentType  GarmentType
	fabric       string
	color        string
	instructions string
}

func NewGarment(garmentType GarmentType, fabric, color, instructions string) (Garment, error) {
	if garmentType == "" {
		garmentType = Kandura
	}
	if err := garmentType.Validate(); err != nil {
		return Garment{}, err
	}
	return Garment{
		garmentType:  garmentType,
		fabric:       strings.TrimSpace(fabric),
		color:        strings.TrimSpace(color),
		instructions: strings.TrimSpace(instructions),
	}, nil
}

func (g Garment) Type() GarmentType {
	return g.garmentType
}

func (g Garment) Fabric() string {
	return g.fabric
}

func (g Garment) Color() string {
	return g.color
}

func (g Garment) Instructions() string {
	return g.instructions
}

// Measurements are flat body measurements in centimetres. Zero means not taken.
type Measurements struct {
	Chest         float64
	Waist         float64
	Hip           float64
	ShoulderWidth float64
	SleeveLength  float64
	Armhole       float64
	BackLength    float64
	FrontLength   float64
}

func (m Measurements) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"chest", m.Chest},
		{"waist", m.Waist},
		{"hip", m.Hip},
		{"shoulder_width", m.ShoulderWidth},
		{"sleeve_length", m.SleeveLength},
		{"armhole", m.Armhole},
		{"back_length", m.BackLength},
		{"front_length", m.FrontLength},
	}

	var err error
	for _, f := range fields {
		if f.value < 0 {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(f.name, fmt.Errorf("%v is negative", f.value)))
		}
	}
	return err
}

// Payment holds the order amounts. The advance always lies in [0, total].
type Payment struct {
	total   decimal.Decimal
	advance decimal.Decimal
}

func NewPayment(total, advance decimal.Decimal) (Payment, error) {
	if total.IsNegative() {
		return Payment{}, errs.NewValueIsOutOfRangeError("total_amount", total.String(), 0, "unbounded")
	}
	if advance.IsNegative() || advance.GreaterThan(total) {
		return Payment{}, errs.NewValueIsOutOfRangeError("advance_paid", advance.String(), 0, total.String())
	}
	return Payment{total: total, advance: advance}, nil
}

func (p Payment) Total() decimal.Decimal {
	return p.total
}

func (p Payment) Advance() decimal.Decimal {
	return p.advance
}

// BalanceDue is total minus advance. It is never negative.
func (p Payment) BalanceDue() decimal.Decimal {
	return p.total.Sub(p.advance)
}

// Preferences select which notification channels an order uses.
type Preferences struct {
	Email     bool
	Messaging bool
}

// DefaultPreferences enables email and disables messaging.
func DefaultPreferences() Preferences {
	return Preferences{Email: true, Messaging: false}
}
