package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
)

func TestNewPayment(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		advance int64
		wantErr bool
	}{
		{"zero amounts", 0, 0, false},
		{"partial advance", 1000, 250, false},
		{"advance equals total", 1000, 1000, false},
		{"advance above total", 1000, 1001, true},
		{"negative advance", 1000, -5, true},
		{"negative total", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := order.NewPayment(decimal.NewFromInt(tt.total), decimal.NewFromInt(tt.advance))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.False(t, p.BalanceDue().IsNegative())
			assert.True(t, decimal.NewFromInt(tt.total-tt.advance).Equal(p.BalanceDue()))
		})
	}
}

func TestMeasurements_Validate(t *testing.T) {
	assert.NoError(t, order.Measurements{}.Validate())

	err := order.Measurements{Chest: -1, FrontLength: -2}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chest")
	assert.Contains(t, err.Error(), "front_length")
}

func TestNewGarment(t *testing.T) {
	t.Run("should default to kandura", func(t *testing.T) {
		g, err := order.NewGarment("", " wool ", "navy", "")
		require.NoError(t, err)
		assert.Equal(t, order.Kandura, g.Type())
		assert.Equal(t, "wool", g.Fabric())
	})

	t.Run("should reject unknown garment type", func(t *testing.T) {
		_, err := order.NewGarment(order.GarmentType("dress"), "", "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseGarmentType(t *testing.T) {
	g, err := order.ParseGarmentType("Suit")
	require.NoError(t, err)
	assert.Equal(t, order.Suit, g)
}

func TestNewCustomer(t *testing.T) {
	t.Run("should require a name", func(t *testing.T) {
		_, err := order.NewCustomer(kernel.NewUUID(), " ", "", "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := order.NewCustomer(kernel.NewUUID(), "Aline", "", "", "aline.example.com")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fall back to mobile for contact phone", func(t *testing.T) {
		c, err := order.NewCustomer(kernel.NewUUID(), "Aline", "", "0788000111", "")
		require.NoError(t, err)
		assert.Equal(t, "0788000111", c.ContactPhone())
	})
}
