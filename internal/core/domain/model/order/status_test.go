package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor/internal/core/domain/model/order"
	"tailor/internal/pkg/errs"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every known status", func(t *testing.T) {
		statuses := order.Statuses()
		require.Len(t, statuses, 10)
		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject empty and unknown statuses", func(t *testing.T) {
		for _, s := range []order.Status{"", "Ready", "archived"} {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("quality_check")
	require.NoError(t, err)
	assert.Equal(t, order.QualityCheck, s)

	_, err = order.ParseStatus("qc")
	assert.Error(t, err)
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Ready for Delivery", order.Ready.Label())
	assert.Equal(t, "Quality Check", order.QualityCheck.Label())
	assert.Equal(t, "unknown", order.Status("unknown").Label())
}

func TestStatus_IsInProgress(t *testing.T) {
	inProgress := map[order.Status]bool{
		order.Cutting:      true,
		order.Sewing:       true,
		order.Finishing:    true,
		order.QualityCheck: true,
	}

	for _, s := range order.Statuses() {
		assert.Equal(t, inProgress[s], s.IsInProgress(), s.String())
	}
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.False(t, order.Ready.IsFinal())
}
