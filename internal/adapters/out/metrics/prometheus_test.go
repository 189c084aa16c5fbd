package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor/internal/adapters/out/metrics"
)

func TestMetrics_CountsNotificationOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.NotificationSent("email")
	m.NotificationSent("email")
	m.NotificationSkipped("messaging", "no_credentials")
	m.NotificationFailed("messaging")

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "tailor_notifications_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			key := ""
			for _, l := range metric.GetLabel() {
				key += l.GetName() + "=" + l.GetValue() + ","
			}
			got[key] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, map[string]float64{
		"channel=email,outcome=sent,reason=,":                      2,
		"channel=messaging,outcome=skipped,reason=no_credentials,": 1,
		"channel=messaging,outcome=failed,reason=,":                1,
	}, got)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveRequest("GET", "/health", "OK", 3)
	m.ObserveRequest("GET", "/health", "OK", 7)

	count, err := testutil.GatherAndCount(reg, "http_requests_total", "http_request_duration_ms")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
