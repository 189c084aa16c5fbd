package cmd

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor/internal/pkg/logging"
)

func testConfig() Config {
	return Config{
		SMTPHost:           "localhost",
		SMTPPort:           "2525",
		MailServerIdentity: "orders@tailor.example",
		JWTSecret:          "secret",
		Timezone:           "UTC",
	}
}

func TestCompositionRoot_BuildsRouterWithoutBrokers(t *testing.T) {
	root, err := NewCompositionRoot(testConfig(), nil, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	consumer, err := root.CreateSalesOrderConsumer()
	require.NoError(t, err)
	assert.Nil(t, consumer)
	assert.Nil(t, root.publisher)

	e, err := root.CreateRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompositionRoot_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"currency", func(c *Config) { c.CurrencyCode = "FRANC" }},
		{"smtp port", func(c *Config) { c.SMTPPort = "smtp" }},
		{"country code", func(c *Config) { c.PhoneCountryCode = "250" }},
		{"catalog path", func(c *Config) { c.NotificationCatalogPath = "/does/not/exist.yaml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			_, err := NewCompositionRoot(cfg, nil, logging.Discard())
			assert.Error(t, err)
		})
	}
}

func TestCompositionRoot_RouterRequiresJWTSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	root, err := NewCompositionRoot(cfg, nil, logging.Discard())
	require.NoError(t, err)

	_, err = root.CreateRouter()
	assert.Error(t, err)
}

func TestCompositionRoot_Brokers(t *testing.T) {
	root := &CompositionRoot{cfg: Config{KafkaHost: " kafka-1:9092, ,kafka-2:9092"}}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, root.brokers())
}

func TestCompositionRoot_AttachPublisher(t *testing.T) {
	newRoot := func(t *testing.T) *CompositionRoot {
		cfg := testConfig()
		cfg.KafkaHost = "kafka-1:9092"
		cfg.KafkaOrderStatusChangedTopic = "tailor.order.status_changed"
		return &CompositionRoot{cfg: cfg, logger: logging.Discard()}
	}

	t.Run("should continue without publisher when broker is unreachable", func(t *testing.T) {
		root := newRoot(t)
		var dialed []string

		root.attachPublisher(func(brokers []string) (sarama.SyncProducer, error) {
			dialed = brokers
			return nil, errors.New("kafka: client has run out of available brokers to talk to")
		})

		assert.Equal(t, []string{"kafka-1:9092"}, dialed)
		assert.Nil(t, root.publisher)
		assert.Empty(t, root.closers)
	})

	t.Run("should attach publisher when producer connects", func(t *testing.T) {
		root := newRoot(t)
		producer := mocks.NewSyncProducer(t, nil)

		root.attachPublisher(func([]string) (sarama.SyncProducer, error) { return producer, nil })

		assert.NotNil(t, root.publisher)
		require.Len(t, root.closers, 1)
		assert.NoError(t, root.Close())
	})

	t.Run("should skip when topic is not configured", func(t *testing.T) {
		root := newRoot(t)
		root.cfg.KafkaOrderStatusChangedTopic = ""

		root.attachPublisher(func([]string) (sarama.SyncProducer, error) {
			t.Fatal("producer must not be created")
			return nil, nil
		})

		assert.Nil(t, root.publisher)
	})
}
