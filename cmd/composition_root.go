package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpin "tailor/internal/adapters/in/http"
	kafkain "tailor/internal/adapters/in/kafka"
	"tailor/internal/adapters/out/cache"
	kafkaout "tailor/internal/adapters/out/kafka"
	"tailor/internal/adapters/out/mail"
	"tailor/internal/adapters/out/messaging"
	"tailor/internal/adapters/out/metrics"
	"tailor/internal/adapters/out/postgres"
	"tailor/internal/core/application/notifications"
	"tailor/internal/core/application/usecases/commands"
	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/kernel"
	"tailor/internal/core/domain/services"
	"tailor/internal/core/ports"
	"tailor/internal/generated/servers"
	"tailor/internal/jobs"
)

const defaultIdempotencyTTL = 30 * 24 * time.Hour

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	location   *time.Location
	currency   kernel.Currency
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	dispatcher *notifications.Dispatcher
	publisher  ports.StatusChangedPublisher

	closers []func() error
}

// NewCompositionRoot builds the shared collaborators. Configuration errors
// surface here, before any listener starts.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   prometheus.NewRegistry(),
	}
	c.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	c.metrics = metrics.New(c.registry)

	var err error
	if c.location, err = loadLocation(cfg.Timezone); err != nil {
		return nil, err
	}

	if c.currency, err = kernel.NewCurrency(orDefault(cfg.CurrencyCode, "RWF"), orDefault(cfg.CurrencySymbol, "FRw")); err != nil {
		return nil, fmt.Errorf("currency: %w", err)
	}

	if c.dispatcher, err = c.newDispatcher(); err != nil {
		return nil, err
	}

	c.attachPublisher(kafkaout.NewSyncProducer)

	return c, nil
}

// attachPublisher connects the status-changed publisher when Kafka is
// configured. Publishing is best-effort, so an unreachable broker leaves the
// service running without one.
func (c *CompositionRoot) attachPublisher(newProducer func([]string) (sarama.SyncProducer, error)) {
	brokers := c.brokers()
	if len(brokers) == 0 || c.cfg.KafkaOrderStatusChangedTopic == "" {
		return
	}

	producer, err := newProducer(brokers)
	if err != nil {
		c.logger.Warn("status change publishing disabled, kafka producer unavailable",
			"brokers", brokers, "error", err)
		return
	}

	publisher := kafkaout.NewStatusChangedPublisher(producer, c.cfg.KafkaOrderStatusChangedTopic)
	c.publisher = publisher
	c.closers = append(c.closers, publisher.Close)
}

func (c *CompositionRoot) newDispatcher() (*notifications.Dispatcher, error) {
	renderer, err := mail.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("mail templates: %w", err)
	}

	catalog, err := notifications.LoadCatalog(c.cfg.NotificationCatalogPath, renderer)
	if err != nil {
		return nil, fmt.Errorf("notification catalog: %w", err)
	}

	smtpPort, err := atoiOrDefault(c.cfg.SMTPPort, 587)
	if err != nil {
		return nil, fmt.Errorf("SMTP_PORT: %w", err)
	}

	emailSender, err := mail.NewSender(mail.SMTPConfig{
		Host:     c.cfg.SMTPHost,
		Port:     smtpPort,
		Username: c.cfg.SMTPUser,
		Password: c.cfg.SMTPPassword,
	}, renderer)
	if err != nil {
		return nil, err
	}

	normalizer, err := services.NewPhoneNormalizer(
		orDefault(c.cfg.PhoneCountryCode, "+250"),
		orDefault(c.cfg.MessagingChannelPrefix, "whatsapp:"),
	)
	if err != nil {
		return nil, fmt.Errorf("phone normalizer: %w", err)
	}

	settings := notifications.StaticSettings(notifications.Settings{
		MailServerIdentity:   c.cfg.MailServerIdentity,
		ReplyTo:              c.cfg.MailReplyTo,
		ProviderAccountID:    c.cfg.TwilioAccountID,
		ProviderAuthToken:    c.cfg.TwilioAuthToken,
		ProviderSenderNumber: c.cfg.TwilioSenderNumber,
		PortalBaseURL:        c.cfg.PortalBaseURL,
		CompanyName:          c.cfg.CompanyName,
	})

	return notifications.NewDispatcher(
		catalog,
		settings,
		normalizer,
		emailSender,
		messaging.NewTwilioSender(),
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	return commands.NewApplyTransitionCommandHandler(c.orderUoWFactory(), c.dispatcher, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateSendTestNotificationCommandHandler() commands.SendTestNotificationCommandHandler {
	return commands.NewSendTestNotificationCommandHandler(c.orderUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateSendDeliveryRemindersCommandHandler() commands.SendDeliveryRemindersCommandHandler {
	return commands.NewSendDeliveryRemindersCommandHandler(
		c.orderUoWFactory(),
		services.NewDeliveryReminderPolicy(c.location),
		c.dispatcher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	pageSize, err := atoiOrDefault(c.cfg.PortalPageSize, queries.DefaultPageSize)
	if err != nil {
		c.logger.Warn("invalid PORTAL_PAGE_SIZE, using default", "value", c.cfg.PortalPageSize)
		pageSize = queries.DefaultPageSize
	}
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB, pageSize)
}

func (c *CompositionRoot) CreateGetCustomerOrderQueryHandler() queries.GetCustomerOrderQueryHandler {
	return queries.NewGetCustomerOrderQueryHandler(c.gormDB)
}

// CreateRouter wires the HTTP server behind its middleware.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	if c.cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateApplyTransitionCommandHandler(),
		c.CreateSendTestNotificationCommandHandler(),
		c.CreateListCustomerOrdersQueryHandler(),
		c.CreateGetCustomerOrderQueryHandler(),
		c.currency,
		c.logger,
	)

	return httpin.NewRouter(server, httpin.RouterOptions{
		Doc:      doc,
		Auth:     httpin.NewCustomerAuth(c.cfg.JWTSecret, c.cfg.JWTIssuer),
		Observer: c.metrics,
		Gatherer: c.registry,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager().Add("delivery reminder", jobs.NewDeliveryReminderJob(
		c.CreateSendDeliveryRemindersCommandHandler(),
		c.cfg.ReminderSchedule,
		c.location,
		c.logger,
	))
}

// CreateSalesOrderConsumer returns nil when no broker or topic is configured.
func (c *CompositionRoot) CreateSalesOrderConsumer() (*kafkain.Consumer, error) {
	brokers := c.brokers()
	if len(brokers) == 0 || c.cfg.KafkaSalesOrderConfirmedTopic == "" {
		return nil, nil //nolint:nilnil // consumer is optional
	}

	ttlHours, err := atoiOrDefault(c.cfg.SalesOrderIdempotencyTTLHours, int(defaultIdempotencyTTL/time.Hour))
	if err != nil {
		return nil, fmt.Errorf("SALES_ORDER_IDEMPOTENCY_TTL_HOURS: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     orDefault(c.cfg.RedisAddr, "localhost:6379"),
		Password: c.cfg.RedisPassword,
	})
	c.closers = append(c.closers, rdb.Close)

	handler := kafkain.NewSalesOrderConfirmedHandler(
		c.CreateCreateOrderCommandHandler(),
		cache.NewRedisIdempotencyStore(rdb),
		c.currency,
		time.Duration(ttlHours)*time.Hour,
		c.logger,
	)

	group, err := kafkain.NewConsumerGroup(brokers, orDefault(c.cfg.KafkaConsumerGroup, "tailor"))
	if err != nil {
		return nil, fmt.Errorf("kafka consumer group: %w", err)
	}

	return kafkain.NewConsumer(group, []string{c.cfg.KafkaSalesOrderConfirmedTopic}, handler.Handle, c.logger), nil
}

// Close releases the clients opened by the root.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	return err
}

func (c *CompositionRoot) brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.cfg.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}
	return loc, nil
}

func atoiOrDefault(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

