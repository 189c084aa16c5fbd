package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"tailor/cmd"
	"tailor/internal/pkg/logging"
)

func main() {
	configs := getConfigs()

	logger, logCloser := logging.New("tailor", logging.Options{
		Level:    configs.LogLevel,
		FilePath: configs.LogFile,
	})
	defer logCloser.Close()

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer jobManager.StopAll()

	startSalesOrderConsumer(ctx, app)

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("http: %v", err)
	}
	startWebServer(ctx, e, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:                      goDotEnvVariable("HTTP_PORT"),
		DBHost:                        goDotEnvVariable("DB_HOST"),
		DBPort:                        goDotEnvVariable("DB_PORT"),
		DBUser:                        goDotEnvVariable("DB_USER"),
		DBPassword:                    goDotEnvVariable("DB_PASSWORD"),
		DBName:                        goDotEnvVariable("DB_NAME"),
		DBSslMode:                     goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                     goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:            goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaSalesOrderConfirmedTopic: goDotEnvVariable("KAFKA_SALES_ORDER_CONFIRMED_TOPIC"),
		KafkaOrderStatusChangedTopic:  goDotEnvVariable("KAFKA_ORDER_STATUS_CHANGED_TOPIC"),
		RedisAddr:                     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:                 goDotEnvVariable("REDIS_PASSWORD"),
		SalesOrderIdempotencyTTLHours: goDotEnvVariable("SALES_ORDER_IDEMPOTENCY_TTL_HOURS"),
		JWTSecret:                     goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:                     goDotEnvVariable("JWT_ISSUER"),
		SMTPHost:                      goDotEnvVariable("SMTP_HOST"),
		SMTPPort:                      goDotEnvVariable("SMTP_PORT"),
		SMTPUser:                      goDotEnvVariable("SMTP_USER"),
		SMTPPassword:                  goDotEnvVariable("SMTP_PASSWORD"),
		MailServerIdentity:            goDotEnvVariable("MAIL_SERVER_IDENTITY"),
		MailReplyTo:                   goDotEnvVariable("MAIL_REPLY_TO"),
		CompanyName:                   goDotEnvVariable("COMPANY_NAME"),
		TwilioAccountID:               goDotEnvVariable("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:               goDotEnvVariable("TWILIO_AUTH_TOKEN"),
		TwilioSenderNumber:            goDotEnvVariable("TWILIO_SENDER_NUMBER"),
		PhoneCountryCode:              goDotEnvVariable("PHONE_COUNTRY_CODE"),
		MessagingChannelPrefix:        goDotEnvVariable("MESSAGING_CHANNEL_PREFIX"),
		CurrencyCode:                  goDotEnvVariable("CURRENCY_CODE"),
		CurrencySymbol:                goDotEnvVariable("CURRENCY_SYMBOL"),
		PortalBaseURL:                 goDotEnvVariable("PORTAL_BASE_URL"),
		PortalPageSize:                goDotEnvVariable("PORTAL_PAGE_SIZE"),
		ReminderSchedule:              goDotEnvVariable("REMINDER_SCHEDULE"),
		Timezone:                      goDotEnvVariable("TIMEZONE"),
		NotificationCatalogPath:       goDotEnvVariable("NOTIFICATION_CATALOG_PATH"),
		LogLevel:                      goDotEnvVariable("LOG_LEVEL"),
		LogFile:                       goDotEnvVariable("LOG_FILE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	return os.Getenv(key)
}

func startSalesOrderConsumer(ctx context.Context, app *cmd.CompositionRoot) {
	consumer, err := app.CreateSalesOrderConsumer()
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}
	if consumer == nil {
		log.Info("sales order consumer disabled")
		return
	}

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("sales order consumer stopped: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = consumer.Close()
	}()
}

func startWebServer(ctx context.Context, e *echo.Echo, port string) {
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
