package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost                     string
	KafkaConsumerGroup            string
	KafkaSalesOrderConfirmedTopic string
	KafkaOrderStatusChangedTopic  string
	RedisAddr                     string
	RedisPassword                 string
	SalesOrderIdempotencyTTLHours string

	JWTSecret string
	JWTIssuer string

	SMTPHost           string
	SMTPPort           string
	SMTPUser           string
	SMTPPassword       string
	MailServerIdentity string
	MailReplyTo        string
	CompanyName        string

	TwilioAccountID        string
	TwilioAuthToken        string
	TwilioSenderNumber     string
	PhoneCountryCode       string
	MessagingChannelPrefix string

	CurrencyCode            string
	CurrencySymbol          string
	PortalBaseURL           string
	PortalPageSize          string
	ReminderSchedule        string
	Timezone                string
	NotificationCatalogPath string

	LogLevel string
	LogFile  string
}
