package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timeouts, TTLs, store defaults)
// -----------------------------------------------------------------------------

const EnvProduction = "production"

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Cookie   CookieConfig
	Store    StoreConfig
	Kafka    KafkaConfig
	SendGrid SendGridConfig
	Storage  StorageConfig
	Relay    RelayConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	Env  string `envconfig:"APP_ENV" default:"development"`
}

func (s ServerConfig) IsProduction() bool {
	return s.Env == EnvProduction
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type MongoConfig struct {
	URI     string        `envconfig:"MONGO_URI" required:"true"`
	DBName  string        `envconfig:"MONGO_DB_NAME" default:"storefront"`
	CartTTL time.Duration `envconfig:"CART_TTL" default:"168h"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password        string        `envconfig:"REDIS_PASSWORD"`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	ProductCacheTTL time.Duration `envconfig:"PRODUCT_CACHE_TTL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	// bcrypt hash of the single admin console password
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type CookieConfig struct {
	Domain        string        `envconfig:"COOKIE_DOMAIN"`
	SameSite      string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	SessionMaxAge time.Duration `envconfig:"SESSION_MAX_AGE" default:"720h"`
	Secure        bool          `ignored:"true"`
}

type StoreConfig struct {
	Name               string `envconfig:"STORE_NAME" default:"VB Swimwear"`
	WhatsAppNumber     string `envconfig:"WHATSAPP_NUMBER" required:"true"`
	MessagingHost      string `envconfig:"MESSAGING_HOST" default:"wa.me"`
	OrderNumberPrefix  string `envconfig:"ORDER_NUMBER_PREFIX" default:"VB"`
	PixDiscountPercent int64  `envconfig:"PIX_DISCOUNT_PERCENT" default:"10"`
}

type KafkaConfig struct {
	Brokers    []string `envconfig:"KAFKA_BROKERS"`
	OrderTopic string   `envconfig:"KAFKA_ORDER_TOPIC" default:"orders.created"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type SendGridConfig struct {
	APIKey   string `envconfig:"SENDGRID_API_KEY"`
	From     string `envconfig:"SENDGRID_FROM" default:"pedidos@vbswimwear.com.br"`
	FromName string `envconfig:"SENDGRID_FROM_NAME" default:"VB Swimwear"`
}

func (s SendGridConfig) Enabled() bool {
	return s.APIKey != ""
}

type StorageConfig struct {
	Bucket        string `envconfig:"GCS_BUCKET"`
	PublicBaseURL string `envconfig:"GCS_PUBLIC_BASE_URL" default:"https://storage.googleapis.com"`
	MaxUploadSize int64  `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"`
}

type RelayConfig struct {
	Enabled     bool          `envconfig:"RELAY_ENABLED" default:"false"`
	Interval    time.Duration `envconfig:"RELAY_INTERVAL" default:"2s"`
	BatchSize   int32         `envconfig:"RELAY_BATCH_SIZE" default:"50"`
	MaxAttempts int32         `envconfig:"RELAY_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	cfg.Cookie.Secure = cfg.Server.IsProduction()
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
			Env:  "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
			MaxConns: 4,
		},
		Mongo: MongoConfig{
			URI:     "mongodb://localhost:27018",
			DBName:  "storefront_test",
			CartTTL: 7 * 24 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:            "localhost:6380",
			ProductCacheTTL: time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite:      "Lax",
			SessionMaxAge: 30 * 24 * time.Hour,
		},
		Store: StoreConfig{
			Name:               "VB Swimwear",
			WhatsAppNumber:     "5571991426930",
			MessagingHost:      "wa.me",
			OrderNumberPrefix:  "VB",
			PixDiscountPercent: 10,
		},
		Kafka: KafkaConfig{
			OrderTopic: "orders.created",
		},
		Storage: StorageConfig{
			PublicBaseURL: "https://storage.googleapis.com",
			MaxUploadSize: 5 << 20,
		},
		Relay: RelayConfig{
			Interval:    100 * time.Millisecond,
			BatchSize:   10,
			MaxAttempts: 3,
		},
	}
}
