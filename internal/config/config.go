package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka `validate:"required"`

	Courier  Courier  `validate:"required"`
	Delivery Delivery `validate:"required"`

	Cache Cache `validate:"required"`
}

// Cache — кеш публичного трекинга заказов.
type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Brokers     []string `validate:"required,min=1,dive,hostname_port"`
	EventsTopic string   `validate:"required"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

// Courier — параметры клиента логистического провайдера.
// Пустой APIKey означает "провайдер не настроен": котировки считаются
// по формуле, диспетчеризация недоступна.
type Courier struct {
	BaseURL   string `validate:"omitempty,url"`
	APIKey    string
	APISecret string
	Market    string

	// Секрет подписи входящих вебхуков, отдельный от APISecret.
	WebhookSecret string

	Timeout        time.Duration `validate:"gte=0"`
	MaxAttempts    int           `validate:"gte=1"`
	InitialBackoff time.Duration `validate:"gte=0"`
	MaxBackoff     time.Duration `validate:"gte=0"`
}

// Delivery — бизнес-константы доставки. Значения по умолчанию —
// рабочие константы сервиса, env оставлен на случай перенастройки.
type Delivery struct {
	ServiceRadiusKm float64 `validate:"gt=0"`

	BaseFee  int `validate:"gte=0"`
	PerKmFee int `validate:"gte=0"`
	MaxFee   int `validate:"gte=0"`
	CODFee   int `validate:"gte=0"`

	CutoffBuffer time.Duration `validate:"gt=0"`
	HorizonDays  int           `validate:"gte=1"`

	DispatchConcurrency int `validate:"gte=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "delivery"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			Brokers:      strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			EventsTopic:  env("KAFKA_EVENTS_TOPIC", "delivery-events"),
			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Courier: Courier{
			BaseURL:   env("COURIER_BASE_URL", ""),
			APIKey:    env("COURIER_API_KEY", ""),
			APISecret: env("COURIER_API_SECRET", ""),
			Market:    env("COURIER_MARKET", "TH"),

			WebhookSecret: env("COURIER_WEBHOOK_SECRET", ""),

			Timeout:        envDuration("COURIER_TIMEOUT", 10*time.Second),
			MaxAttempts:    envInt("COURIER_MAX_ATTEMPTS", 3),
			InitialBackoff: envDuration("COURIER_INITIAL_BACKOFF", 200*time.Millisecond),
			MaxBackoff:     envDuration("COURIER_MAX_BACKOFF", 2*time.Second),
		},

		Delivery: Delivery{
			ServiceRadiusKm: envFloat("DELIVERY_SERVICE_RADIUS_KM", 30),

			BaseFee:  envInt("DELIVERY_BASE_FEE", 40),
			PerKmFee: envInt("DELIVERY_PER_KM_FEE", 8),
			MaxFee:   envInt("DELIVERY_MAX_FEE", 300),
			CODFee:   envInt("DELIVERY_COD_FEE", 20),

			CutoffBuffer: envDuration("DELIVERY_CUTOFF_BUFFER", 3*time.Hour),
			HorizonDays:  envInt("DELIVERY_HORIZON_DAYS", 14),

			DispatchConcurrency: envInt("DISPATCH_CONCURRENCY", 4),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1024),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
