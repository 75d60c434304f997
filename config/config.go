package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
	Booking       BookingConfig       `envconfig:"BOOKING"`
	Apm           ApmConfig           `envconfig:"APM"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type HttpClientConfig struct {
	// Type selects the circuit breaker: consecutive, threshold or rate.
	Type       string        `envconfig:"TYPE" default:"consecutive"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"5s"`
	Threshold  int64         `envconfig:"THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"RATE" default:"0.5"`
	MinSamples int64         `envconfig:"MIN_SAMPLES" default:"10"`
	RateLimit  float64       `envconfig:"RATE_LIMIT" default:"10"`
	Burst      int           `envconfig:"BURST" default:"5"`
	BaseURL    string        `envconfig:"BASE_URL" default:"http://localhost:8000"`
}

type DatabaseConfig struct {
	// Driver is memory or postgres.
	Driver       string `envconfig:"DRIVER" default:"memory"`
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"5432"`
	User         string `envconfig:"USER" default:"postgres"`
	Password     string `envconfig:"PASSWORD"`
	Name         string `envconfig:"NAME" default:"tours"`
	SSLMode      string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"10"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type SchedulerConfig struct {
	Enabled     bool `envconfig:"ENABLED" default:"false"`
	Concurrency int  `envconfig:"CONCURRENCY" default:"10"`
	Monitoring  bool `envconfig:"MONITORING" default:"false"`
}

type BookingConfig struct {
	// LedgerDriver is memory or redis.
	LedgerDriver  string        `envconfig:"LEDGER_DRIVER" default:"memory"`
	PaymentWindow time.Duration `envconfig:"PAYMENT_WINDOW" default:"15m"`
	PixKey        string        `envconfig:"PIX_KEY" default:"reservas@pipacanoe.com.br"`
	MerchantName  string        `envconfig:"MERCHANT_NAME" default:"PIPA CANOE TOURS"`
	MerchantCity  string        `envconfig:"MERCHANT_CITY" default:"TIBAU DO SUL"`
}

type ApmConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"tour-booking"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	return &cfg
}
