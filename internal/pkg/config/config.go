package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// LogFile, when set, sends logs to a rotating file instead of stdout.
	LogFile string `env:"LOG_FILE"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Geocoder   GeocoderConfig
	Share      ShareConfig
	Remittance RemittanceConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tracking"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type GeocoderConfig struct {
	BaseURL    string        `env:"GEOCODER_BASE_URL,     default=https://nominatim.openstreetmap.org"`
	UserAgent  string        `env:"GEOCODER_USER_AGENT,   default=globalway-tracking-service"`
	Timeout    time.Duration `env:"GEOCODER_TIMEOUT,      default=5s"`
	RatePerSec float64       `env:"GEOCODER_RATE_PER_SEC, default=1"`
}

type ShareConfig struct {
	// BaseURL is the public site prefix minted share links point at.
	BaseURL string        `env:"SHARE_BASE_URL, default=https://globalway-logistics.example"`
	TTL     time.Duration `env:"SHARE_TTL,      default=168h"`
}

// RemittanceConfig holds the bank-transfer details printed on unpaid
// invoices. Content policy, configured rather than hardcoded.
type RemittanceConfig struct {
	BankName      string `env:"REMIT_BANK_NAME,      default=First Meridian Bank"`
	AccountName   string `env:"REMIT_ACCOUNT_NAME,   default=GlobalWay Logistics Ltd"`
	AccountNumber string `env:"REMIT_ACCOUNT_NUMBER, default=0044-221998-01"`
	SwiftCode     string `env:"REMIT_SWIFT_CODE,     default=FMRDUS33"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
