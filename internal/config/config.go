// Package config loads the application configuration from ETHLEDGER_*
// environment variables.
package config

import (
	"time"

	"github.com/gabapcia/ethledger/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. ETHLEDGER_LOG_LEVEL.
const Prefix = "ETHLEDGER"

type Explorer struct {
	BaseURL       string        `envconfig:"BASE_URL" default:"https://api.etherscan.io/v2/api" validate:"required,url"`
	ChainID       string        `envconfig:"CHAIN_ID" default:"1" validate:"required,number"`
	DefaultAPIKey string        `envconfig:"DEFAULT_API_KEY" default:"YourEtherscanAPIKeyToken"`
	AddressURL    string        `envconfig:"ADDRESS_URL" default:"https://etherscan.io/address/" validate:"required,url"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	Attempts      int           `envconfig:"ATTEMPTS" default:"3" validate:"min=1,max=10"`
	RetryWaitMin  time.Duration `envconfig:"RETRY_WAIT_MIN" default:"1s" validate:"gte=0"`
	RetryWaitMax  time.Duration `envconfig:"RETRY_WAIT_MAX" default:"8s" validate:"gtefield=RetryWaitMin"`
}

type Fetch struct {
	AddressDelay  time.Duration `envconfig:"ADDRESS_DELAY" default:"500ms" validate:"gte=0"`
	EndpointDelay time.Duration `envconfig:"ENDPOINT_DELAY" default:"300ms" validate:"gte=0"`
}

// Redis configures session storage. Sessions are kept in memory only when
// Addr is empty.
type Redis struct {
	Addr       string        `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username   string        `envconfig:"USERNAME"`
	Password   string        `envconfig:"PASSWORD"`
	DB         int           `envconfig:"DB" default:"0" validate:"gte=0"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"168h" validate:"gte=0"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"ethledger" validate:"required"`
}

type Config struct {
	LogLevel  string    `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	APIKey    string    `envconfig:"API_KEY"`
	Explorer  Explorer  `envconfig:"EXPLORER"`
	Fetch     Fetch     `envconfig:"FETCH"`
	Redis     Redis     `envconfig:"REDIS"`
	Telemetry Telemetry `envconfig:"TELEMETRY"`
}

// Load reads the environment, applies defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
