package config

import (
	"testing"
	"time"

	"github.com/gabapcia/ethledger/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "https://api.etherscan.io/v2/api", cfg.Explorer.BaseURL)
		assert.Equal(t, "1", cfg.Explorer.ChainID)
		assert.Equal(t, "YourEtherscanAPIKeyToken", cfg.Explorer.DefaultAPIKey)
		assert.Equal(t, "https://etherscan.io/address/", cfg.Explorer.AddressURL)
		assert.Equal(t, 30*time.Second, cfg.Explorer.Timeout)
		assert.Equal(t, 3, cfg.Explorer.Attempts)
		assert.Equal(t, time.Second, cfg.Explorer.RetryWaitMin)
		assert.Equal(t, 8*time.Second, cfg.Explorer.RetryWaitMax)
		assert.Equal(t, 500*time.Millisecond, cfg.Fetch.AddressDelay)
		assert.Equal(t, 300*time.Millisecond, cfg.Fetch.EndpointDelay)
		assert.Empty(t, cfg.Redis.Addr)
		assert.Equal(t, 168*time.Hour, cfg.Redis.SessionTTL)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "ethledger", cfg.Telemetry.ServiceName)
	})

	t.Run("should read prefixed variables", func(t *testing.T) {
		t.Setenv("ETHLEDGER_LOG_LEVEL", "debug")
		t.Setenv("ETHLEDGER_API_KEY", "secret")
		t.Setenv("ETHLEDGER_EXPLORER_CHAIN_ID", "137")
		t.Setenv("ETHLEDGER_EXPLORER_ATTEMPTS", "5")
		t.Setenv("ETHLEDGER_FETCH_ADDRESS_DELAY", "1s")
		t.Setenv("ETHLEDGER_REDIS_ADDR", "localhost:6379")
		t.Setenv("ETHLEDGER_REDIS_DB", "2")
		t.Setenv("ETHLEDGER_TELEMETRY_ENABLED", "true")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "137", cfg.Explorer.ChainID)
		assert.Equal(t, 5, cfg.Explorer.Attempts)
		assert.Equal(t, time.Second, cfg.Fetch.AddressDelay)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.True(t, cfg.Telemetry.Enabled)
	})

	t.Run("should reject an unknown log level", func(t *testing.T) {
		t.Setenv("ETHLEDGER_LOG_LEVEL", "verbose")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "'LogLevel'")
	})

	t.Run("should reject inverted backoff bounds", func(t *testing.T) {
		t.Setenv("ETHLEDGER_EXPLORER_RETRY_WAIT_MIN", "10s")
		t.Setenv("ETHLEDGER_EXPLORER_RETRY_WAIT_MAX", "1s")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "'RetryWaitMax'")
	})

	t.Run("should reject a malformed redis address", func(t *testing.T) {
		t.Setenv("ETHLEDGER_REDIS_ADDR", "not an address")

		_, err := Load()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should fail on unparsable values", func(t *testing.T) {
		t.Setenv("ETHLEDGER_EXPLORER_TIMEOUT", "soon")

		_, err := Load()

		require.Error(t, err)
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
	})
}
