// Package etherscan implements the txfetch.Explorer interface on top of the
// Etherscan v2 account API (or any compatible block explorer).
//
// Transport failures and non-2xx statuses are retried with exponential backoff
// by the retrying HTTP transport. Errors reported by the explorer itself are
// never retried. Records are validated one by one and malformed entries are
// dropped without failing the request.
package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gabapcia/ethledger/internal/activity"
	transporthttp "github.com/gabapcia/ethledger/internal/pkg/transport/http"
	"github.com/gabapcia/ethledger/internal/txfetch"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// DefaultBaseURL is the Etherscan v2 multichain endpoint.
	DefaultBaseURL = "https://api.etherscan.io/v2/api"

	// DefaultChainID selects Ethereum mainnet.
	DefaultChainID = "1"

	// DefaultAPIKey is the explorer's public placeholder key, used when the
	// caller does not provide one.
	DefaultAPIKey = "YourEtherscanAPIKeyToken"

	// DefaultTimeout bounds a single HTTP attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultAttempts is the number of tries for one request, first one included.
	DefaultAttempts = 3

	// DefaultRetryWaitMin is the first backoff delay, doubled on every retry.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the backoff delay.
	DefaultRetryWaitMax = 8 * time.Second

	actionNativeTransfers = "txlist"
	actionTokenTransfers  = "tokentx"

	instrumentationName = "github.com/gabapcia/ethledger/internal/infra/explorer/etherscan"
)

const (
	outcomeOK             = "ok"
	outcomeEmpty          = "empty"
	outcomeAPIError       = "api_error"
	outcomeTransportError = "transport_error"
)

// config holds the settings applied by Option values.
type config struct {
	baseURL       string
	chainID       string
	defaultAPIKey string
	httpClient    *retryablehttp.Client
	meter         metric.Meter
}

// Option customizes the explorer client.
type Option func(*config)

// WithBaseURL overrides the explorer endpoint. Default: DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// WithChainID overrides the chain identifier sent with every request.
// Default: DefaultChainID.
func WithChainID(id string) Option {
	return func(c *config) {
		c.chainID = id
	}
}

// WithDefaultAPIKey overrides the key used when a call passes a blank one.
// Default: DefaultAPIKey.
func WithDefaultAPIKey(key string) Option {
	return func(c *config) {
		c.defaultAPIKey = key
	}
}

// WithHTTPClient replaces the retrying HTTP client. The client's retry policy
// and backoff bounds are used as is.
func WithHTTPClient(hc *retryablehttp.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// WithMeter sets the meter used for request metrics. Default: the global
// MeterProvider.
func WithMeter(m metric.Meter) Option {
	return func(c *config) {
		c.meter = m
	}
}

// client talks to the explorer over HTTP.
type client struct {
	baseURL       string
	chainID       string
	defaultAPIKey string
	httpClient    *retryablehttp.Client

	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// Ensure client implements the txfetch.Explorer interface at compile time.
var _ txfetch.Explorer = (*client)(nil)

// NewClient builds an explorer client. Without options it targets Ethereum
// mainnet on Etherscan with three attempts per request, backing off from one
// second up to eight seconds, and a 30 second timeout per attempt.
func NewClient(opts ...Option) (*client, error) {
	cfg := config{
		baseURL:       DefaultBaseURL,
		chainID:       DefaultChainID,
		defaultAPIKey: DefaultAPIKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = transporthttp.NewClient(
			transporthttp.WithTimeout(DefaultTimeout),
			transporthttp.WithRetryWaitMin(DefaultRetryWaitMin),
			transporthttp.WithRetryWaitMax(DefaultRetryWaitMax),
			transporthttp.WithRetryMax(DefaultAttempts-1),
		)
	}

	if cfg.meter == nil {
		cfg.meter = otel.Meter(instrumentationName)
	}

	requests, err := cfg.meter.Int64Counter(
		"explorer.requests",
		metric.WithDescription("Explorer API requests by action and outcome."),
	)
	if err != nil {
		return nil, err
	}

	duration, err := cfg.meter.Float64Histogram(
		"explorer.request.duration",
		metric.WithDescription("Explorer API request duration, retries included."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &client{
		baseURL:       cfg.baseURL,
		chainID:       cfg.chainID,
		defaultAPIKey: cfg.defaultAPIKey,
		httpClient:    cfg.httpClient,
		requests:      requests,
		duration:      duration,
	}, nil
}

// buildURL returns the request URL for an account action. A blank apiKey falls
// back to the configured default key.
func (c *client) buildURL(action, address, apiKey string) string {
	if apiKey == "" {
		apiKey = c.defaultAPIKey
	}

	params := url.Values{}
	params.Set("chainid", c.chainID)
	params.Set("module", "account")
	params.Set("action", action)
	params.Set("address", address)
	params.Set("startblock", "0")
	params.Set("endblock", "99999999")
	params.Set("sort", "asc")
	params.Set("apikey", apiKey)

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL + "?" + params.Encode()
	}

	u.RawQuery = params.Encode()
	return u.String()
}

// NativeTransfersURL returns the txlist request URL for address.
func (c *client) NativeTransfersURL(address, apiKey string) string {
	return c.buildURL(actionNativeTransfers, address, apiKey)
}

// TokenTransfersURL returns the tokentx request URL for address.
func (c *client) TokenTransfersURL(address, apiKey string) string {
	return c.buildURL(actionTokenTransfers, address, apiKey)
}

func (c *client) observe(ctx context.Context, action, outcome string, start time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("outcome", outcome),
	)

	c.requests.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// fetch performs one explorer call, retries included, and returns the raw
// records of a successful answer.
func (c *client) fetch(ctx context.Context, action, address, apiKey string) (records []json.RawMessage, err error) {
	start := time.Now()
	outcome := outcomeOK
	defer func() { c.observe(ctx, action, outcome, start) }()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(action, address, apiKey), nil)
	if err != nil {
		outcome = outcomeTransportError
		return nil, &TransportError{Err: err}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		outcome = outcomeTransportError
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		outcome = outcomeTransportError
		return nil, &TransportError{StatusCode: res.StatusCode}
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		outcome = outcomeTransportError
		return nil, &TransportError{StatusCode: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if err := data.Err(); err != nil {
		outcome = outcomeAPIError
		return nil, err
	}

	records = data.records()
	if len(records) == 0 {
		outcome = outcomeEmpty
	}

	return records, nil
}

// NativeTransfers returns the native transfers of address in ascending block
// order. An address without activity yields an empty slice and no error.
func (c *client) NativeTransfers(ctx context.Context, address, apiKey string) ([]activity.NativeTransfer, error) {
	raw, err := c.fetch(ctx, actionNativeTransfers, address, apiKey)
	if err != nil {
		return nil, err
	}

	return decodeRecords(ctx, actionNativeTransfers, raw, nativeTransferRecord.toActivity), nil
}

// TokenTransfers returns the ERC-20 transfers involving address in ascending
// block order. An address without activity yields an empty slice and no error.
func (c *client) TokenTransfers(ctx context.Context, address, apiKey string) ([]activity.TokenTransfer, error) {
	raw, err := c.fetch(ctx, actionTokenTransfers, address, apiKey)
	if err != nil {
		return nil, err
	}

	return decodeRecords(ctx, actionTokenTransfers, raw, tokenTransferRecord.toActivity), nil
}
