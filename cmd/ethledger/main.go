package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/ethledger/internal/config"
	"github.com/gabapcia/ethledger/internal/handlers/cli"
	"github.com/gabapcia/ethledger/internal/infra/explorer/etherscan"
	"github.com/gabapcia/ethledger/internal/infra/storage/redis"
	"github.com/gabapcia/ethledger/internal/ledger"
	"github.com/gabapcia/ethledger/internal/pkg/logger"
	"github.com/gabapcia/ethledger/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/ethledger/internal/pkg/transport/http"
	"github.com/gabapcia/ethledger/internal/txfetch"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "ethledger:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	explorerOpts := []etherscan.Option{
		etherscan.WithBaseURL(cfg.Explorer.BaseURL),
		etherscan.WithChainID(cfg.Explorer.ChainID),
		etherscan.WithDefaultAPIKey(cfg.Explorer.DefaultAPIKey),
		etherscan.WithHTTPClient(transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.Explorer.Timeout),
			transporthttp.WithRetryMax(cfg.Explorer.Attempts-1),
			transporthttp.WithRetryWaitMin(cfg.Explorer.RetryWaitMin),
			transporthttp.WithRetryWaitMax(cfg.Explorer.RetryWaitMax),
		)),
	}
	if cfg.APIKey != "" {
		explorerOpts = append(explorerOpts, etherscan.WithDefaultAPIKey(cfg.APIKey))
	}

	explorer, err := etherscan.NewClient(explorerOpts...)
	if err != nil {
		return fmt.Errorf("explorer: %w", err)
	}

	fetchOpts := []txfetch.Option{
		txfetch.WithAddressDelay(cfg.Fetch.AddressDelay),
		txfetch.WithEndpointDelay(cfg.Fetch.EndpointDelay),
	}

	if cfg.Redis.Addr != "" {
		storage, err := redis.NewClient(ctx, cfg.Redis.Addr,
			redis.WithCredentials(cfg.Redis.Username, cfg.Redis.Password),
			redis.WithDB(cfg.Redis.DB),
			redis.WithSessionTTL(cfg.Redis.SessionTTL),
		)
		if err != nil {
			return fmt.Errorf("session storage: %w", err)
		}
		defer func() {
			err = errors.Join(err, storage.Close())
		}()

		fetchOpts = append(fetchOpts, txfetch.WithSessionStorage(storage))
	} else {
		logger.Debug(ctx, "session storage disabled, sessions are kept in memory")
	}

	gen := ledger.New(ledger.WithExplorerURL(cfg.Explorer.AddressURL))

	return cli.Run(ctx, txfetch.New(explorer, fetchOpts...), gen)
}
