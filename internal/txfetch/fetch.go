package txfetch

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/ethledger/internal/activity"
	"github.com/gabapcia/ethledger/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// fetchAddress performs the two explorer calls for one address, pausing
// between them. Either call failing fails the whole address.
func (s *service) fetchAddress(ctx context.Context, address, nickname, apiKey string) (activity.AddressDataset, error) {
	ctx, span := s.tracer.Start(ctx, "txfetch.fetchAddress", trace.WithAttributes(
		attribute.String("address", address),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "address", address)

	dataset, err := s.fetchTransfers(ctx, address, nickname, apiKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "address fetch failed", "error", err)
		return activity.AddressDataset{}, err
	}

	span.SetAttributes(
		attribute.Int("native_transfers", len(dataset.NativeTransfers)),
		attribute.Int("token_transfers", len(dataset.TokenTransfers)),
	)
	logger.Info(ctx, "address fetched",
		"native_transfers", len(dataset.NativeTransfers),
		"token_transfers", len(dataset.TokenTransfers),
	)

	return dataset, nil
}

func (s *service) fetchTransfers(ctx context.Context, address, nickname, apiKey string) (activity.AddressDataset, error) {
	native, err := s.explorer.NativeTransfers(ctx, address, apiKey)
	if err != nil {
		return activity.AddressDataset{}, fmt.Errorf("native transfers: %w", err)
	}

	if err := sleep(ctx, s.endpointDelay); err != nil {
		return activity.AddressDataset{}, err
	}

	tokens, err := s.explorer.TokenTransfers(ctx, address, apiKey)
	if err != nil {
		return activity.AddressDataset{}, fmt.Errorf("token transfers: %w", err)
	}

	if native == nil {
		native = []activity.NativeTransfer{}
	}
	if tokens == nil {
		tokens = []activity.TokenTransfer{}
	}

	return activity.AddressDataset{
		Address:         address,
		Nickname:        nickname,
		NativeTransfers: native,
		TokenTransfers:  tokens,
	}, nil
}
