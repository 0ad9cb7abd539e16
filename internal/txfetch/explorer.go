package txfetch

import (
	"context"

	"github.com/gabapcia/ethledger/internal/activity"
)

// Explorer retrieves the account activity of one address from a block
// explorer. Implementations retry transient failures on their own; an error
// returned here is final for the current attempt.
type Explorer interface {
	// NativeTransfers returns the native asset transfers of address. An
	// address without activity yields an empty slice and no error.
	NativeTransfers(ctx context.Context, address, apiKey string) ([]activity.NativeTransfer, error)

	// TokenTransfers returns the token transfers involving address. An
	// address without activity yields an empty slice and no error.
	TokenTransfers(ctx context.Context, address, apiKey string) ([]activity.TokenTransfer, error)
}
