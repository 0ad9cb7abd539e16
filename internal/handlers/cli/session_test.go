package cli

import (
	"errors"
	"testing"

	"github.com/gabapcia/ethledger/internal/activity"
	"github.com/gabapcia/ethledger/internal/txfetch"
	txfetchtest "github.com/gabapcia/ethledger/internal/txfetch/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var storedSnapshot = txfetch.Snapshot{
	SessionID: "0198f0f0-0000-7000-8000-000000000000",
	State:     txfetch.StateCompleted,
	Result:    incomingResult,
}

func TestRetryCommand(t *testing.T) {
	t.Run("should restore the session and retry the address", func(t *testing.T) {
		// Arrange
		mockService := txfetchtest.NewService(t)
		dataset := activity.AddressDataset{Address: addrB, NativeTransfers: []activity.NativeTransfer{{Hash: "0x01"}}}

		mockService.EXPECT().Restore(mock.Anything).Return(storedSnapshot, nil).Once()
		mockService.EXPECT().Retry(mock.Anything, addrB, "key").Return(dataset, nil).Once()

		app, out, _ := newTestApp(mockService, "")

		// Act
		err := app.Run(t.Context(), []string{"ethledger", "retry", "--address", addrB, "--api-key", "key"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "fetched "+addrB+": 1 native and 0 token transfer(s)\n", out.String())
	})

	t.Run("should retry without a kept session", func(t *testing.T) {
		// Arrange
		mockService := txfetchtest.NewService(t)

		mockService.EXPECT().Restore(mock.Anything).Return(txfetch.Snapshot{}, txfetch.ErrSessionNotFound).Once()
		mockService.EXPECT().Snapshot().Return(txfetch.Snapshot{State: txfetch.StateIdle}).Once()
		mockService.EXPECT().Retry(mock.Anything, addrB, "").Return(activity.AddressDataset{Address: addrB}, nil).Once()

		app, _, _ := newTestApp(mockService, "")

		// Act
		err := app.Run(t.Context(), []string{"ethledger", "retry", "-a", addrB})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should return the retry error", func(t *testing.T) {
		// Arrange
		mockService := txfetchtest.NewService(t)
		expectedError := errors.New("Max rate limit reached")

		mockService.EXPECT().Restore(mock.Anything).Return(storedSnapshot, nil).Once()
		mockService.EXPECT().Retry(mock.Anything, addrB, "").Return(activity.AddressDataset{}, expectedError).Once()

		app, out, _ := newTestApp(mockService, "")

		// Act
		err := app.Run(t.Context(), []string{"ethledger", "retry", "--address", addrB})

		// Assert
		assert.ErrorIs(t, err, expectedError)
		assert.Empty(t, out.String())
	})

	t.Run("should fail when the storage fails", func(t *testing.T) {
		mockService := txfetchtest.NewService(t)
		expectedError := errors.New("redis down")
		mockService.EXPECT().Restore(mock.Anything).Return(txfetch.Snapshot{}, expectedError).Once()

		app, _, _ := newTestApp(mockService, "")

		err := app.Run(t.Context(), []string{"ethledger", "retry", "--address", addrB})

		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should fail when address flag is missing", func(t *testing.T) {
		mockService := txfetchtest.NewService(t)
		app, _, _ := newTestApp(mockService, "")

		err := app.Run(t.Context(), []string{"ethledger", "retry"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "address")
	})
}

func TestGenerateCommand(t *testing.T) {
	t.Run("should print the ledger of the kept session", func(t *testing.T) {
		// Arrange
		mockService := txfetchtest.NewService(t)
		mockService.EXPECT().Restore(mock.Anything).Return(storedSnapshot, nil).Once()

		app, out, _ := newTestApp(mockService, "")

		// Act
		err := app.Run(t.Context(), []string{"ethledger", "generate"})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out.String(), "; Generated: 2024-01-02T03:04:05Z\n")
		assert.Contains(t, out.String(), `2023-11-14 * "ETH Transfer In"`)
		assert.NotContains(t, out.String(), addrB)
	})

	t.Run("should fail without a kept session", func(t *testing.T) {
		mockService := txfetchtest.NewService(t)
		mockService.EXPECT().Restore(mock.Anything).Return(txfetch.Snapshot{}, txfetch.ErrSessionNotFound).Once()

		app, out, _ := newTestApp(mockService, "")

		err := app.Run(t.Context(), []string{"ethledger", "generate"})

		assert.ErrorIs(t, err, txfetch.ErrSessionNotFound)
		assert.Contains(t, err.Error(), "ethledger fetch")
		assert.Empty(t, out.String())
	})
}

func TestStatusCommand(t *testing.T) {
	t.Run("should render the session summary", func(t *testing.T) {
		// Arrange
		mockService := txfetchtest.NewService(t)
		mockService.EXPECT().Restore(mock.Anything).Return(storedSnapshot, nil).Once()

		app, out, _ := newTestApp(mockService, "")

		// Act
		err := app.Run(t.Context(), []string{"ethledger", "status"})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Fetch session")
		assert.Contains(t, out.String(), "Failed addresses")
		assert.Contains(t, out.String(), addrB)
	})

	t.Run("should fail without a kept session", func(t *testing.T) {
		mockService := txfetchtest.NewService(t)
		mockService.EXPECT().Restore(mock.Anything).Return(txfetch.Snapshot{}, txfetch.ErrSessionNotFound).Once()

		app, _, _ := newTestApp(mockService, "")

		err := app.Run(t.Context(), []string{"ethledger", "status"})

		assert.ErrorIs(t, err, txfetch.ErrSessionNotFound)
	})
}

func TestStatusMarkdown(t *testing.T) {
	t.Run("should list statistics and failures", func(t *testing.T) {
		snapshot := storedSnapshot
		snapshot.Failures = []activity.FailureRecord{{Address: addrB, Nickname: "Cold\n# injected", Error: "native transfers: HTTP 502"}}

		md := statusMarkdown(snapshot)

		assert.Contains(t, md, "Session `0198f0f0-0000-7000-8000-000000000000` is **completed**.")
		assert.Contains(t, md, "| Addresses fetched | 1 |\n")
		assert.Contains(t, md, "| Native transfers | 1 |\n")
		assert.Contains(t, md, "| Failed addresses | 1 |\n")
		assert.Contains(t, md, "- `"+addrB+"` Cold # injected: native transfers: HTTP 502\n")
		assert.NotContains(t, md, "\n# injected")
	})

	t.Run("should skip the failure section when everything succeeded", func(t *testing.T) {
		snapshot := storedSnapshot
		snapshot.Failures = nil

		assert.NotContains(t, statusMarkdown(snapshot), "## Failed addresses")
	})
}
