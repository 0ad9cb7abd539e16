package cli

import (
	"context"
	"os"

	"github.com/gabapcia/ethledger/internal/ledger"
	"github.com/gabapcia/ethledger/internal/txfetch"

	"github.com/urfave/cli/v3"
)

// apiKeyEnv lets the explorer key stay out of the shell history.
const apiKeyEnv = "ETHLEDGER_API_KEY"

// newApp builds the command tree.
func newApp(svc txfetch.Service, gen ledger.Generator) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ethledger",
		Description:           "Turns Ethereum account activity into a Beancount ledger.",
		Usage:                 "ethledger [command] [flags]",
		Commands: []*cli.Command{
			exportCommand(svc, gen),
			fetchCommand(svc),
			retryCommand(svc),
			generateCommand(svc, gen),
			statusCommand(svc),
		},
	}
}

// Run initializes and executes the ethledger CLI application.
//
// It registers all available commands:
//
//   - `export`: fetches the given addresses and prints the ledger.
//   - `fetch`: fetches the given addresses and keeps the session.
//   - `retry`: fetches one address of the kept session again.
//   - `generate`: prints the ledger of the kept session.
//   - `status`: summarizes the kept session.
func Run(ctx context.Context, svc txfetch.Service, gen ledger.Generator) error {
	return newApp(svc, gen).Run(ctx, os.Args)
}
