package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gabapcia/ethledger/internal/activity"
	"github.com/gabapcia/ethledger/internal/ledger"
	"github.com/gabapcia/ethledger/internal/sanitize"
	"github.com/gabapcia/ethledger/internal/txfetch"

	"github.com/urfave/cli/v3"
)

// progressPrinter reports each address on w before it is fetched.
func progressPrinter(w io.Writer) txfetch.ProgressFunc {
	return func(p txfetch.Progress) {
		if nickname := sanitize.Text(p.Nickname); nickname != "" {
			fmt.Fprintf(w, "[%d/%d] fetching %s (%s)\n", p.Index, p.Total, nickname, p.Address)
			return
		}
		fmt.Fprintf(w, "[%d/%d] fetching %s\n", p.Index, p.Total, p.Address)
	}
}

func printFailures(w io.Writer, failures []activity.FailureRecord) {
	if len(failures) == 0 {
		return
	}

	fmt.Fprintf(w, "%d address(es) failed, run `ethledger retry --address <address>` to try again:\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(w, "  %s: %s\n", f.Address, f.Error)
	}
}

// fetchAddresses runs a fetch session for the addresses given on the command line.
func fetchAddresses(ctx context.Context, c *cli.Command, svc txfetch.Service) (txfetch.Result, error) {
	addresses, err := readAddresses(c)
	if err != nil {
		return txfetch.Result{}, err
	}

	result, err := svc.FetchAll(ctx, addresses, c.String("api-key"), progressPrinter(c.Root().ErrWriter))
	if err != nil {
		return txfetch.Result{}, err
	}

	printFailures(c.Root().ErrWriter, result.Failures)
	return result, nil
}

// exportCommand returns a CLI command that fetches the given addresses and
// prints their ledger in one go.
//
// Usage example:
//
//	ethledger export --address 0xABC...:Main --file more.txt -o main.beancount
func exportCommand(svc txfetch.Service, gen ledger.Generator) *cli.Command {
	return &cli.Command{
		Name:        "export",
		Description: "Fetch the activity of the given addresses and print it as a Beancount ledger.",
		Usage:       "Fetches addresses and writes the ledger. Failed addresses are reported and left out.",
		Flags:       append(addressFlags(), apiKeyFlag(), outputFlag()),
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := fetchAddresses(ctx, c, svc)
			if err != nil {
				return err
			}

			return writeLedger(c, gen.Generate(result.Datasets))
		},
	}
}

// fetchCommand returns a CLI command that fetches the given addresses and
// keeps the session for later retry, generate and status calls.
//
// Usage example:
//
//	ethledger fetch --file addresses.txt
func fetchCommand(svc txfetch.Service) *cli.Command {
	return &cli.Command{
		Name:        "fetch",
		Description: "Fetch the activity of the given addresses and keep it as the current session.",
		Usage:       "Fetches addresses without generating a ledger.",
		Flags:       append(addressFlags(), apiKeyFlag()),
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := fetchAddresses(ctx, c, svc)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "fetched %d address(es), %d failed\n", len(result.Datasets), len(result.Failures))
			return nil
		},
	}
}
