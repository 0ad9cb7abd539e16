package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabapcia/ethledger/internal/ledger"
	"github.com/gabapcia/ethledger/internal/sanitize"
	"github.com/gabapcia/ethledger/internal/txfetch"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
)

// restore loads the kept session. A missing session is only an error when
// required is set.
func restore(ctx context.Context, svc txfetch.Service, required bool) (txfetch.Snapshot, error) {
	snapshot, err := svc.Restore(ctx)
	if errors.Is(err, txfetch.ErrSessionNotFound) {
		if required {
			return txfetch.Snapshot{}, fmt.Errorf("%w: run `ethledger fetch` first", err)
		}
		return svc.Snapshot(), nil
	}

	return snapshot, err
}

// retryCommand returns a CLI command that fetches one address of the kept
// session again.
//
// Usage example:
//
//	ethledger retry --address 0xABC123...
func retryCommand(svc txfetch.Service) *cli.Command {
	return &cli.Command{
		Name:        "retry",
		Description: "Fetch a single address of the current session again.",
		Usage:       "Retries one address. On success it replaces the failure, on failure the error is updated.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Aliases:  []string{"a"},
				Usage:    "Address to fetch again",
				Required: true,
			},
			apiKeyFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := restore(ctx, svc, false); err != nil {
				return err
			}

			dataset, err := svc.Retry(ctx, c.String("address"), c.String("api-key"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "fetched %s: %d native and %d token transfer(s)\n",
				dataset.Address, len(dataset.NativeTransfers), len(dataset.TokenTransfers))
			return nil
		},
	}
}

// generateCommand returns a CLI command that prints the ledger of the kept
// session.
//
// Usage example:
//
//	ethledger generate -o main.beancount
func generateCommand(svc txfetch.Service, gen ledger.Generator) *cli.Command {
	return &cli.Command{
		Name:        "generate",
		Description: "Print the current session as a Beancount ledger.",
		Usage:       "Generates the ledger from the addresses fetched so far.",
		Flags:       []cli.Flag{outputFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			snapshot, err := restore(ctx, svc, true)
			if err != nil {
				return err
			}

			return writeLedger(c, gen.Generate(snapshot.Datasets))
		},
	}
}

// statusMarkdown describes a session for a terminal.
func statusMarkdown(snapshot txfetch.Snapshot) string {
	stats := txfetch.ComputeStats(snapshot)

	var b strings.Builder
	b.WriteString("# Fetch session\n\n")
	fmt.Fprintf(&b, "Session `%s` is **%s**.\n\n", snapshot.SessionID, snapshot.State)
	b.WriteString("| Metric | Count |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Addresses fetched | %d |\n", stats.Addresses)
	fmt.Fprintf(&b, "| Native transfers | %d |\n", stats.NativeTransfers)
	fmt.Fprintf(&b, "| Token transfers | %d |\n", stats.TokenTransfers)
	fmt.Fprintf(&b, "| Failed transactions | %d |\n", stats.FailedTransactions)
	fmt.Fprintf(&b, "| Failed addresses | %d |\n", stats.FailedAddresses)

	if len(snapshot.Failures) > 0 {
		b.WriteString("\n## Failed addresses\n\n")
		for _, f := range snapshot.Failures {
			label := "`" + f.Address + "`"
			if nickname := sanitize.Text(f.Nickname); nickname != "" {
				label += " " + nickname
			}
			fmt.Fprintf(&b, "- %s: %s\n", label, sanitize.Text(f.Error))
		}
	}

	return b.String()
}

func renderMarkdown(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}

	out, err := r.Render(md)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// statusCommand returns a CLI command that summarizes the kept session.
//
// Usage example:
//
//	ethledger status
func statusCommand(svc txfetch.Service) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Show statistics and failed addresses of the current session.",
		Usage:       "Summarizes the current session.",
		Action: func(ctx context.Context, c *cli.Command) error {
			snapshot, err := restore(ctx, svc, true)
			if err != nil {
				return err
			}

			return renderMarkdown(c.Root().Writer, statusMarkdown(snapshot))
		},
	}
}
