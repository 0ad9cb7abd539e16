package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabapcia/ethledger/internal/addressbook"

	"github.com/urfave/cli/v3"
)

// ErrNoValidAddresses is returned when the address input holds nothing usable.
var ErrNoValidAddresses = errors.New("no valid addresses given")

func addressFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "address",
			Aliases: []string{"a"},
			Usage:   "Address to include, optionally as address:nickname. Repeatable.",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "File with one address:nickname per line or comma separated; - reads stdin",
		},
	}
}

func apiKeyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "api-key",
		Usage:   "Explorer API key; the explorer's public key is used when empty",
		Sources: cli.EnvVars(apiKeyEnv),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the ledger to this file instead of stdout",
	}
}

// readAddresses collects the --address values and the --file content and
// parses them as one address list.
func readAddresses(c *cli.Command) ([]addressbook.ParsedAddress, error) {
	parts := c.StringSlice("address")

	switch file := c.String("file"); file {
	case "":
	case "-":
		data, err := io.ReadAll(c.Root().Reader)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		parts = append(parts, string(data))
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		parts = append(parts, string(data))
	}

	addresses := addressbook.Parse(strings.Join(parts, "\n"))
	if len(addresses) == 0 {
		return nil, ErrNoValidAddresses
	}

	return addresses, nil
}

// writeLedger writes doc to --output, or to stdout when it is not set.
func writeLedger(c *cli.Command, doc string) error {
	path := c.String("output")
	if path == "" {
		_, err := io.WriteString(c.Root().Writer, doc)
		return err
	}

	return os.WriteFile(path, []byte(doc), 0o644)
}
