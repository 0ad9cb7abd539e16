// Package ledger renders fetched account activity as a Beancount ledger.
//
// A document has four sections: a comment header, commodity declarations,
// account declarations and the transactions in time order. Every piece of
// free text that reaches the document (token names and symbols, nicknames)
// goes through the sanitize package first. Output is deterministic except for
// the generation timestamp in the header.
package ledger

import (
	"strings"
	"time"

	"github.com/gabapcia/ethledger/internal/activity"
	"github.com/gabapcia/ethledger/internal/addressbook"
	"github.com/gabapcia/ethledger/internal/pkg/types"
	"github.com/gabapcia/ethledger/internal/sanitize"
)

const (
	// DefaultExplorerURL prefixes the per-address links of the header.
	DefaultExplorerURL = "https://etherscan.io/address/"

	// NativeSymbol is the commodity of the native asset.
	NativeSymbol = "ETH"

	nativeName = "Ethereum"
	epoch      = "1970-01-01"
	dateLayout = "2006-01-02"
)

// Generator turns datasets into a ledger document.
type Generator interface {
	Generate(datasets []activity.AddressDataset) string
}

type generator struct {
	now         func() time.Time
	explorerURL string
}

var _ Generator = (*generator)(nil)

type config struct {
	now         func() time.Time
	explorerURL string
}

type Option func(*config)

// WithClock sets the source of the generation timestamp. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithExplorerURL sets the prefix of the address links in the header.
// Default: DefaultExplorerURL.
func WithExplorerURL(u string) Option {
	return func(c *config) {
		c.explorerURL = u
	}
}

func New(opts ...Option) *generator {
	cfg := config{
		now:         time.Now,
		explorerURL: DefaultExplorerURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &generator{
		now:         cfg.now,
		explorerURL: cfg.explorerURL,
	}
}

// Commodity is a token commodity declared in the ledger.
type Commodity struct {
	Symbol          string
	Name            string
	OriginalSymbol  string // sanitized raw symbol, set only when sanitization changed it
	ContractAddress string
}

// Commodities collects the token commodities referenced by datasets,
// deduplicated by sanitized symbol. The first transfer seen for a symbol
// provides its name and contract.
func Commodities(datasets []activity.AddressDataset) []Commodity {
	seen := types.NewSet[string]()
	var out []Commodity

	for _, d := range datasets {
		for _, tx := range d.TokenTransfers {
			symbol := sanitize.Symbol(tx.TokenSymbol)
			if seen.Has(symbol) {
				continue
			}
			seen.Add(symbol)

			commodity := Commodity{
				Symbol:          symbol,
				Name:            sanitize.Text(tx.TokenName),
				ContractAddress: addressbook.Normalize(tx.ContractAddress),
			}
			if commodity.Name == "" {
				commodity.Name = symbol
			}
			if tx.TokenSymbol != symbol {
				commodity.OriginalSymbol = sanitize.Text(tx.TokenSymbol)
			}

			out = append(out, commodity)
		}
	}

	return out
}

// Generate renders datasets. Failed addresses are not part of the input:
// the ledger only covers what was fetched.
func (g *generator) Generate(datasets []activity.AddressDataset) string {
	b := newBook()
	for _, d := range datasets {
		b.addUser(d.Address, d.Nickname)
	}

	w := &writer{}
	g.writeHeader(w, b)
	writeCommodities(w, Commodities(datasets))
	writeAccounts(w, datasets, b)
	writeEntries(w, collectEntries(datasets), b)

	return strings.TrimRight(w.String(), "\n") + "\n"
}

func (g *generator) writeHeader(w *writer, b *book) {
	w.line("; Ethereum Beancount Export")
	w.line("; Generated: " + g.now().UTC().Format(time.RFC3339))
	w.line(";")
	w.line("; Addresses:")

	for _, address := range b.userOrder {
		if nickname := sanitize.Text(b.nickname(address)); nickname != "" {
			w.line("; - " + nickname + " (" + address + ")")
		} else {
			w.line("; - " + address)
		}
		w.line(";   " + g.explorerURL + address)
	}

	w.blank()
}

func writeCommodities(w *writer, commodities []Commodity) {
	w.line(epoch + " commodity " + NativeSymbol)
	w.meta("name", nativeName)
	w.blank()

	for _, c := range commodities {
		w.line(epoch + " commodity " + c.Symbol)
		w.meta("name", c.Name)
		if c.OriginalSymbol != "" {
			w.meta("original_symbol", c.OriginalSymbol)
		}
		if c.ContractAddress != "" {
			w.meta("contract", c.ContractAddress)
		}
		w.blank()
	}
}

// counterparty returns the other side of a native transfer; contract
// creations have no recipient but a created contract.
func counterparty(to, contractAddress string) string {
	if to == "" {
		return contractAddress
	}

	return to
}

func writeAccounts(w *writer, datasets []activity.AddressDataset, b *book) {
	declared := types.NewOrderedSet[string]()
	open := func(account, currency string) {
		if !declared.Add(account) {
			return
		}

		if currency == "" {
			w.line(epoch + " open " + account)
			return
		}
		w.line(epoch + " open " + account + " " + currency)
	}

	for _, address := range b.userOrder {
		open(b.userAccount(address), NativeSymbol)
	}

	for _, d := range datasets {
		for _, tx := range d.TokenTransfers {
			symbol := sanitize.Symbol(tx.TokenSymbol)
			for _, address := range []string{tx.From, tx.To} {
				if b.isUser(address) {
					open(b.tokenAccount(tx.TokenSymbol, address), symbol)
				}
			}
		}
	}

	externals := types.NewOrderedSet[string]()
	for _, d := range datasets {
		for _, tx := range d.NativeTransfers {
			for _, address := range []string{tx.From, counterparty(tx.To, tx.ContractAddress)} {
				if !b.isUser(address) {
					externals.Add(ExternalAccount(address))
				}
			}
		}
		for _, tx := range d.TokenTransfers {
			for _, address := range []string{tx.From, tx.To} {
				if !b.isUser(address) {
					externals.Add(ExternalAccount(address))
				}
			}
		}
	}
	for account := range externals.All() {
		open(account, "")
	}

	open(GasFeesAccount, "")
	open(NetworkFeesAccount, "")
	w.blank()
}

// writer accumulates the document line by line.
type writer struct {
	strings.Builder
}

func (w *writer) line(s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}

func (w *writer) blank() {
	w.WriteByte('\n')
}

// meta writes an indented metadata line. value must already be free of
// double quotes and line breaks.
func (w *writer) meta(key, value string) {
	w.line("  " + key + ": \"" + value + "\"")
}
