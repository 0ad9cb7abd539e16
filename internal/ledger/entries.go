package ledger

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/ethledger/internal/activity"
	"github.com/gabapcia/ethledger/internal/addressbook"
	"github.com/gabapcia/ethledger/internal/pkg/types"
	"github.com/gabapcia/ethledger/internal/sanitize"

	"github.com/shopspring/decimal"
)

const (
	flagCleared = "*"
	flagFailed  = "!"
)

// entry is one transfer awaiting rendering. Exactly one of native and token
// is set.
type entry struct {
	timestamp int64
	native    *activity.NativeTransfer
	token     *activity.TokenTransfer
}

type posting struct {
	account  string
	amount   decimal.Decimal
	currency string
}

func parseTimestamp(s string) int64 {
	ts, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}

	return ts
}

// collectEntries merges every transfer of every dataset in discovery order,
// drops duplicates seen from several user addresses and stable-sorts the
// result by timestamp. Native transfers are keyed by hash; token transfers
// by hash, contract and value since one transaction can move several tokens.
func collectEntries(datasets []activity.AddressDataset) []entry {
	seen := types.NewSet[string]()
	var entries []entry

	for _, d := range datasets {
		for i := range d.NativeTransfers {
			tx := &d.NativeTransfers[i]
			key := "native:" + strings.ToLower(tx.Hash)
			if seen.Has(key) {
				continue
			}
			seen.Add(key)
			entries = append(entries, entry{timestamp: parseTimestamp(tx.Timestamp), native: tx})
		}

		for i := range d.TokenTransfers {
			tx := &d.TokenTransfers[i]
			key := "token:" + strings.ToLower(tx.Hash) + ":" + addressbook.Normalize(tx.ContractAddress) + ":" + tx.Value
			if seen.Has(key) {
				continue
			}
			seen.Add(key)
			entries = append(entries, entry{timestamp: parseTimestamp(tx.Timestamp), token: tx})
		}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		switch {
		case a.timestamp < b.timestamp:
			return -1
		case a.timestamp > b.timestamp:
			return 1
		}
		return 0
	})

	return entries
}

func writeEntries(w *writer, entries []entry, b *book) {
	for _, e := range entries {
		if e.native != nil {
			writeNative(w, *e.native, b, e.timestamp)
			continue
		}
		writeToken(w, *e.token, b, e.timestamp)
	}
}

// appendTransfer posts amount from one account to another. A zero amount
// posts nothing.
func appendTransfer(postings []posting, from, to string, amount decimal.Decimal, currency string) []posting {
	if amount.IsZero() {
		return postings
	}

	return append(postings,
		posting{account: from, amount: amount.Neg(), currency: currency},
		posting{account: to, amount: amount, currency: currency},
	)
}

func writeNative(w *writer, tx activity.NativeTransfer, b *book, timestamp int64) {
	to := counterparty(tx.To, tx.ContractAddress)
	fromUser, toUser := b.isUser(tx.From), b.isUser(to)
	value := weiToNative(parseAmount(tx.Value))
	gas := gasCost(tx.GasUsed, tx.GasPrice)

	var (
		description string
		postings    []posting
	)

	switch {
	case tx.Failed() && fromUser:
		description = "Failed ETH Transfer"
		postings = appendTransfer(postings, b.userAccount(tx.From), GasFeesAccount, gas, NativeSymbol)
	case tx.Failed():
		return
	case fromUser && toUser:
		description = "Internal ETH Transfer"
		postings = appendTransfer(postings, b.userAccount(tx.From), b.userAccount(to), value, NativeSymbol)
		postings = appendTransfer(postings, b.userAccount(tx.From), GasFeesAccount, gas, NativeSymbol)
	case fromUser:
		description = "ETH Transfer Out"
		postings = appendTransfer(postings, b.userAccount(tx.From), ExternalAccount(to), value, NativeSymbol)
		postings = appendTransfer(postings, b.userAccount(tx.From), GasFeesAccount, gas, NativeSymbol)
	case toUser:
		description = "ETH Transfer In"
		postings = appendTransfer(postings, ExternalAccount(tx.From), b.userAccount(to), value, NativeSymbol)
	default:
		return
	}

	flag := flagCleared
	if tx.Failed() {
		flag = flagFailed
	}

	writeTransaction(w, timestamp, flag, description, [][2]string{{"txid", tx.Hash}}, postings)
}

func writeToken(w *writer, tx activity.TokenTransfer, b *book, timestamp int64) {
	fromUser, toUser := b.isUser(tx.From), b.isUser(tx.To)
	symbol := sanitize.Symbol(tx.TokenSymbol)
	value := tokenToDecimal(tx.Value, tx.TokenDecimal)

	name := sanitize.Text(tx.TokenName)
	if name == "" {
		name = symbol
	}

	var (
		description string
		postings    []posting
	)

	switch {
	case fromUser && toUser:
		description = "Internal " + name + " Transfer"
		postings = appendTransfer(postings, b.tokenAccount(tx.TokenSymbol, tx.From), b.tokenAccount(tx.TokenSymbol, tx.To), value, symbol)
	case fromUser:
		description = name + " Transfer Out"
		postings = appendTransfer(postings, b.tokenAccount(tx.TokenSymbol, tx.From), ExternalAccount(tx.To), value, symbol)
	case toUser:
		description = name + " Transfer In"
		postings = appendTransfer(postings, ExternalAccount(tx.From), b.tokenAccount(tx.TokenSymbol, tx.To), value, symbol)
	default:
		return
	}

	meta := [][2]string{
		{"txid", tx.Hash},
		{"contract", addressbook.Normalize(tx.ContractAddress)},
	}

	writeTransaction(w, timestamp, flagCleared, description, meta, postings)
}

// writeTransaction renders one entry. Entries without postings are skipped.
func writeTransaction(w *writer, timestamp int64, flag, description string, meta [][2]string, postings []posting) {
	if len(postings) == 0 {
		return
	}

	date := time.Unix(timestamp, 0).UTC().Format(dateLayout)
	w.line(date + " " + flag + " \"" + sanitize.Text(description) + "\"")

	for _, m := range meta {
		w.meta(m[0], sanitize.Text(m[1]))
	}

	for _, p := range postings {
		w.line("  " + p.account + "  " + formatAmount(p.amount) + " " + p.currency)
	}

	w.blank()
}
