package ledger

import (
	"github.com/gabapcia/ethledger/internal/addressbook"
	"github.com/gabapcia/ethledger/internal/sanitize"
)

const (
	nativeRoot   = "Assets:Crypto:Ethereum"
	tokenRoot    = "Assets:Crypto:Tokens"
	externalRoot = "Assets:Crypto:External"

	GasFeesAccount     = "Expenses:Crypto:GasFees"
	NetworkFeesAccount = "Expenses:Crypto:NetworkFees"
)

func accountPath(root, nickname, address string) string {
	suffix := sanitize.UnknownAccountName
	if address != "" {
		suffix = sanitize.AccountSuffix(address)
	}

	if nickname != "" {
		return root + ":" + sanitize.AccountName(nickname) + ":" + suffix
	}

	return root + ":" + suffix
}

// UserAccount names the native asset account of an address the user controls.
func UserAccount(address, nickname string) string {
	return accountPath(nativeRoot, nickname, address)
}

// TokenAccount names the account holding symbol for an address the user
// controls. symbol is sanitized.
func TokenAccount(symbol, address, nickname string) string {
	return accountPath(tokenRoot+":"+sanitize.Symbol(symbol), nickname, address)
}

// ExternalAccount names the account of a counterparty. Nicknames never apply
// to counterparties.
func ExternalAccount(address string) string {
	return accountPath(externalRoot, "", address)
}

// book resolves the addresses seen in a dataset to ledger accounts.
type book struct {
	users     map[string]string // normalized address -> nickname
	userOrder []string
}

func newBook() *book {
	return &book{users: make(map[string]string)}
}

func (b *book) addUser(address, nickname string) {
	address = addressbook.Normalize(address)
	if current, ok := b.users[address]; ok {
		if current == "" {
			b.users[address] = nickname
		}
		return
	}

	b.users[address] = nickname
	b.userOrder = append(b.userOrder, address)
}

func (b *book) isUser(address string) bool {
	_, ok := b.users[addressbook.Normalize(address)]
	return ok
}

func (b *book) nickname(address string) string {
	return b.users[addressbook.Normalize(address)]
}

func (b *book) userAccount(address string) string {
	return UserAccount(address, b.nickname(address))
}

func (b *book) tokenAccount(symbol, address string) string {
	return TokenAccount(symbol, address, b.nickname(address))
}
