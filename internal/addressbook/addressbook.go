// Package addressbook parses the free-form address lists users type in, such
// as one address per line or a comma separated list, each address optionally
// followed by ":nickname".
package addressbook

import (
	"errors"
	"strings"

	"github.com/gabapcia/ethledger/internal/pkg/types"
	"github.com/gabapcia/ethledger/internal/pkg/validator"
)

// ErrAddressRequired is returned by Validate when the input is blank.
var ErrAddressRequired = errors.New("address is required")

// ParsedAddress is an address extracted from user input.
//
// Address is always the lowercase 0x-prefixed form. Nickname is kept as typed
// (trimmed) and must be sanitized before it is rendered anywhere.
type ParsedAddress struct {
	Address  string `json:"address" validate:"required,eth_addr"`
	Nickname string `json:"nickname,omitempty"`
}

// Label returns the nickname when present, otherwise the address.
func (p ParsedAddress) Label() string {
	if p.Nickname != "" {
		return p.Nickname
	}

	return p.Address
}

// Normalize returns the canonical lowercase form of address.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func isAddress(s string) bool {
	return validator.Var(s, "required,eth_addr") == nil
}

// Validate checks a single address. It returns ErrAddressRequired for blank
// input and an error wrapping validator.ErrValidationFailed when the address
// is not 0x followed by 40 hex digits.
func Validate(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressRequired
	}

	return validator.Validate(ParsedAddress{Address: address})
}

// splitToken separates "address:nickname". The colon only counts as a
// separator when the part before it is a valid address.
func splitToken(token string) (address, nickname string) {
	candidate, rest, found := strings.Cut(token, ":")
	if found {
		candidate = strings.TrimSpace(candidate)
		if isAddress(candidate) {
			return candidate, strings.TrimSpace(rest)
		}
	}

	return token, ""
}

// Parse extracts addresses from text. Tokens are separated by newlines or
// commas. Invalid tokens are dropped silently. Duplicates are compared
// case-insensitively and the first nickname seen for an address wins. The
// result keeps first-occurrence order.
func Parse(text string) []ParsedAddress {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ','
	})

	var (
		parsed = make([]ParsedAddress, 0, len(tokens))
		seen   = types.NewSet[string]()
	)

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		address, nickname := splitToken(token)
		if !isAddress(address) {
			continue
		}

		address = Normalize(address)
		if seen.Has(address) {
			continue
		}

		seen.Add(address)
		parsed = append(parsed, ParsedAddress{Address: address, Nickname: nickname})
	}

	return parsed
}

// Format renders addresses back to text, one "address[:nickname]" per line.
// Parse(Format(a)) returns a when a came from Parse.
func Format(addresses []ParsedAddress) string {
	lines := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if a.Nickname == "" {
			lines = append(lines, a.Address)
			continue
		}

		lines = append(lines, a.Address+":"+a.Nickname)
	}

	return strings.Join(lines, "\n")
}
