// Package sanitize neutralizes free text that comes from untrusted on-chain
// metadata (token names and symbols) or from user input (nicknames) before it
// is rendered into a ledger.
//
// Every function is pure, never fails and is idempotent:
// f(f(x)) == f(x) for every input x.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// UnknownSymbol is returned by Symbol when nothing usable survives sanitization.
	UnknownSymbol = "UNKNOWN"

	// UnknownAccountName is returned by AccountName when nothing usable survives sanitization.
	UnknownAccountName = "Unknown"

	// symbolMarker is prepended to symbols that do not start with a letter and
	// used to pad symbols shorter than symbolMinLen.
	symbolMarker = "X"
	symbolMinLen = 2
	symbolMaxLen = 24

	suffixLen = 6
)

// tlds is the allow-list of top level domains recognized as bare domains.
var tlds = []string{
	"com", "org", "net", "io", "co", "xyz", "info", "biz", "app",
	"dev", "ai", "finance", "money", "exchange", "trade", "token",
	"eth", "crypto", "defi", "nft", "dao", "web3",
	"me", "link", "site", "online", "click", "top", "club", "live",
	"claim", "gift", "airdrop", "swap", "wallet",
}

var (
	reScheme       = regexp.MustCompile(`(?i)[a-z][a-z0-9+.-]*://\S*`)
	reWWW          = regexp.MustCompile(`(?i)www\.\S*`)
	reBareDomain   = regexp.MustCompile(`(?i)\b[a-z0-9-]+\.(?:` + strings.Join(tlds, "|") + `)\b\S*`)
	reSpacedDomain = regexp.MustCompile(`(?i)\b[a-z0-9-]+\s*\.\s*(?:` + strings.Join(tlds, "|") + `)\b\S*`)
	reWhitespace   = regexp.MustCompile(`\s+`)
	reNonAlnum     = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// untilStable applies fn until its output no longer changes. Every pass
// either removes characters or normalizes whitespace, so it terminates.
func untilStable(s string, fn func(string) string) string {
	for {
		next := fn(s)
		if next == s {
			return next
		}
		s = next
	}
}

func stripURLs(s string) string {
	s = reScheme.ReplaceAllString(s, "")
	s = reWWW.ReplaceAllString(s, "")
	s = reBareDomain.ReplaceAllString(s, "")
	s = reSpacedDomain.ReplaceAllString(s, "")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// URLs removes links from text: anything with a scheme (http://, ftp://,
// ...), www. prefixes and bare domains ending in a known TLD, including
// spaced variants such as "name . com". Whitespace is collapsed and trimmed.
func URLs(text string) string {
	return untilStable(text, stripURLs)
}

// Symbol converts raw into a ledger commodity identifier. The result always
// starts with an uppercase letter followed by 1 to 23 uppercase letters or
// digits. Input without any usable character yields UnknownSymbol.
func Symbol(raw string) string {
	clean := strings.ToUpper(reNonAlnum.ReplaceAllString(URLs(raw), ""))
	if clean == "" {
		return UnknownSymbol
	}

	if clean[0] < 'A' || clean[0] > 'Z' {
		clean = symbolMarker + clean
	}

	for len(clean) < symbolMinLen {
		clean += symbolMarker
	}

	if len(clean) > symbolMaxLen {
		clean = clean[:symbolMaxLen]
	}

	return clean
}

// AccountName converts raw into a single account name component made of
// ASCII letters and digits, with the first character uppercased. Input
// without any usable character yields UnknownAccountName.
func AccountName(raw string) string {
	clean := reNonAlnum.ReplaceAllString(URLs(raw), "")
	if clean == "" {
		return UnknownAccountName
	}

	return strings.ToUpper(clean[:1]) + clean[1:]
}

// AccountSuffix returns the last six characters of address, uppercased. It is
// a short discriminator, not a unique key: distinct addresses can share it.
func AccountSuffix(address string) string {
	if len(address) > suffixLen {
		address = address[len(address)-suffixLen:]
	}

	return strings.ToUpper(address)
}

func stripText(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '"', r == '\\':
			return -1
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, stripURLs(s))

	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// Text prepares free text for a quoted ledger value: links are removed, as
// are control characters, double quotes and backslashes, and whitespace is
// collapsed to single spaces. The result can neither close the quoted value
// nor start a new line.
func Text(raw string) string {
	return untilStable(raw, stripText)
}
