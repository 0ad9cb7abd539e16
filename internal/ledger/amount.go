package ledger

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// nativeDecimals is the number of wei in one unit of the native asset, as a
// power of ten.
const nativeDecimals = 18

// parseAmount reads a base-10 amount. Anything that is not a number counts as
// zero so a malformed field never aborts a whole ledger.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}

// parseDecimals reads an ERC-20 decimals field, which is a uint8 on chain.
func parseDecimals(s string) int32 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0
	}

	return int32(n)
}

// formatAmount renders d without trailing fractional zeros; whole numbers
// have no decimal point.
func formatAmount(d decimal.Decimal) string {
	return d.String()
}

func weiToNative(wei decimal.Decimal) decimal.Decimal {
	return wei.Shift(-nativeDecimals)
}

func tokenToDecimal(value string, decimals string) decimal.Decimal {
	return parseAmount(value).Shift(-parseDecimals(decimals))
}

func gasCost(gasUsed, gasPrice string) decimal.Decimal {
	return weiToNative(parseAmount(gasUsed).Mul(parseAmount(gasPrice)))
}

// WeiToNative converts a wei amount to units of the native asset.
//
//	WeiToNative("1000000000000000000") == "1"
//	WeiToNative("1500000000000000")    == "0.0015"
func WeiToNative(wei string) string {
	return formatAmount(weiToNative(parseAmount(wei)))
}

// TokenToDecimal scales a raw token amount by its declared decimals.
// Non-numeric decimals count as 0.
//
//	TokenToDecimal("1500000", "6") == "1.5"
//	TokenToDecimal("100", "0")     == "100"
func TokenToDecimal(value, decimals string) string {
	return formatAmount(tokenToDecimal(value, decimals))
}

// GasCost returns gasUsed * gasPrice (both in wei) in units of the native asset.
func GasCost(gasUsed, gasPrice string) string {
	return formatAmount(gasCost(gasUsed, gasPrice))
}
