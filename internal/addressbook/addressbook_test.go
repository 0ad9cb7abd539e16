package addressbook

import (
	"testing"

	"github.com/gabapcia/ethledger/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validAddress1 = "0x1234567890abcdef1234567890abcdef12345678"
	validAddress2 = "0xabcdef1234567890abcdef1234567890abcdef12"
)

func TestParse(t *testing.T) {
	t.Run("should parse a single address", func(t *testing.T) {
		got := Parse(validAddress1)

		require.Len(t, got, 1)
		assert.Equal(t, validAddress1, got[0].Address)
		assert.Empty(t, got[0].Nickname)
	})

	t.Run("should parse addresses on separate lines", func(t *testing.T) {
		got := Parse(validAddress1 + "\n" + validAddress2)

		assert.Equal(t, []ParsedAddress{{Address: validAddress1}, {Address: validAddress2}}, got)
	})

	t.Run("should parse comma separated addresses", func(t *testing.T) {
		got := Parse(validAddress1 + "," + validAddress2)

		assert.Len(t, got, 2)
	})

	t.Run("should parse an address with nickname", func(t *testing.T) {
		got := Parse(validAddress1 + ":MyWallet")

		require.Len(t, got, 1)
		assert.Equal(t, "MyWallet", got[0].Nickname)
	})

	t.Run("should trim addresses and nicknames", func(t *testing.T) {
		got := Parse("  " + validAddress1 + " :  MyWallet  ")

		assert.Equal(t, []ParsedAddress{{Address: validAddress1, Nickname: "MyWallet"}}, got)
	})

	t.Run("should treat an empty nickname as none", func(t *testing.T) {
		got := Parse(validAddress1 + ":   ")

		assert.Equal(t, []ParsedAddress{{Address: validAddress1}}, got)
	})

	t.Run("should keep colons inside the nickname", func(t *testing.T) {
		got := Parse(validAddress1 + ":cold:storage")

		require.Len(t, got, 1)
		assert.Equal(t, "cold:storage", got[0].Nickname)
	})

	t.Run("should lowercase addresses", func(t *testing.T) {
		got := Parse("0xABCDEF1234567890ABCDEF1234567890ABCDEF12")

		require.Len(t, got, 1)
		assert.Equal(t, validAddress2, got[0].Address)
	})

	t.Run("should keep the first nickname when deduplicating", func(t *testing.T) {
		got := Parse("0xABCDEF1234567890ABCDEF1234567890ABCDEF12:Foo\n0xabcdef1234567890abcdef1234567890abcdef12:Bar")

		assert.Equal(t, []ParsedAddress{{Address: validAddress2, Nickname: "Foo"}}, got)
	})

	t.Run("should skip invalid addresses", func(t *testing.T) {
		got := Parse("invalid\n" + validAddress1 + "\n0x123\nnot:" + validAddress2)

		assert.Equal(t, []ParsedAddress{{Address: validAddress1}}, got)
	})

	t.Run("should keep first occurrence order", func(t *testing.T) {
		got := Parse(validAddress2 + "\n" + validAddress1 + "\n" + validAddress2)

		assert.Equal(t, []ParsedAddress{{Address: validAddress2}, {Address: validAddress1}}, got)
	})

	t.Run("should handle empty input", func(t *testing.T) {
		assert.Empty(t, Parse(""))
		assert.Empty(t, Parse("   \n , \n"))
	})

	t.Run("should be deterministic", func(t *testing.T) {
		input := validAddress1 + ":A\n" + validAddress2 + ",junk," + validAddress1 + ":B"

		assert.Equal(t, Parse(input), Parse(input))
	})
}

func TestFormat(t *testing.T) {
	t.Run("should render one address per line", func(t *testing.T) {
		got := Format([]ParsedAddress{
			{Address: validAddress1, Nickname: "MyWallet"},
			{Address: validAddress2},
		})

		assert.Equal(t, validAddress1+":MyWallet\n"+validAddress2, got)
	})

	t.Run("should render nothing for an empty list", func(t *testing.T) {
		assert.Empty(t, Format(nil))
	})

	t.Run("should round trip through Parse", func(t *testing.T) {
		parsed := Parse(validAddress1 + ":Main\n" + validAddress2)

		assert.Equal(t, parsed, Parse(Format(parsed)))
	})
}

func TestValidate(t *testing.T) {
	t.Run("should accept a valid address", func(t *testing.T) {
		assert.NoError(t, Validate(validAddress1))
		assert.NoError(t, Validate("  0xABCDEF1234567890ABCDEF1234567890ABCDEF12 "))
	})

	t.Run("should require an address", func(t *testing.T) {
		assert.ErrorIs(t, Validate("   "), ErrAddressRequired)
	})

	t.Run("should reject a malformed address", func(t *testing.T) {
		for _, in := range []string{"0x123456", validAddress1 + "90", "1234567890abcdef1234567890abcdef12345678", "0x1234567890abcdef1234567890abcdef1234567g"} {
			err := Validate(in)
			require.Error(t, err, "input %q", in)
			assert.ErrorIs(t, err, validator.ErrValidationFailed)
		}
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, validAddress2, Normalize("0xAbCdEf1234567890AbCdEf1234567890AbCdEf12"))
	assert.Equal(t, validAddress2, Normalize(validAddress2))
}

func TestParsedAddress_Label(t *testing.T) {
	assert.Equal(t, "Main", ParsedAddress{Address: validAddress1, Nickname: "Main"}.Label())
	assert.Equal(t, validAddress1, ParsedAddress{Address: validAddress1}.Label())
}
