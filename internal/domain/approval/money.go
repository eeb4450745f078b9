package approval

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnparsableMoney = errors.New("unparsable monetary value")

// ParseMoney strips locale formatting (currency symbol, thousands
// separators, whitespace) and parses what remains. Everything except
// digits and the decimal point is dropped, so "$1,234.50" parses to
// 1234.5 and "MXN 200" to 200.
func ParseMoney(in string) (float64, error) {
	var b strings.Builder
	for _, r := range in {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, ErrUnparsableMoney
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrUnparsableMoney
	}
	return v, nil
}

// FormatMoney renders a value with exactly two fraction digits, the
// representation used for display and persistence.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
