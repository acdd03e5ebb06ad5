package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// "ចំនួន 50,000 រៀល" — the amount marker, digits with optional
	// thousands commas, then the riel unit.
	reKHR = regexp.MustCompile(`ចំនួន\s*([\d,]+)\s*រៀល`)
	// "$12.50" — dollar sign immediately followed by digits, optional
	// fractional part.
	reUSD = regexp.MustCompile(`\$(\d+(?:\.\d+)?)`)
)

// Amounts holds the currency magnitudes found in one message.
// A zero value means the pattern for that currency was absent.
type Amounts struct {
	USD decimal.Decimal
	KHR int64
}

// Any reports whether at least one amount is positive.
func (a Amounts) Any() bool {
	return a.USD.IsPositive() || a.KHR > 0
}

// Extract scans free-form message text for USD and KHR amounts.
// Both patterns are matched independently against the same input, so a
// single message may yield both. Text with no match yields zero amounts;
// Extract never fails.
func Extract(text string) Amounts {
	var out Amounts

	if m := reKHR.FindStringSubmatch(text); len(m) == 2 {
		digits := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseInt(digits, 10, 64); err == nil {
			out.KHR = v
		}
	}

	if m := reUSD.FindStringSubmatch(text); len(m) == 2 {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			out.USD = v
		}
	}

	return out
}
