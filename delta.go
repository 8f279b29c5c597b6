package privates

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// deltaPattern accepts an optional single leading sign, then digits with an
// optional fractional part. Nothing else.
var deltaPattern = regexp.MustCompile(`^([+-])?\s*(\d+(?:\.\d+)?)$`)

// ParseDelta parses a signed decimal earnings adjustment from raw user input.
// A comma is accepted as the decimal separator and surrounding whitespace is
// ignored. Input of any other shape is rejected: the second return value is
// false and the caller must treat the whole operation as a no-op.
func ParseDelta(raw string) (Amount, bool) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	m := deltaPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Amount{}, false
	}
	v, err := decimal.NewFromString(m[2])
	if err != nil {
		return Amount{}, false
	}
	if m[1] == "-" {
		v = v.Neg()
	}
	return Amount{value: v}, true
}
