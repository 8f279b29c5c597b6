package privates

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the currency used to format amounts. The tracker keeps a
// single cash ledger, so one currency per process is enough.
var displayCurrency = "RUB"

// SetCurrency changes the currency code used to display amounts.
func SetCurrency(code string) {
	if code != "" {
		displayCurrency = code
	}
}

// Amount represents a monetary value: an item price, an earnings delta or the
// earnings total.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any of the usual numeric types.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// ParseAmount parses a decimal amount from user input, accepting both comma
// and dot as the decimal separator.
func ParseAmount(s string) (Amount, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")))
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: v}, nil
}

// currency returns the amount's currency, never nil.
func (m Amount) currency() money.Currency {
	return *money.New(0, displayCurrency).Currency()
}

// String formats the amount with its currency symbol.
func (m Amount) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but with an explicit leading sign, the way the
// ledger history displays deltas.
func (m Amount) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Plain returns the bare decimal representation, without currency formatting.
func (m Amount) Plain() string { return m.value.String() }

// Round2 rounds the amount to 2 decimal places.
func (m Amount) Round2() Amount { return Amount{value: m.value.Round(2)} }

func (m Amount) Add(n Amount) Amount { return Amount{value: m.value.Add(n.value)} }
func (m Amount) Sub(n Amount) Amount { return Amount{value: m.value.Sub(n.value)} }
func (m Amount) Neg() Amount         { return Amount{value: m.value.Neg()} }

func (m Amount) Equal(n Amount) bool       { return m.value.Equal(n.value) }
func (m Amount) LessThan(n Amount) bool    { return m.value.LessThan(n.value) }
func (m Amount) GreaterThan(n Amount) bool { return m.value.GreaterThan(n.value) }
func (m Amount) IsZero() bool              { return m.value.IsZero() }
func (m Amount) IsPositive() bool          { return m.value.IsPositive() }
func (m Amount) IsNegative() bool          { return m.value.IsNegative() }

// Deprecated: AsFloat loses precision, it is only for proportional drawing
// (chart bars), never for accounting.
func (m Amount) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON writes the amount as a bare JSON number, the interchange format
// expects plain numbers.
func (m Amount) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.value = v
	return nil
}
