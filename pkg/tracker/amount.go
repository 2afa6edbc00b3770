package tracker

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Amount wraps decimal.Decimal for share counts and monetary values.
// JSON marshaling outputs a float64 number (compatible with frontend),
// CSV cells carry the exact decimal text, and all arithmetic uses
// precise decimal operations.
type Amount struct {
	decimal.Decimal
}

// MarshalJSON outputs as a JSON number (not a string).
func (a Amount) MarshalJSON() ([]byte, error) {
	f, _ := a.Round(4).Float64()
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted strings.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// MarshalCSV writes the decimal text representation into a CSV cell.
func (a Amount) MarshalCSV() (string, error) {
	return a.String(), nil
}

// UnmarshalCSV parses a CSV cell. Empty cells read as zero.
func (a *Amount) UnmarshalCSV(cell string) error {
	if cell == "" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{a.Decimal.Sub(b.Decimal)}
}

// Mul returns a * b.
func (a Amount) Mul(b Amount) Amount {
	return Amount{a.Decimal.Mul(b.Decimal)}
}

// Div returns a / b.
func (a Amount) Div(b Amount) Amount {
	return Amount{a.Decimal.Div(b.Decimal)}
}

// GreaterThan reports whether a > b.
func (a Amount) GreaterThan(b Amount) bool {
	return a.Decimal.GreaterThan(b.Decimal)
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.Decimal.LessThan(b.Decimal)
}

// Equal reports whether a == b numerically.
func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

// NewAmount creates an Amount from a float64.
func NewAmount(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// NewAmountFromInt creates an Amount from an int64.
func NewAmountFromInt(i int64) Amount {
	return Amount{decimal.NewFromInt(i)}
}

// ParseAmount creates an Amount from its text representation.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

func amountPtr(v Amount) *Amount {
	return &v
}
