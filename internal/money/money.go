package money

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a currency value with two decimal places of precision.
// The zero value is 0.00.
type Amount struct {
	d decimal.Decimal
}

var Zero = Amount{}

// FromString parses a decimal string like "1234.56" into an Amount,
// rounding half-up to cents.
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return Amount{d: d.Round(2)}, nil
}

// FromFloat converts a float into an Amount, rounding to cents.
func FromFloat(f float64) Amount {
	return Amount{d: decimal.NewFromFloat(f).Round(2)}
}

// MustParse is FromString for constants and tests; it panics on bad input.
func MustParse(s string) Amount {
	a, err := FromString(s)
	if err != nil {
		panic(err)
	}

	return a
}

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }

func (a Amount) IsNegative() bool { return a.d.IsNegative() }
func (a Amount) IsPositive() bool { return a.d.IsPositive() }
func (a Amount) IsZero() bool     { return a.d.IsZero() }

func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }

// String renders the amount with exactly two decimal places.
func (a Amount) String() string { return a.d.StringFixed(2) }

// MarshalJSON renders the amount as a JSON string, e.g. "1900.00".
// Strings avoid the float drift that plagued earlier schema variants.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts both string and number forms: clients send either.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	parsed, err := FromString(s)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// Value implements driver.Valuer so Amounts bind to NUMERIC columns.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Zero
		return nil
	case string:
		parsed, err := FromString(v)
		if err != nil {
			return err
		}

		*a = parsed

		return nil
	case []byte:
		parsed, err := FromString(string(v))
		if err != nil {
			return err
		}

		*a = parsed

		return nil
	case float64:
		*a = FromFloat(v)
		return nil
	case int64:
		*a = Amount{d: decimal.NewFromInt(v)}
		return nil
	default:
		return fmt.Errorf("scanning amount: unsupported type %T", src)
	}
}
