package kernel

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an amount in the shop currency, rounded to two fraction digits.
// The zero value is a valid amount of 0.00.
type Money struct {
	decimal.Decimal
}

// NewMoney rounds amount to two fraction digits.
func NewMoney(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// MoneyFromInt creates a whole amount.
func MoneyFromInt(amount int64) Money {
	return NewMoney(decimal.NewFromInt(amount))
}

// ParseMoney parses a decimal string such as "79" or "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d), nil
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return NewMoney(m.Decimal.Sub(other.Decimal))
}

// Times returns m multiplied by quantity. Quantity may be zero or negative.
func (m Money) Times(quantity int) Money {
	return NewMoney(m.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
}

// Equal compares two amounts by value.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// String returns the amount with exactly two fraction digits.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// MarshalJSON writes the amount as a fixed two-digit string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("amount %s: %w", b, err)
	}
	*m = NewMoney(d)
	return nil
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).String(), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(value any) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}
