package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits carried by every amount.
const Decimals = 2

var (
	// ErrInvalidAmount is returned when text cannot be read as a decimal amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTooManyDecimals is returned when an amount has more than two decimal places.
	ErrTooManyDecimals = fmt.Errorf("amount has more than %d decimal places", Decimals)
	// ErrOverflow is returned when an amount does not fit the smallest-unit representation.
	ErrOverflow = errors.New("amount exceeds maximum safe integer value")
)

// Amount is a monetary amount in cents.
type Amount = int64

// Money represents a monetary value with two-decimal precision.
// Invariants:
//   - Amount is always stored in the smallest unit (cents).
//   - Arithmetic never goes through float64.
type Money struct {
	amount Amount
}

// Zero is the empty amount.
var Zero = Money{}

// New creates Money from a float amount in the main unit (e.g. 12.34).
// Returns an error when the amount carries more than two decimal places.
func New(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidAmount
	}
	return fromDecimal(decimal.NewFromFloat(amount))
}

// Parse reads an amount written in the main unit, such as "100", "40.5" or "-3.25".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return fromDecimal(d)
}

// ParseRounded reads an amount and rounds it half away from zero to two decimals.
// It is used when reading persisted balances, which are always written with two decimals.
func ParseRounded(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return fromDecimal(d.Round(Decimals))
}

// FromCents creates Money from an amount already in cents.
func FromCents(cents int64) Money {
	return Money{amount: cents}
}

func fromDecimal(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Truncate(Decimals)) {
		return Money{}, ErrTooManyDecimals
	}
	if d.Exponent() > 18 {
		return Money{}, ErrOverflow
	}
	cents := d.Shift(Decimals)
	if !cents.BigInt().IsInt64() {
		return Money{}, ErrOverflow
	}
	return Money{amount: cents.IntPart()}, nil
}

// Amount returns the amount in cents.
func (m Money) Amount() Amount {
	return m.amount
}

// AmountFloat returns the amount in the main unit. Only meant for display and tests.
func (m Money) AmountFloat() float64 {
	f, _ := m.decimal().Float64()
	return f
}

func (m Money) decimal() decimal.Decimal {
	return decimal.New(m.amount, -Decimals)
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	sum := m.amount + other.amount
	if (other.amount > 0 && sum < m.amount) || (other.amount < 0 && sum > m.amount) {
		return Money{}, ErrOverflow
	}
	return Money{amount: sum}, nil
}

// Subtract returns m - other.
func (m Money) Subtract(other Money) (Money, error) {
	return m.Add(other.Negate())
}

// Negate returns -m.
func (m Money) Negate() Money {
	return Money{amount: -m.amount}
}

// Equals reports whether both amounts are equal.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String formats the amount with exactly two decimals, e.g. "60.00".
func (m Money) String() string {
	return m.decimal().StringFixed(Decimals)
}
