package kernel

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the minor-unit precision of the currency (cents).
const moneyScale = 2

// Money is a value object representing a monetary amount. Amounts are kept as
// fixed-point decimals rounded half-up to two fraction digits, so item totals
// and order totals share one numeric model and cannot drift.
//
// Money is immutable: arithmetic methods return new values. The zero value is
// a valid zero amount, equal to ZeroMoney().
//
// Example:
//
//	unit, _ := kernel.NewMoneyFromFloat(4.00)
//	total := unit.MultiplyInt(2) // 8.00
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount. The amount is rounded
// half-up to two fraction digits. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Prefer NewMoney where the source is already exact.
func NewMoneyFromFloat(v float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(v))
}

// ZeroMoney returns a zero amount, the identity element for Add.
func ZeroMoney() Money {
	return Money{}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MultiplyInt returns the amount multiplied by a whole quantity,
// rounded half-up to the currency scale.
func (m Money) MultiplyInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for JSON serialization.
// Two-fraction-digit amounts are exactly representable in this range.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with exactly two fraction digits, e.g. "13.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
