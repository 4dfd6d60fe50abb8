package asset

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/hvalen/ammkit/internal/apperror"
)

// DefaultFormatDecimals is the display precision used when none is given.
const DefaultFormatDecimals = 6

// Amount is an immutable Value Object representing a token quantity.
// The value is carried as an exact decimal tied to a fixed decimal
// count; conversion to on-chain base units (wei-like integers) is
// lossless for any value expressible in the token's precision.
type Amount struct {
	value    decimal.Decimal
	decimals uint8
	src      string // original input, preserved for String round-trips
}

// NewAmount creates an Amount from a decimal string. Empty, non-numeric
// and non-finite strings are rejected, as are decimal counts above 18.
func NewAmount(value string, decimals uint8) (Amount, error) {
	if decimals > MaxDecimals {
		return Amount{}, apperror.Validationf(apperror.CodeInvalidAmount, "decimals %d out of range", decimals)
	}
	if value == "" {
		return Amount{}, apperror.Validation(apperror.CodeInvalidAmount, "empty value")
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, apperror.New(apperror.CodeInvalidAmount,
			apperror.WithContext(value), apperror.WithCause(err))
	}

	return Amount{value: d, decimals: decimals, src: value}, nil
}

// MustAmount creates an Amount, panicking on invalid input. Intended
// for tests and compile-time constants.
func MustAmount(value string, decimals uint8) Amount {
	a, err := NewAmount(value, decimals)
	if err != nil {
		panic(err)
	}
	return a
}

// FromDecimal creates an Amount from an exact decimal value.
func FromDecimal(d decimal.Decimal, decimals uint8) Amount {
	return Amount{value: d, decimals: decimals}
}

// FromFloat64 creates an Amount from a float64 value.
// Prefer NewAmount for user input; floats may carry representation error.
func FromFloat64(f float64, decimals uint8) Amount {
	return Amount{value: decimal.NewFromFloat(f), decimals: decimals}
}

// FromBaseUnits creates an Amount from an integer base-unit value
// (e.g. wei), scaling down by 10^decimals exactly.
func FromBaseUnits(raw *big.Int, decimals uint8) Amount {
	if raw == nil {
		return Zero(decimals)
	}
	return Amount{value: decimal.NewFromBigInt(raw, -int32(decimals)), decimals: decimals}
}

// Zero creates a zero Amount with the given decimal count.
func Zero(decimals uint8) Amount {
	return Amount{value: decimal.Zero, decimals: decimals}
}

// ToBaseUnits converts the amount to integer base units by scaling up
// by 10^decimals. Precision beyond the token's decimals is truncated.
func (a Amount) ToBaseUnits() *big.Int {
	return a.value.Shift(int32(a.decimals)).Truncate(0).BigInt()
}

// Decimal returns the exact decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Decimals returns the decimal count this amount is tied to.
func (a Amount) Decimals() uint8 {
	return a.decimals
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsPositive returns true if the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

// IsNegative returns true if the amount is less than zero.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// -----------------------------------------------------------------------------
// Arithmetic Operations (pure, receiver is never mutated)
// -----------------------------------------------------------------------------

// Add adds two amounts with the same decimal count.
func (a Amount) Add(b Amount) (Amount, error) {
	if err := a.checkSameDecimals(b); err != nil {
		return Amount{}, err
	}
	return FromDecimal(a.value.Add(b.value), a.decimals), nil
}

// Sub subtracts b from a (same decimal count only).
func (a Amount) Sub(b Amount) (Amount, error) {
	if err := a.checkSameDecimals(b); err != nil {
		return Amount{}, err
	}
	return FromDecimal(a.value.Sub(b.value), a.decimals), nil
}

// Mul multiplies the amount by a scalar.
func (a Amount) Mul(scalar decimal.Decimal) Amount {
	return FromDecimal(a.value.Mul(scalar), a.decimals)
}

// MulFloat64 multiplies the amount by a float scalar.
func (a Amount) MulFloat64(scalar float64) Amount {
	return a.Mul(decimal.NewFromFloat(scalar))
}

// Div divides the amount by a scalar.
func (a Amount) Div(scalar decimal.Decimal) (Amount, error) {
	if scalar.IsZero() {
		return Amount{}, apperror.Validation(apperror.CodeDivisionByZero, "zero scalar divisor")
	}
	return FromDecimal(a.value.Div(scalar), a.decimals), nil
}

// DivAmount divides a by another Amount, yielding a scalar ratio.
// Cross-decimal division is allowed: the ratio of two numeric values
// has no decimal count of its own.
func (a Amount) DivAmount(b Amount) (decimal.Decimal, error) {
	if b.value.IsZero() {
		return decimal.Zero, apperror.Validation(apperror.CodeDivisionByZero, "zero amount divisor")
	}
	return a.value.Div(b.value), nil
}

// Percentage returns pct percent of the amount.
func (a Amount) Percentage(pct float64) Amount {
	return a.Mul(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))
}

// ApplySlippage reduces the amount by the slippage fraction,
// yielding the guaranteed minimum under that tolerance.
func (a Amount) ApplySlippage(s Slippage) Amount {
	return a.Mul(decimal.NewFromInt(1).Sub(s.Value()))
}

// -----------------------------------------------------------------------------
// Comparison Operations (numeric; cross-decimal comparison is allowed)
// -----------------------------------------------------------------------------

// Cmp compares two amounts by numeric value.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(b.value)
}

// Equal returns true if both amounts have the same numeric value.
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

// GreaterThan returns true if a > b.
func (a Amount) GreaterThan(b Amount) bool {
	return a.Cmp(b) > 0
}

// GreaterThanOrEqual returns true if a >= b.
func (a Amount) GreaterThanOrEqual(b Amount) bool {
	return a.Cmp(b) >= 0
}

// LessThan returns true if a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.Cmp(b) < 0
}

// -----------------------------------------------------------------------------
// Display
// -----------------------------------------------------------------------------

// String returns the exact decimal value. Amounts constructed from a
// string echo that string back unchanged.
func (a Amount) String() string {
	if a.src != "" {
		return a.src
	}
	return a.value.String()
}

// Format renders the amount with at most maxDecimals fractional digits,
// trailing zeros stripped: "0" for zero, a bare integer string for
// integral values.
func (a Amount) Format(maxDecimals int32) string {
	return a.value.Truncate(maxDecimals).String()
}

// FormatDefault renders the amount with the default display precision.
func (a Amount) FormatDefault() string {
	return a.Format(DefaultFormatDecimals)
}

// Float64 returns the amount as a float64 for display and scoring.
// Not for settlement math.
func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

func (a Amount) checkSameDecimals(b Amount) error {
	if a.decimals != b.decimals {
		return apperror.Validationf(apperror.CodeDecimalMismatch, "%d vs %d", a.decimals, b.decimals)
	}
	return nil
}
