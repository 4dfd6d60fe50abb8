package asset

import (
	"github.com/shopspring/decimal"

	"github.com/hvalen/ammkit/internal/apperror"
)

// Slippage bounds. The tolerance is a decimal fraction: 0.005 = 0.5%.
var (
	MinSlippage     = decimal.Zero
	MaxSlippage     = decimal.NewFromFloat(0.5)
	DefaultSlippage = decimal.NewFromFloat(0.005)

	highSlippage = decimal.NewFromFloat(0.01)
	lowSlippage  = decimal.NewFromFloat(0.001)
)

// Slippage is an immutable Value Object for a tolerated price deviation,
// held as a decimal fraction in [0, 0.5].
type Slippage struct {
	value decimal.Decimal
}

// NewSlippage creates a Slippage from a decimal fraction.
func NewSlippage(value decimal.Decimal) (Slippage, error) {
	if value.LessThan(MinSlippage) || value.GreaterThan(MaxSlippage) {
		return Slippage{}, apperror.Validation(apperror.CodeInvalidSlippage, value.String())
	}
	return Slippage{value: value}, nil
}

// DefaultTolerance returns the default 0.5% slippage tolerance.
func DefaultTolerance() Slippage {
	return Slippage{value: DefaultSlippage}
}

// FromPercent creates a Slippage from a percentage (0.5 => 0.5%).
func FromPercent(pct float64) (Slippage, error) {
	return NewSlippage(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))
}

// FromBasisPoints creates a Slippage from basis points (50 => 0.5%).
func FromBasisPoints(bps int64) (Slippage, error) {
	return NewSlippage(decimal.New(bps, -4))
}

// FromString creates a Slippage from a decimal fraction string ("0.005").
func FromString(s string) (Slippage, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Slippage{}, apperror.New(apperror.CodeInvalidSlippageString,
			apperror.WithContext(s), apperror.WithCause(err))
	}
	return NewSlippage(d)
}

// MustSlippage creates a Slippage from a fraction, panicking on error.
func MustSlippage(value float64) Slippage {
	s, err := NewSlippage(decimal.NewFromFloat(value))
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the slippage as a decimal fraction.
func (s Slippage) Value() decimal.Decimal {
	return s.value
}

// Percent returns the slippage as a percentage value (0.005 => 0.5).
func (s Slippage) Percent() decimal.Decimal {
	return s.value.Mul(decimal.NewFromInt(100))
}

// MinimumAmount returns the smallest acceptable amount for an expected
// amount under this tolerance: expected × (1 − value).
func (s Slippage) MinimumAmount(expected Amount) Amount {
	return expected.Mul(decimal.NewFromInt(1).Sub(s.value))
}

// MaximumAmount returns the largest acceptable amount for an expected
// amount under this tolerance: expected × (1 + value).
func (s Slippage) MaximumAmount(expected Amount) Amount {
	return expected.Mul(decimal.NewFromInt(1).Add(s.value))
}

// WithinRange reports whether an actual amount is at or above the
// minimum acceptable amount for the expected one.
func (s Slippage) WithinRange(expected, actual Amount) bool {
	return actual.GreaterThanOrEqual(s.MinimumAmount(expected))
}

// PriceImpact returns |1 − actual/expected| as a fraction, 0 when the
// expected amount is zero.
func (s Slippage) PriceImpact(expected, actual Amount) float64 {
	if expected.IsZero() {
		return 0
	}
	ratio, _ := actual.DivAmount(expected)
	impact, _ := decimal.NewFromInt(1).Sub(ratio).Abs().Float64()
	return impact
}

// IsHigh reports whether the tolerance is above 1%.
func (s Slippage) IsHigh() bool {
	return s.value.GreaterThan(highSlippage)
}

// IsLow reports whether the tolerance is below 0.1%.
func (s Slippage) IsLow() bool {
	return s.value.LessThan(lowSlippage)
}

// String returns the tolerance as a percentage, e.g. "0.5%".
func (s Slippage) String() string {
	return s.Percent().String() + "%"
}
