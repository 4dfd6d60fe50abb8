// Package domain contains the core domain types for the pricing context:
// constant-product math, the Pool entity and route comparison.
package domain

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/hvalen/ammkit/internal/apperror"
	"github.com/hvalen/ammkit/internal/asset"
)

// Uniswap V2 style fee: 0.3% => multiplier 997/1000.
var (
	feeMul = decimal.NewFromInt(997)
	feeDen = decimal.NewFromInt(1000)

	// MinimumLiquidity is burned on the first deposit into an empty pool.
	MinimumLiquidity = decimal.NewFromInt(1000)
)

// AmountOut computes the output amount of a constant-product swap:
//
//	out = (in·997·reserveOut) / (reserveIn·1000 + in·997)
func AmountOut(amountIn, reserveIn, reserveOut asset.Amount, decimalsOut uint8) (asset.Amount, error) {
	if !amountIn.IsPositive() {
		return asset.Amount{}, apperror.Validation(apperror.CodeInvalidAmount, "amountIn must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeInsufficientLiquidity, "empty reserve")
	}

	inWithFee := amountIn.Decimal().Mul(feeMul)
	numerator := inWithFee.Mul(reserveOut.Decimal())
	denominator := reserveIn.Decimal().Mul(feeDen).Add(inWithFee)

	if denominator.IsZero() {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeInsufficientLiquidity, "zero denominator")
	}

	out := numerator.Div(denominator)
	if !out.IsPositive() {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeInsufficientLiquidity, "computed output is zero")
	}
	if out.GreaterThanOrEqual(reserveOut.Decimal()) {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeInsufficientLiquidity, "output would drain the pool")
	}

	return asset.FromDecimal(out, decimalsOut), nil
}

// AmountIn computes the input required for a desired output:
//
//	in = reserveIn·out·1000 / ((reserveOut − out)·997) + 1 base unit
//
// The +1 base-unit bias is the ceiling adjustment downstream contracts
// expect; it must not be "fixed" into a proper rounding mode.
func AmountIn(amountOut, reserveIn, reserveOut asset.Amount, decimalsIn uint8) (asset.Amount, error) {
	if !amountOut.IsPositive() {
		return asset.Amount{}, apperror.Validation(apperror.CodeInvalidAmount, "amountOut must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeInsufficientLiquidity, "empty reserve")
	}
	if amountOut.Decimal().GreaterThanOrEqual(reserveOut.Decimal()) {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeInsufficientLiquidity, "amountOut exceeds reserve")
	}

	numerator := reserveIn.Decimal().Mul(amountOut.Decimal()).Mul(feeDen)
	denominator := reserveOut.Decimal().Sub(amountOut.Decimal()).Mul(feeMul)

	oneBaseUnit := decimal.New(1, -int32(decimalsIn))
	in := numerator.Div(denominator).Add(oneBaseUnit)

	return asset.FromDecimal(in, decimalsIn), nil
}

// PriceImpact returns the percentage deviation of the execution price
// from the spot price, 0 when either reserve is empty.
func PriceImpact(amountIn, amountOut, reserveIn, reserveOut asset.Amount) float64 {
	if reserveIn.IsZero() || reserveOut.IsZero() || amountOut.IsZero() {
		return 0
	}

	spot := reserveIn.Decimal().Div(reserveOut.Decimal())
	execution := amountIn.Decimal().Div(amountOut.Decimal())
	if spot.IsZero() {
		return 0
	}

	impact, _ := execution.Sub(spot).Abs().Div(spot).Mul(decimal.NewFromInt(100)).Float64()
	return impact
}

// LPTokensForDeposit computes the LP tokens minted for a deposit.
// An empty pool mints sqrt(amount0·amount1) − MinimumLiquidity; an
// initialized pool mints proportionally to the scarcer side.
func LPTokensForDeposit(amount0, amount1, reserve0, reserve1, totalSupply asset.Amount) (asset.Amount, error) {
	if totalSupply.IsZero() {
		minted := decimalSqrt(amount0.Decimal().Mul(amount1.Decimal())).Sub(MinimumLiquidity)
		if !minted.IsPositive() {
			return asset.Amount{}, apperror.BusinessRule(apperror.CodeInsufficientInitialLiquidity,
				"initial deposit below minimum liquidity")
		}
		return asset.FromDecimal(minted, totalSupply.Decimals()), nil
	}

	if reserve0.IsZero() || reserve1.IsZero() {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeBusinessRuleViolation,
			"pool has supply but an empty reserve")
	}

	share0 := amount0.Decimal().Div(reserve0.Decimal())
	share1 := amount1.Decimal().Div(reserve1.Decimal())

	share := share0
	if share1.LessThan(share0) {
		share = share1
	}

	minted := share.Mul(totalSupply.Decimal())
	if !minted.IsPositive() {
		return asset.Amount{}, apperror.BusinessRule(apperror.CodeBusinessRuleViolation,
			"deposit mints no LP tokens")
	}

	return asset.FromDecimal(minted, totalSupply.Decimals()), nil
}

// RemoveLiquidityAmounts computes the reserves returned for burning
// lpTokens: each reserve × (lpTokens/totalSupply).
func RemoveLiquidityAmounts(lpTokens, reserve0, reserve1, totalSupply asset.Amount, decimals0, decimals1 uint8) (asset.Amount, asset.Amount, error) {
	if totalSupply.IsZero() {
		return asset.Amount{}, asset.Amount{}, apperror.Validation(apperror.CodeValidationError,
			"pool has no liquidity to remove")
	}
	if lpTokens.Decimal().GreaterThan(totalSupply.Decimal()) {
		return asset.Amount{}, asset.Amount{}, apperror.Validation(apperror.CodeLPTokensExceedSupply,
			lpTokens.String())
	}

	share := lpTokens.Decimal().Div(totalSupply.Decimal())
	amount0 := asset.FromDecimal(reserve0.Decimal().Mul(share), decimals0)
	amount1 := asset.FromDecimal(reserve1.Decimal().Mul(share), decimals1)

	return amount0, amount1, nil
}

// decimalSqrt computes the square root of a non-negative decimal via
// big.Float. 256 bits of mantissa keeps full precision for any product
// of two 18-decimal amounts.
func decimalSqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}

	f, _, _ := big.ParseFloat(d.String(), 10, 256, big.ToNearestEven)
	root := new(big.Float).SetPrec(256).Sqrt(f)

	out, err := decimal.NewFromString(root.Text('f', 24))
	if err != nil {
		return decimal.Zero
	}
	return out
}
