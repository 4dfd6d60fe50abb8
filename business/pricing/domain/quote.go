package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hvalen/ammkit/internal/asset"
)

// SwapQuote is the computed result for a prospective swap: what the
// caller submits on-chain (minimum output) and what it shows the user.
type SwapQuote struct {
	TokenIn        asset.Token
	TokenOut       asset.Token
	AmountIn       asset.Amount
	AmountOut      asset.Amount
	MinimumOutput  asset.Amount
	PriceImpact    float64 // percent
	EffectivePrice decimal.Decimal
	Slippage       asset.Slippage
	Pool           *Pool
	Timestamp      time.Time
}

// NewSwapQuote assembles a SwapQuote from the pool's computed values.
func NewSwapQuote(pool *Pool, tokenIn, tokenOut asset.Token, amountIn, amountOut asset.Amount, priceImpact float64, slippage asset.Slippage) SwapQuote {
	effectivePrice := decimal.Zero
	if !amountOut.IsZero() {
		effectivePrice, _ = amountIn.DivAmount(amountOut)
	}

	return SwapQuote{
		TokenIn:        tokenIn,
		TokenOut:       tokenOut,
		AmountIn:       amountIn,
		AmountOut:      amountOut,
		MinimumOutput:  slippage.MinimumAmount(amountOut),
		PriceImpact:    priceImpact,
		EffectivePrice: effectivePrice,
		Slippage:       slippage,
		Pool:           pool,
		Timestamp:      time.Now(),
	}
}

// LiquidityQuote is the computed result for a prospective deposit.
type LiquidityQuote struct {
	Pool      *Pool
	Amount0   asset.Amount
	Amount1   asset.Amount
	LPTokens  asset.Amount
	PoolShare decimal.Decimal // percent
	Timestamp time.Time
}
