package domain

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hvalen/ammkit/internal/asset"
)

// Route score weights. Output amount dominates, price impact penalizes
// thin pools, liquidity depth breaks ties.
const (
	weightAmountOut   = 0.6
	weightPriceImpact = 0.3
	weightLiquidity   = 0.1

	impactDamping = 0.1
)

// RouteQuote ranks a single pool for a desired swap.
type RouteQuote struct {
	Pool           *Pool
	AmountOut      asset.Amount
	PriceImpact    float64         // percent
	EffectivePrice decimal.Decimal // amountIn / amountOut
	Score          float64
}

// routeScore combines output amount, price impact and liquidity depth
// into a single comparable number. Scores are derived values, so float
// math is acceptable here.
func routeScore(amountOut asset.Amount, priceImpact float64, totalSupply asset.Amount) float64 {
	outScore := weightAmountOut * amountOut.Float64()
	impactScore := weightPriceImpact * (1 / (priceImpact + impactDamping)) * 100
	depthScore := weightLiquidity * math.Log(totalSupply.Float64()+1)
	return outScore + impactScore + depthScore
}

// CompareRoutes quotes amountIn of tokenIn against every pool holding
// both tokens and returns the candidates sorted by descending score.
// Pools whose quote fails are skipped.
func CompareRoutes(pools []*Pool, amountIn asset.Amount, tokenIn, tokenOut asset.Token) []RouteQuote {
	quotes := make([]RouteQuote, 0, len(pools))

	for _, pool := range pools {
		if pool == nil || !pool.ContainsPair(tokenIn, tokenOut) {
			continue
		}

		amountOut, err := pool.AmountOut(tokenIn, amountIn)
		if err != nil {
			continue
		}

		impact, err := pool.PriceImpact(tokenIn, amountIn)
		if err != nil {
			continue
		}

		effectivePrice, err := amountIn.DivAmount(amountOut)
		if err != nil {
			continue
		}

		quotes = append(quotes, RouteQuote{
			Pool:           pool,
			AmountOut:      amountOut,
			PriceImpact:    impact,
			EffectivePrice: effectivePrice,
			Score:          routeScore(amountOut, impact, pool.TotalSupply()),
		})
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].Score > quotes[j].Score
	})

	return quotes
}

// BestRoute returns the highest-scoring route, ok=false when no pool
// can serve the swap.
func BestRoute(pools []*Pool, amountIn asset.Amount, tokenIn, tokenOut asset.Token) (RouteQuote, bool) {
	quotes := CompareRoutes(pools, amountIn, tokenIn, tokenOut)
	if len(quotes) == 0 {
		return RouteQuote{}, false
	}
	return quotes[0], true
}

// AveragePrice computes a liquidity-weighted average price of tokenIn
// in tokenOut across all eligible pools, probing each with one unit of
// tokenIn. Pools whose quote fails are skipped. ok=false when no pool
// contributed.
func AveragePrice(pools []*Pool, tokenIn, tokenOut asset.Token) (decimal.Decimal, bool) {
	probe := asset.FromDecimal(decimal.NewFromInt(1), tokenIn.Decimals())

	weightedSum := decimal.Zero
	totalWeight := decimal.Zero

	for _, pool := range pools {
		if pool == nil || !pool.ContainsPair(tokenIn, tokenOut) {
			continue
		}

		out, err := pool.AmountOut(tokenIn, probe)
		if err != nil {
			continue
		}

		weight, ok := pool.Reserve(tokenIn)
		if !ok || weight.IsZero() {
			continue
		}

		weightedSum = weightedSum.Add(out.Decimal().Mul(weight.Decimal()))
		totalWeight = totalWeight.Add(weight.Decimal())
	}

	if totalWeight.IsZero() {
		return decimal.Zero, false
	}

	return weightedSum.Div(totalWeight), true
}
