package domain_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/hvalen/ammkit/business/pricing/domain"
	"github.com/hvalen/ammkit/internal/asset"
)

func poolAt(t *testing.T, addr string, reserve0, reserve1, totalSupply string) *domain.Pool {
	t.Helper()
	pool, err := domain.NewPool(common.HexToAddress(addr), wethToken, usdcToken,
		amt(t, reserve0, 18), amt(t, reserve1, 6), amt(t, totalSupply, 18))
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	return pool
}

func TestCompareRoutes_DeeperPoolWins(t *testing.T) {
	deep := poolAt(t, "0x00000000000000000000000000000000000000a1", "1000", "2000000", "40000")
	shallow := poolAt(t, "0x00000000000000000000000000000000000000a2", "10", "20000", "400")

	quotes := domain.CompareRoutes([]*domain.Pool{shallow, deep}, amt(t, "1", 18), wethToken, usdcToken)
	if len(quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(quotes))
	}

	best := quotes[0]
	if best.Pool != deep {
		t.Fatal("deeper pool should rank first")
	}
	if !best.AmountOut.GreaterThan(quotes[1].AmountOut) {
		t.Error("deeper pool should yield more output")
	}
	if best.PriceImpact >= quotes[1].PriceImpact {
		t.Error("deeper pool should have lower price impact")
	}
	if best.Score <= quotes[1].Score {
		t.Error("deeper pool should score higher")
	}
}

func TestCompareRoutes_FiltersIneligiblePools(t *testing.T) {
	pool := poolAt(t, "0x00000000000000000000000000000000000000a1", "100", "200000", "4000")

	// DAI is not in the pool; no candidates.
	quotes := domain.CompareRoutes([]*domain.Pool{pool, nil}, amt(t, "1", 18), wethToken, daiToken)
	if len(quotes) != 0 {
		t.Errorf("got %d quotes, want 0", len(quotes))
	}
}

func TestCompareRoutes_SkipsFailingPools(t *testing.T) {
	drained := poolAt(t, "0x00000000000000000000000000000000000000a1", "0", "0", "0")
	healthy := poolAt(t, "0x00000000000000000000000000000000000000a2", "100", "200000", "4000")

	quotes := domain.CompareRoutes([]*domain.Pool{drained, healthy}, amt(t, "1", 18), wethToken, usdcToken)
	if len(quotes) != 1 {
		t.Fatalf("got %d quotes, want 1", len(quotes))
	}
	if quotes[0].Pool != healthy {
		t.Error("only the healthy pool should be quoted")
	}
}

func TestBestRoute(t *testing.T) {
	pool := poolAt(t, "0x00000000000000000000000000000000000000a1", "100", "200000", "4000")

	best, ok := domain.BestRoute([]*domain.Pool{pool}, amt(t, "1", 18), wethToken, usdcToken)
	if !ok {
		t.Fatal("expected a route")
	}
	if best.EffectivePrice.IsZero() {
		t.Error("effective price should be set")
	}

	if _, ok := domain.BestRoute(nil, amt(t, "1", 18), wethToken, usdcToken); ok {
		t.Error("no pools should yield ok=false")
	}
}

func TestAveragePrice(t *testing.T) {
	// Both pools price WETH at ~2000 USDC; the weighted average must
	// land between the two per-pool probe quotes.
	deep := poolAt(t, "0x00000000000000000000000000000000000000a1", "1000", "2000000", "40000")
	shallow := poolAt(t, "0x00000000000000000000000000000000000000a2", "10", "20000", "400")
	drained := poolAt(t, "0x00000000000000000000000000000000000000a3", "0", "0", "0")

	avg, ok := domain.AveragePrice([]*domain.Pool{deep, shallow, drained}, wethToken, usdcToken)
	if !ok {
		t.Fatal("expected an average price")
	}
	if avg.LessThan(decimal.NewFromInt(1800)) || avg.GreaterThan(decimal.NewFromInt(2000)) {
		t.Errorf("AveragePrice = %s, want within (1800, 2000)", avg)
	}

	if _, ok := domain.AveragePrice([]*domain.Pool{drained}, wethToken, usdcToken); ok {
		t.Error("no contributing pools should yield ok=false")
	}

	if _, ok := domain.AveragePrice([]*domain.Pool{deep}, wethToken, asset.Token{}); ok {
		t.Error("unknown token should yield ok=false")
	}
}
