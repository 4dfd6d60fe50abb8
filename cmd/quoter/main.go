// Command quoter loads a pool snapshot file and prints the best swap
// route for a requested trade. It is a thin shell over the calculation
// library: all pricing decisions live in the business packages.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pricingApp "github.com/hvalen/ammkit/business/pricing/app"
	pricingDomain "github.com/hvalen/ammkit/business/pricing/domain"
	"github.com/hvalen/ammkit/business/pricing/infra/snapshotfile"
	"github.com/hvalen/ammkit/internal/apm"
	"github.com/hvalen/ammkit/internal/asset"
	"github.com/hvalen/ammkit/internal/config"
	"github.com/hvalen/ammkit/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "quoter:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to config file (optional)")
		snapshot    = flag.String("snapshot", "", "pool snapshot JSON (overrides config)")
		symbolIn    = flag.String("in", "", "input token symbol")
		symbolOut   = flag.String("out", "", "output token symbol")
		amountIn    = flag.String("amount", "", "input amount (decimal string)")
		slippageBps = flag.Int64("slippage-bps", -1, "slippage tolerance in basis points (default from config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.App.LogLevel)

	if cfg.Quoter.TraceConsole {
		tp, err := apm.NewConsoleTraceProvider()
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(ctx)
		}()
	}

	path := cfg.Quoter.SnapshotPath
	if *snapshot != "" {
		path = *snapshot
	}

	source, err := snapshotfile.Load(path)
	if err != nil {
		return err
	}

	if *symbolIn == "" || *symbolOut == "" || *amountIn == "" {
		return fmt.Errorf("-in, -out and -amount are required")
	}

	ctx := context.Background()
	pools, err := source.Pools(ctx)
	if err != nil {
		return err
	}

	tokenIn, ok := findToken(pools, *symbolIn)
	if !ok {
		return fmt.Errorf("token %q not present in snapshot", *symbolIn)
	}
	tokenOut, ok := findToken(pools, *symbolOut)
	if !ok {
		return fmt.Errorf("token %q not present in snapshot", *symbolOut)
	}

	amount, err := asset.NewAmount(*amountIn, tokenIn.Decimals())
	if err != nil {
		return err
	}

	bps := cfg.Engine.DefaultSlippageBps
	if *slippageBps >= 0 {
		bps = *slippageBps
	}
	slippage, err := asset.FromBasisPoints(bps)
	if err != nil {
		return err
	}

	service := pricingApp.NewQuoteService(source, metrics.New(prometheus.NewRegistry()), logger)

	quote, err := service.SwapQuote(ctx, tokenIn, tokenOut, amount, slippage)
	if err != nil {
		return err
	}

	fmt.Printf("pool:            %s\n", quote.Pool.String())
	fmt.Printf("amount in:       %s %s\n", quote.AmountIn.FormatDefault(), tokenIn.Symbol())
	fmt.Printf("amount out:      %s %s\n", quote.AmountOut.FormatDefault(), tokenOut.Symbol())
	fmt.Printf("minimum out:     %s %s (slippage %s)\n", quote.MinimumOutput.FormatDefault(), tokenOut.Symbol(), slippage)
	fmt.Printf("effective price: %s %s/%s\n", quote.EffectivePrice.StringFixed(6), tokenIn.Symbol(), tokenOut.Symbol())
	fmt.Printf("price impact:    %.4f%%\n", quote.PriceImpact)

	avg, err := service.AveragePrice(ctx, tokenIn, tokenOut)
	if err == nil {
		fmt.Printf("avg price (all pools): %s %s per %s\n", avg.StringFixed(6), tokenOut.Symbol(), tokenIn.Symbol())
	}

	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func findToken(pools []*pricingDomain.Pool, symbol string) (asset.Token, bool) {
	for _, pool := range pools {
		if pool.Token0().HasSymbol(symbol) {
			return pool.Token0(), true
		}
		if pool.Token1().HasSymbol(symbol) {
			return pool.Token1(), true
		}
	}
	return asset.Token{}, false
}
