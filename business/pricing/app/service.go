package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hvalen/ammkit/business/pricing/domain"
	"github.com/hvalen/ammkit/internal/apm"
	"github.com/hvalen/ammkit/internal/apperror"
	"github.com/hvalen/ammkit/internal/asset"
	"github.com/hvalen/ammkit/internal/metrics"
)

// QuoteService orchestrates quote computation over the pools a
// PoolSource supplies. All pricing stays in the domain layer; the
// service adds pool selection, logging, tracing and metrics.
type QuoteService struct {
	source  PoolSource
	tracer  apm.Tracer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewQuoteService creates a QuoteService.
func NewQuoteService(source PoolSource, m *metrics.Metrics, logger *slog.Logger) *QuoteService {
	if m == nil {
		m = metrics.NewNop()
	}
	return &QuoteService{
		source:  source,
		tracer:  apm.NewTracer("pricing.QuoteService"),
		metrics: m,
		logger:  logger,
	}
}

// SwapQuote computes the best available quote for swapping amountIn of
// tokenIn into tokenOut across all known pools.
func (s *QuoteService) SwapQuote(ctx context.Context, tokenIn, tokenOut asset.Token, amountIn asset.Amount, slippage asset.Slippage) (domain.SwapQuote, error) {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "SwapQuote")
	defer span.End()
	span.SetAttributes(
		attribute.String("token_in", tokenIn.Symbol()),
		attribute.String("token_out", tokenOut.Symbol()),
		attribute.String("amount_in", amountIn.String()),
	)

	pools, err := s.source.Pools(ctx)
	if err != nil {
		return domain.SwapQuote{}, s.fail(span, err, apperror.CodeInternalError, "loading pools")
	}

	route, ok := domain.BestRoute(pools, amountIn, tokenIn, tokenOut)
	if !ok {
		err := apperror.Validationf(apperror.CodePoolNotFound, "%s/%s", tokenIn.Symbol(), tokenOut.Symbol())
		return domain.SwapQuote{}, s.fail(span, err, "", "")
	}

	quote := domain.NewSwapQuote(route.Pool, tokenIn, tokenOut, amountIn, route.AmountOut, route.PriceImpact, slippage)

	s.metrics.QuotesComputed.WithLabelValues("swap").Inc()
	s.logger.Debug("swap quote computed",
		"pool", route.Pool.String(),
		"amount_out", quote.AmountOut.FormatDefault(),
		"price_impact_pct", quote.PriceImpact,
	)

	return quote, nil
}

// LiquidityQuote computes LP tokens minted and resulting pool share for
// depositing amount0/amount1 into the given pool.
func (s *QuoteService) LiquidityQuote(ctx context.Context, pool *domain.Pool, amount0, amount1 asset.Amount) (domain.LiquidityQuote, error) {
	_, span := s.tracer.StartSpanFromContext(ctx, "LiquidityQuote")
	defer span.End()

	lpTokens, err := pool.LPTokens(amount0, amount1)
	if err != nil {
		return domain.LiquidityQuote{}, s.fail(span, err, "", "")
	}

	quote := domain.LiquidityQuote{
		Pool:      pool,
		Amount0:   amount0,
		Amount1:   amount1,
		LPTokens:  lpTokens,
		PoolShare: pool.PoolShare(lpTokens),
		Timestamp: time.Now(),
	}

	s.metrics.QuotesComputed.WithLabelValues("liquidity").Inc()
	s.logger.Debug("liquidity quote computed",
		"pool", pool.String(),
		"lp_tokens", lpTokens.FormatDefault(),
		"pool_share_pct", quote.PoolShare.String(),
	)

	return quote, nil
}

// Routes ranks every eligible pool for the swap by weighted score.
func (s *QuoteService) Routes(ctx context.Context, tokenIn, tokenOut asset.Token, amountIn asset.Amount) ([]domain.RouteQuote, error) {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "Routes")
	defer span.End()

	pools, err := s.source.Pools(ctx)
	if err != nil {
		return nil, s.fail(span, err, apperror.CodeInternalError, "loading pools")
	}

	quotes := domain.CompareRoutes(pools, amountIn, tokenIn, tokenOut)
	s.metrics.QuotesComputed.WithLabelValues("route").Inc()

	return quotes, nil
}

// AveragePrice returns the liquidity-weighted average price of tokenIn
// in tokenOut across all eligible pools.
func (s *QuoteService) AveragePrice(ctx context.Context, tokenIn, tokenOut asset.Token) (decimal.Decimal, error) {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "AveragePrice")
	defer span.End()

	pools, err := s.source.Pools(ctx)
	if err != nil {
		return decimal.Zero, s.fail(span, err, apperror.CodeInternalError, "loading pools")
	}

	price, ok := domain.AveragePrice(pools, tokenIn, tokenOut)
	if !ok {
		err := apperror.Validationf(apperror.CodePoolNotFound, "%s/%s", tokenIn.Symbol(), tokenOut.Symbol())
		return decimal.Zero, s.fail(span, err, "", "")
	}

	return price, nil
}

// fail records the error on the span and in the error counter. When a
// code is given the error is wrapped first.
func (s *QuoteService) fail(span apm.Span, err error, code apperror.Code, context string) error {
	if code != "" {
		err = apperror.Wrap(err, code, context)
	}
	span.NoticeError(err)
	s.metrics.QuoteErrors.WithLabelValues(string(apperror.GetCode(err))).Inc()
	s.logger.Warn("quote failed", "error", err)
	return err
}
