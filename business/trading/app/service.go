package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	pricingApp "github.com/hvalen/ammkit/business/pricing/app"
	pricingDomain "github.com/hvalen/ammkit/business/pricing/domain"
	"github.com/hvalen/ammkit/business/trading/domain"
	"github.com/hvalen/ammkit/internal/apm"
	"github.com/hvalen/ammkit/internal/asset"
	"github.com/hvalen/ammkit/internal/metrics"
)

// TradingService drives the Swap and Liquidity aggregate lifecycle:
// quote, validate, hand off to the submitter, record the outcome. The
// aggregates own every business rule; the service sequences them.
type TradingService struct {
	quotes    *pricingApp.QuoteService
	submitter TransactionSubmitter
	tracer    apm.Tracer
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewTradingService creates a TradingService.
func NewTradingService(quotes *pricingApp.QuoteService, submitter TransactionSubmitter, m *metrics.Metrics, logger *slog.Logger) *TradingService {
	if m == nil {
		m = metrics.NewNop()
	}
	return &TradingService{
		quotes:    quotes,
		submitter: submitter,
		tracer:    apm.NewTracer("trading.TradingService"),
		metrics:   m,
		logger:    logger,
	}
}

// ExecuteSwap runs a full swap attempt and returns the terminal
// aggregate state. A failed submission yields a Failed snapshot and the
// submission error.
func (s *TradingService) ExecuteSwap(ctx context.Context, tokenIn, tokenOut asset.Token, amountIn asset.Amount, slippage asset.Slippage) (domain.SwapSnapshot, error) {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "ExecuteSwap")
	defer span.End()

	quote, err := s.quotes.SwapQuote(ctx, tokenIn, tokenOut, amountIn, slippage)
	if err != nil {
		span.NoticeError(err)
		return domain.SwapSnapshot{}, err
	}

	swap, err := domain.NewSwap(tokenIn, tokenOut, amountIn, slippage)
	if err != nil {
		span.NoticeError(err)
		return domain.SwapSnapshot{}, err
	}
	span.SetAttributes(attribute.String("swap_id", swap.ID()))

	if err := swap.CheckPriceImpact(quote.PriceImpact); err != nil {
		span.NoticeError(err)
		s.metrics.Trades.WithLabelValues("swap", "rejected").Inc()
		return swap.Snapshot(), err
	}

	if err := swap.MarkExecuting(); err != nil {
		return domain.SwapSnapshot{}, err
	}

	txHash, amountOut, submitErr := s.submitter.SubmitSwap(ctx, swap.Snapshot(), quote.MinimumOutput)
	if submitErr != nil {
		span.NoticeError(submitErr)
		if err := swap.MarkFailed(); err != nil {
			return domain.SwapSnapshot{}, err
		}
		s.metrics.Trades.WithLabelValues("swap", "failed").Inc()
		s.logger.Warn("swap failed", "swap_id", swap.ID(), "error", submitErr)
		return swap.Snapshot(), submitErr
	}

	if err := swap.MarkSuccess(txHash, amountOut); err != nil {
		return domain.SwapSnapshot{}, err
	}

	s.metrics.Trades.WithLabelValues("swap", "success").Inc()
	s.logger.Info("swap executed",
		"swap_id", swap.ID(),
		"tx_hash", txHash.Hex(),
		"amount_out", amountOut.FormatDefault(),
	)

	return swap.Snapshot(), nil
}

// AddLiquidity runs a full add-liquidity attempt against the pool.
func (s *TradingService) AddLiquidity(ctx context.Context, pool *pricingDomain.Pool, amount0, amount1 asset.Amount, slippage asset.Slippage) (domain.LiquiditySnapshot, error) {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "AddLiquidity")
	defer span.End()

	quote, err := s.quotes.LiquidityQuote(ctx, pool, amount0, amount1)
	if err != nil {
		span.NoticeError(err)
		return domain.LiquiditySnapshot{}, err
	}

	op, err := domain.NewLiquidity(domain.OpAdd, pool.Token0(), pool.Token1(), amount0, amount1, slippage)
	if err != nil {
		span.NoticeError(err)
		return domain.LiquiditySnapshot{}, err
	}

	return s.submitLiquidity(ctx, span, op, quote.LPTokens)
}

// RemoveLiquidity runs a full remove-liquidity attempt: lpTokens are
// burned for the proportional reserve amounts.
func (s *TradingService) RemoveLiquidity(ctx context.Context, pool *pricingDomain.Pool, lpTokens asset.Amount, slippage asset.Slippage) (domain.LiquiditySnapshot, error) {
	ctx, span := s.tracer.StartSpanFromContext(ctx, "RemoveLiquidity")
	defer span.End()

	amount0, amount1, err := pool.RemoveLiquidity(lpTokens)
	if err != nil {
		span.NoticeError(err)
		return domain.LiquiditySnapshot{}, err
	}

	op, err := domain.NewLiquidity(domain.OpRemove, pool.Token0(), pool.Token1(), amount0, amount1, slippage)
	if err != nil {
		span.NoticeError(err)
		return domain.LiquiditySnapshot{}, err
	}

	return s.submitLiquidity(ctx, span, op, lpTokens)
}

func (s *TradingService) submitLiquidity(ctx context.Context, span apm.Span, op *domain.Liquidity, lpTokens asset.Amount) (domain.LiquiditySnapshot, error) {
	if err := op.MarkExecuting(); err != nil {
		return domain.LiquiditySnapshot{}, err
	}

	txHash, minted, submitErr := s.submitter.SubmitLiquidity(ctx, op.Snapshot(), lpTokens)
	if submitErr != nil {
		span.NoticeError(submitErr)
		if err := op.MarkFailed(); err != nil {
			return domain.LiquiditySnapshot{}, err
		}
		s.metrics.Trades.WithLabelValues("liquidity", "failed").Inc()
		s.logger.Warn("liquidity operation failed", "op_id", op.ID(), "type", op.Type(), "error", submitErr)
		return op.Snapshot(), submitErr
	}

	if err := op.MarkSuccess(txHash, minted); err != nil {
		return domain.LiquiditySnapshot{}, err
	}

	s.metrics.Trades.WithLabelValues("liquidity", "success").Inc()
	s.logger.Info("liquidity operation executed",
		"op_id", op.ID(),
		"type", op.Type(),
		"tx_hash", txHash.Hex(),
		"lp_tokens", minted.FormatDefault(),
	)

	return op.Snapshot(), nil
}
