package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/hvalen/ammkit/internal/apperror"
	"github.com/hvalen/ammkit/internal/asset"
)

// MaxPriceImpactPercent is the hard threshold above which a trade is
// refused rather than warned about.
const MaxPriceImpactPercent = 5.0

// Swap is the aggregate for a single swap attempt. Construction
// validates every business rule synchronously: an invalid Swap can
// never exist. The Mark* transitions are the only mutation path.
type Swap struct {
	id        string
	tokenIn   asset.Token
	tokenOut  asset.Token
	amountIn  asset.Amount
	slippage  asset.Slippage
	status    Status
	txHash    common.Hash
	amountOut asset.Amount
	createdAt time.Time
	updatedAt time.Time
}

// NewSwap creates a Swap in the Pending state.
func NewSwap(tokenIn, tokenOut asset.Token, amountIn asset.Amount, slippage asset.Slippage) (*Swap, error) {
	if tokenIn.Equals(tokenOut) {
		return nil, apperror.Validation(apperror.CodeIdenticalTokens, tokenIn.Symbol())
	}
	if !amountIn.IsPositive() {
		return nil, apperror.Validation(apperror.CodeNonPositiveAmount, amountIn.String())
	}

	now := time.Now()
	return &Swap{
		id:        uuid.NewString(),
		tokenIn:   tokenIn,
		tokenOut:  tokenOut,
		amountIn:  amountIn,
		slippage:  slippage,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ID returns the generated swap identifier.
func (s *Swap) ID() string { return s.id }

// TokenIn returns the input token.
func (s *Swap) TokenIn() asset.Token { return s.tokenIn }

// TokenOut returns the output token.
func (s *Swap) TokenOut() asset.Token { return s.tokenOut }

// AmountIn returns the input amount.
func (s *Swap) AmountIn() asset.Amount { return s.amountIn }

// Slippage returns the tolerated slippage.
func (s *Swap) Slippage() asset.Slippage { return s.slippage }

// Status returns the current lifecycle state.
func (s *Swap) Status() Status { return s.status }

// TxHash returns the transaction hash set on success.
func (s *Swap) TxHash() common.Hash { return s.txHash }

// AmountOut returns the executed output amount set on success.
func (s *Swap) AmountOut() asset.Amount { return s.amountOut }

// CreatedAt returns the aggregate creation time.
func (s *Swap) CreatedAt() time.Time { return s.createdAt }

func (s *Swap) transition(next Status) error {
	if !s.status.CanTransitionTo(next) {
		return apperror.BusinessRule(apperror.CodeInvalidStateTransition,
			string(s.status)+" -> "+string(next))
	}
	s.status = next
	s.updatedAt = time.Now()
	return nil
}

// MarkExecuting moves the swap from Pending to Executing.
func (s *Swap) MarkExecuting() error {
	return s.transition(StatusExecuting)
}

// MarkSuccess records the executed transaction and output amount.
// Legal only from Executing.
func (s *Swap) MarkSuccess(txHash common.Hash, amountOut asset.Amount) error {
	if err := s.transition(StatusSuccess); err != nil {
		return err
	}
	s.txHash = txHash
	s.amountOut = amountOut
	return nil
}

// MarkFailed moves the swap to Failed. Legal only from Executing; a
// successful swap can never become failed.
func (s *Swap) MarkFailed() error {
	return s.transition(StatusFailed)
}

// MinimumOutput returns the slippage-adjusted minimum acceptable output
// for an expected amount.
func (s *Swap) MinimumOutput(expected asset.Amount) asset.Amount {
	return expected.ApplySlippage(s.slippage)
}

// CheckPriceImpact refuses the trade when the quoted impact exceeds the
// hard threshold.
func (s *Swap) CheckPriceImpact(impactPct float64) error {
	if impactPct > MaxPriceImpactPercent {
		return apperror.BusinessRule(apperror.CodeExcessivePriceImpact, s.id)
	}
	return nil
}

// SwapSnapshot is the externally visible state of a Swap.
type SwapSnapshot struct {
	ID        string
	TokenIn   asset.Token
	TokenOut  asset.Token
	AmountIn  asset.Amount
	Status    Status
	TxHash    common.Hash
	AmountOut asset.Amount
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot returns a copy of the swap's current state.
func (s *Swap) Snapshot() SwapSnapshot {
	return SwapSnapshot{
		ID:        s.id,
		TokenIn:   s.tokenIn,
		TokenOut:  s.tokenOut,
		AmountIn:  s.amountIn,
		Status:    s.status,
		TxHash:    s.txHash,
		AmountOut: s.amountOut,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
}
