package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/hvalen/ammkit/internal/apperror"
	"github.com/hvalen/ammkit/internal/asset"
)

// OpType distinguishes liquidity provision from withdrawal.
type OpType string

const (
	OpAdd    OpType = "ADD"
	OpRemove OpType = "REMOVE"
)

// Liquidity is the aggregate for a single add/remove liquidity attempt.
// It shares the Swap lifecycle: Pending → Executing → {Success|Failed}.
type Liquidity struct {
	id        string
	opType    OpType
	token0    asset.Token
	token1    asset.Token
	amount0   asset.Amount
	amount1   asset.Amount
	slippage  asset.Slippage
	status    Status
	txHash    common.Hash
	lpTokens  asset.Amount
	createdAt time.Time
	updatedAt time.Time
}

// NewLiquidity creates a Liquidity operation in the Pending state.
func NewLiquidity(opType OpType, token0, token1 asset.Token, amount0, amount1 asset.Amount, slippage asset.Slippage) (*Liquidity, error) {
	if opType != OpAdd && opType != OpRemove {
		return nil, apperror.Validation(apperror.CodeInvalidInput, string(opType))
	}
	if token0.Equals(token1) {
		return nil, apperror.Validation(apperror.CodeIdenticalTokens, token0.Symbol())
	}
	if !amount0.IsPositive() {
		return nil, apperror.Validation(apperror.CodeNonPositiveAmount, "amount0 "+amount0.String())
	}
	if !amount1.IsPositive() {
		return nil, apperror.Validation(apperror.CodeNonPositiveAmount, "amount1 "+amount1.String())
	}

	now := time.Now()
	return &Liquidity{
		id:        uuid.NewString(),
		opType:    opType,
		token0:    token0,
		token1:    token1,
		amount0:   amount0,
		amount1:   amount1,
		slippage:  slippage,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ID returns the generated operation identifier.
func (l *Liquidity) ID() string { return l.id }

// Type returns whether this adds or removes liquidity.
func (l *Liquidity) Type() OpType { return l.opType }

// Token0 returns the first token of the pair.
func (l *Liquidity) Token0() asset.Token { return l.token0 }

// Token1 returns the second token of the pair.
func (l *Liquidity) Token1() asset.Token { return l.token1 }

// Amount0 returns the first token amount.
func (l *Liquidity) Amount0() asset.Amount { return l.amount0 }

// Amount1 returns the second token amount.
func (l *Liquidity) Amount1() asset.Amount { return l.amount1 }

// Slippage returns the tolerated slippage.
func (l *Liquidity) Slippage() asset.Slippage { return l.slippage }

// Status returns the current lifecycle state.
func (l *Liquidity) Status() Status { return l.status }

// TxHash returns the transaction hash set on success.
func (l *Liquidity) TxHash() common.Hash { return l.txHash }

// LPTokens returns the minted (or burned) LP tokens set on success.
func (l *Liquidity) LPTokens() asset.Amount { return l.lpTokens }

// CreatedAt returns the aggregate creation time.
func (l *Liquidity) CreatedAt() time.Time { return l.createdAt }

func (l *Liquidity) transition(next Status) error {
	if !l.status.CanTransitionTo(next) {
		return apperror.BusinessRule(apperror.CodeInvalidStateTransition,
			string(l.status)+" -> "+string(next))
	}
	l.status = next
	l.updatedAt = time.Now()
	return nil
}

// MarkExecuting moves the operation from Pending to Executing.
func (l *Liquidity) MarkExecuting() error {
	return l.transition(StatusExecuting)
}

// MarkSuccess records the executed transaction and LP token amount.
// Legal only from Executing.
func (l *Liquidity) MarkSuccess(txHash common.Hash, lpTokens asset.Amount) error {
	if err := l.transition(StatusSuccess); err != nil {
		return err
	}
	l.txHash = txHash
	l.lpTokens = lpTokens
	return nil
}

// MarkFailed moves the operation to Failed. Legal only from Executing.
func (l *Liquidity) MarkFailed() error {
	return l.transition(StatusFailed)
}

// MinimumOutput returns the slippage-adjusted minimum acceptable output
// for an expected amount.
func (l *Liquidity) MinimumOutput(expected asset.Amount) asset.Amount {
	return expected.ApplySlippage(l.slippage)
}

// CheckPriceImpact refuses the operation when the quoted impact exceeds
// the hard threshold.
func (l *Liquidity) CheckPriceImpact(impactPct float64) error {
	if impactPct > MaxPriceImpactPercent {
		return apperror.BusinessRule(apperror.CodeExcessivePriceImpact, l.id)
	}
	return nil
}

// LiquiditySnapshot is the externally visible state of a Liquidity
// operation.
type LiquiditySnapshot struct {
	ID        string
	Type      OpType
	Token0    asset.Token
	Token1    asset.Token
	Amount0   asset.Amount
	Amount1   asset.Amount
	Status    Status
	TxHash    common.Hash
	LPTokens  asset.Amount
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot returns a copy of the operation's current state.
func (l *Liquidity) Snapshot() LiquiditySnapshot {
	return LiquiditySnapshot{
		ID:        l.id,
		Type:      l.opType,
		Token0:    l.token0,
		Token1:    l.token1,
		Amount0:   l.amount0,
		Amount1:   l.amount1,
		Status:    l.status,
		TxHash:    l.txHash,
		LPTokens:  l.lpTokens,
		CreatedAt: l.createdAt,
		UpdatedAt: l.updatedAt,
	}
}
