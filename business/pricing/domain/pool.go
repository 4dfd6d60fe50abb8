package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/hvalen/ammkit/internal/apperror"
	"github.com/hvalen/ammkit/internal/asset"
)

// Pool is an immutable snapshot of a constant-product pair, keyed by
// the pool contract address. A new reserve state requires a new Pool;
// no instance is mutated after construction.
type Pool struct {
	address     common.Address
	token0      asset.Token
	token1      asset.Token
	reserve0    asset.Amount
	reserve1    asset.Amount
	totalSupply asset.Amount
}

// NewPool builds a Pool from an on-chain reserves snapshot. Tokens must
// be in canonical order (token0.address < token1.address) and reserves
// non-negative.
func NewPool(address common.Address, token0, token1 asset.Token, reserve0, reserve1, totalSupply asset.Amount) (*Pool, error) {
	if !token0.SortsBefore(token1) {
		return nil, apperror.Validationf(apperror.CodeTokenOrderViolation, "%s >= %s",
			token0.Address().Hex(), token1.Address().Hex())
	}
	if reserve0.IsNegative() || reserve1.IsNegative() {
		return nil, apperror.Validation(apperror.CodeNegativeReserve, address.Hex())
	}
	if totalSupply.IsNegative() {
		return nil, apperror.Validation(apperror.CodeNegativeReserve, "totalSupply")
	}

	return &Pool{
		address:     address,
		token0:      token0,
		token1:      token1,
		reserve0:    reserve0,
		reserve1:    reserve1,
		totalSupply: totalSupply,
	}, nil
}

// Address returns the pool contract address.
func (p *Pool) Address() common.Address { return p.address }

// Token0 returns the canonical first token.
func (p *Pool) Token0() asset.Token { return p.token0 }

// Token1 returns the canonical second token.
func (p *Pool) Token1() asset.Token { return p.token1 }

// Reserve0 returns the reserve of token0.
func (p *Pool) Reserve0() asset.Amount { return p.reserve0 }

// Reserve1 returns the reserve of token1.
func (p *Pool) Reserve1() asset.Amount { return p.reserve1 }

// TotalSupply returns the LP token total supply.
func (p *Pool) TotalSupply() asset.Amount { return p.totalSupply }

// Contains reports whether the token is one side of this pool.
func (p *Pool) Contains(token asset.Token) bool {
	return p.token0.Equals(token) || p.token1.Equals(token)
}

// ContainsPair reports whether both tokens are members of this pool.
func (p *Pool) ContainsPair(a, b asset.Token) bool {
	return p.Contains(a) && p.Contains(b) && !a.Equals(b)
}

// Price returns the spot price of token0 denominated in token1
// (reserve1/reserve0), 0 when reserve0 is empty.
func (p *Pool) Price() decimal.Decimal {
	if p.reserve0.IsZero() {
		return decimal.Zero
	}
	return p.reserve1.Decimal().Div(p.reserve0.Decimal())
}

// InversePrice returns the spot price of token1 denominated in token0.
func (p *Pool) InversePrice() decimal.Decimal {
	if p.reserve1.IsZero() {
		return decimal.Zero
	}
	return p.reserve0.Decimal().Div(p.reserve1.Decimal())
}

// Reserve returns the reserve for a member token.
func (p *Pool) Reserve(token asset.Token) (asset.Amount, bool) {
	switch {
	case p.token0.Equals(token):
		return p.reserve0, true
	case p.token1.Equals(token):
		return p.reserve1, true
	default:
		return asset.Amount{}, false
	}
}

// ReserveBySymbol returns the reserve for a member token by its symbol,
// ignoring case.
func (p *Pool) ReserveBySymbol(symbol string) (asset.Amount, bool) {
	switch {
	case p.token0.HasSymbol(symbol):
		return p.reserve0, true
	case p.token1.HasSymbol(symbol):
		return p.reserve1, true
	default:
		return asset.Amount{}, false
	}
}

// sides resolves which reserves are in/out for a swap entering with
// tokenIn.
func (p *Pool) sides(tokenIn asset.Token) (reserveIn, reserveOut asset.Amount, tokenOut asset.Token, err error) {
	switch {
	case p.token0.Equals(tokenIn):
		return p.reserve0, p.reserve1, p.token1, nil
	case p.token1.Equals(tokenIn):
		return p.reserve1, p.reserve0, p.token0, nil
	default:
		return asset.Amount{}, asset.Amount{}, asset.Token{},
			apperror.Validation(apperror.CodeTokenMismatch, tokenIn.Symbol())
	}
}

// AmountOut quotes the output for swapping amountIn of tokenIn.
func (p *Pool) AmountOut(tokenIn asset.Token, amountIn asset.Amount) (asset.Amount, error) {
	reserveIn, reserveOut, tokenOut, err := p.sides(tokenIn)
	if err != nil {
		return asset.Amount{}, err
	}
	return AmountOut(amountIn, reserveIn, reserveOut, tokenOut.Decimals())
}

// AmountIn quotes the input required to receive amountOut of tokenOut.
func (p *Pool) AmountIn(tokenOut asset.Token, amountOut asset.Amount) (asset.Amount, error) {
	reserveOut, reserveIn, tokenIn, err := p.sides(tokenOut)
	if err != nil {
		return asset.Amount{}, err
	}
	return AmountIn(amountOut, reserveIn, reserveOut, tokenIn.Decimals())
}

// PriceImpact returns the price impact percentage of swapping amountIn
// of tokenIn against this pool.
func (p *Pool) PriceImpact(tokenIn asset.Token, amountIn asset.Amount) (float64, error) {
	reserveIn, reserveOut, _, err := p.sides(tokenIn)
	if err != nil {
		return 0, err
	}

	amountOut, err := p.AmountOut(tokenIn, amountIn)
	if err != nil {
		return 0, err
	}

	return PriceImpact(amountIn, amountOut, reserveIn, reserveOut), nil
}

// HasEnoughLiquidity reports whether the pool can pay out amountOut of
// tokenOut without being drained.
func (p *Pool) HasEnoughLiquidity(tokenOut asset.Token, amountOut asset.Amount) bool {
	reserveOut, ok := p.Reserve(tokenOut)
	if !ok {
		return false
	}
	return amountOut.IsPositive() && amountOut.Decimal().LessThan(reserveOut.Decimal())
}

// LPTokens computes the LP tokens minted for depositing amount0/amount1
// at this snapshot's reserves.
func (p *Pool) LPTokens(amount0, amount1 asset.Amount) (asset.Amount, error) {
	return LPTokensForDeposit(amount0, amount1, p.reserve0, p.reserve1, p.totalSupply)
}

// RemoveLiquidity computes the token amounts returned for burning
// lpTokens at this snapshot's reserves.
func (p *Pool) RemoveLiquidity(lpTokens asset.Amount) (asset.Amount, asset.Amount, error) {
	return RemoveLiquidityAmounts(lpTokens, p.reserve0, p.reserve1, p.totalSupply,
		p.token0.Decimals(), p.token1.Decimals())
}

// PoolShare returns the percentage share of the pool a deposit minting
// lpTokens would own. The first provider owns the whole pool.
func (p *Pool) PoolShare(lpTokens asset.Amount) decimal.Decimal {
	if p.totalSupply.IsZero() {
		return decimal.NewFromInt(100)
	}
	total := p.totalSupply.Decimal().Add(lpTokens.Decimal())
	return lpTokens.Decimal().Div(total).Mul(decimal.NewFromInt(100))
}

// String returns a human-readable representation.
func (p *Pool) String() string {
	return fmt.Sprintf("%s/%s@%s", p.token0.Symbol(), p.token1.Symbol(), p.address.Hex())
}
