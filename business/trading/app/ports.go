// Package app contains application services and port definitions for the trading context.
package app

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hvalen/ammkit/business/trading/domain"
	"github.com/hvalen/ammkit/internal/asset"
)

// TransactionSubmitter signs and broadcasts the transaction for an
// operation the core has validated. It is a collaborator contract:
// wallet plumbing, gas handling and confirmation polling all live
// behind it, outside the core.
type TransactionSubmitter interface {
	// SubmitSwap executes a swap with the given minimum acceptable
	// output and returns the transaction hash and the realized output.
	SubmitSwap(ctx context.Context, swap domain.SwapSnapshot, minimumOut asset.Amount) (common.Hash, asset.Amount, error)

	// SubmitLiquidity executes an add/remove liquidity operation and
	// returns the transaction hash and the LP tokens minted or burned.
	SubmitLiquidity(ctx context.Context, op domain.LiquiditySnapshot, expectedLPTokens asset.Amount) (common.Hash, asset.Amount, error)
}
