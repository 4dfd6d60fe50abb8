// Package app contains application services and port definitions for the pricing context.
package app

import (
	"context"

	"github.com/hvalen/ammkit/business/pricing/domain"
)

// PoolSource supplies reserve snapshots for pool construction. It is a
// collaborator contract: implementations live outside the core (an RPC
// reader, a subgraph client, a fixture file).
type PoolSource interface {
	// Pools returns the current set of pool snapshots.
	Pools(ctx context.Context) ([]*domain.Pool, error)
}

// PoolSourceFunc adapts a function to the PoolSource interface.
type PoolSourceFunc func(ctx context.Context) ([]*domain.Pool, error)

// Pools implements PoolSource.
func (f PoolSourceFunc) Pools(ctx context.Context) ([]*domain.Pool, error) {
	return f(ctx)
}

// StaticPools returns a PoolSource serving a fixed snapshot set.
func StaticPools(pools ...*domain.Pool) PoolSource {
	return PoolSourceFunc(func(context.Context) ([]*domain.Pool, error) {
		return pools, nil
	})
}
