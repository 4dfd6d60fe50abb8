// Package snapshotfile implements a PoolSource over a JSON snapshot
// file. It exists for the quoter CLI and for tests; production callers
// plug in their own on-chain reserve reader.
package snapshotfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hvalen/ammkit/business/pricing/domain"
	"github.com/hvalen/ammkit/internal/asset"
)

type tokenRecord struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
}

type poolRecord struct {
	Address     string      `json:"address"`
	Token0      tokenRecord `json:"token0"`
	Token1      tokenRecord `json:"token1"`
	Reserve0    string      `json:"reserve0"`
	Reserve1    string      `json:"reserve1"`
	TotalSupply string      `json:"totalSupply"`
}

type snapshot struct {
	Pools []poolRecord `json:"pools"`
}

// Source serves pools parsed once from a snapshot file.
type Source struct {
	pools []*domain.Pool
}

// Load parses the snapshot file and validates every pool through the
// domain constructors.
func Load(path string) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshotfile: reading %s: %w", path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("snapshotfile: parsing %s: %w", path, err)
	}

	pools := make([]*domain.Pool, 0, len(snap.Pools))
	for i, rec := range snap.Pools {
		pool, err := buildPool(rec)
		if err != nil {
			return nil, fmt.Errorf("snapshotfile: pool %d: %w", i, err)
		}
		pools = append(pools, pool)
	}

	return &Source{pools: pools}, nil
}

// Pools implements app.PoolSource.
func (s *Source) Pools(context.Context) ([]*domain.Pool, error) {
	return s.pools, nil
}

func buildPool(rec poolRecord) (*domain.Pool, error) {
	if !common.IsHexAddress(rec.Address) {
		return nil, fmt.Errorf("invalid pool address %q", rec.Address)
	}

	token0, err := asset.NewToken(rec.Token0.Address, rec.Token0.Symbol, rec.Token0.Name, rec.Token0.Decimals)
	if err != nil {
		return nil, err
	}
	token1, err := asset.NewToken(rec.Token1.Address, rec.Token1.Symbol, rec.Token1.Name, rec.Token1.Decimals)
	if err != nil {
		return nil, err
	}

	reserve0, err := asset.NewAmount(rec.Reserve0, token0.Decimals())
	if err != nil {
		return nil, err
	}
	reserve1, err := asset.NewAmount(rec.Reserve1, token1.Decimals())
	if err != nil {
		return nil, err
	}

	supply := rec.TotalSupply
	if supply == "" {
		supply = "0"
	}
	totalSupply, err := asset.NewAmount(supply, asset.MaxDecimals)
	if err != nil {
		return nil, err
	}

	return domain.NewPool(common.HexToAddress(rec.Address), token0, token1, reserve0, reserve1, totalSupply)
}
