package snapshotfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hvalen/ammkit/business/pricing/infra/snapshotfile"
	"github.com/hvalen/ammkit/internal/apperror"
)

const validSnapshot = `{
  "pools": [
    {
      "address": "0x00000000000000000000000000000000000000a1",
      "token0": {"address": "0x0000000000000000000000000000000000000001", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
      "token1": {"address": "0x0000000000000000000000000000000000000002", "symbol": "USDC", "name": "USD Coin", "decimals": 6},
      "reserve0": "1000",
      "reserve1": "2000000",
      "totalSupply": "40000"
    },
    {
      "address": "0x00000000000000000000000000000000000000a2",
      "token0": {"address": "0x0000000000000000000000000000000000000001", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
      "token1": {"address": "0x0000000000000000000000000000000000000003", "symbol": "DAI", "name": "Dai Stablecoin", "decimals": 18},
      "reserve0": "500",
      "reserve1": "1000000",
      "totalSupply": "20000"
    }
  ]
}`

func writeSnapshot(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pools.json")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	source, err := snapshotfile.Load(writeSnapshot(t, validSnapshot))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	pools, err := source.Pools(context.Background())
	if err != nil {
		t.Fatalf("Pools: %v", err)
	}
	if len(pools) != 2 {
		t.Fatalf("len(pools) = %d, want 2", len(pools))
	}

	weth, ok := pools[0].ReserveBySymbol("WETH")
	if !ok {
		t.Fatal("WETH reserve not found")
	}
	if weth.Decimal().String() != "1000" {
		t.Errorf("WETH reserve = %s, want 1000", weth.Decimal().String())
	}
	if pools[0].Token1().Decimals() != 6 {
		t.Errorf("token1 decimals = %d, want 6", pools[0].Token1().Decimals())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := snapshotfile.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	if _, err := snapshotfile.Load(writeSnapshot(t, "{not json")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoad_InvalidRecords(t *testing.T) {
	tests := []struct {
		name     string
		snapshot string
		wantCode apperror.Code
	}{
		{
			name: "bad token address",
			snapshot: `{"pools": [{
				"address": "0x00000000000000000000000000000000000000a1",
				"token0": {"address": "not-an-address", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
				"token1": {"address": "0x0000000000000000000000000000000000000002", "symbol": "USDC", "name": "USD Coin", "decimals": 6},
				"reserve0": "1", "reserve1": "1", "totalSupply": "1"}]}`,
			wantCode: apperror.CodeInvalidTokenAddress,
		},
		{
			name: "unsorted token pair",
			snapshot: `{"pools": [{
				"address": "0x00000000000000000000000000000000000000a1",
				"token0": {"address": "0x0000000000000000000000000000000000000002", "symbol": "USDC", "name": "USD Coin", "decimals": 6},
				"token1": {"address": "0x0000000000000000000000000000000000000001", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
				"reserve0": "1", "reserve1": "1", "totalSupply": "1"}]}`,
			wantCode: apperror.CodeTokenOrderViolation,
		},
		{
			name: "negative reserve",
			snapshot: `{"pools": [{
				"address": "0x00000000000000000000000000000000000000a1",
				"token0": {"address": "0x0000000000000000000000000000000000000001", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
				"token1": {"address": "0x0000000000000000000000000000000000000002", "symbol": "USDC", "name": "USD Coin", "decimals": 6},
				"reserve0": "-1", "reserve1": "1", "totalSupply": "1"}]}`,
			wantCode: apperror.CodeNegativeReserve,
		},
		{
			name: "unparseable reserve",
			snapshot: `{"pools": [{
				"address": "0x00000000000000000000000000000000000000a1",
				"token0": {"address": "0x0000000000000000000000000000000000000001", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
				"token1": {"address": "0x0000000000000000000000000000000000000002", "symbol": "USDC", "name": "USD Coin", "decimals": 6},
				"reserve0": "abc", "reserve1": "1", "totalSupply": "1"}]}`,
			wantCode: apperror.CodeInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := snapshotfile.Load(writeSnapshot(t, tt.snapshot))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !apperror.IsCode(err, tt.wantCode) {
				t.Errorf("code = %q, want %q (err: %v)", apperror.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestLoad_EmptyTotalSupplyDefaultsToZero(t *testing.T) {
	snap := `{"pools": [{
		"address": "0x00000000000000000000000000000000000000a1",
		"token0": {"address": "0x0000000000000000000000000000000000000001", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
		"token1": {"address": "0x0000000000000000000000000000000000000002", "symbol": "USDC", "name": "USD Coin", "decimals": 6},
		"reserve0": "1", "reserve1": "1"}]}`

	source, err := snapshotfile.Load(writeSnapshot(t, snap))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	pools, _ := source.Pools(context.Background())
	if !pools[0].TotalSupply().IsZero() {
		t.Error("expected zero total supply")
	}
}
