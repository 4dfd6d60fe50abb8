package asset_test

import (
	"testing"

	"github.com/hvalen/ammkit/internal/apperror"
	"github.com/hvalen/ammkit/internal/asset"
)

const (
	wethAddr = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	usdcAddr = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

func TestNewToken(t *testing.T) {
	weth, err := asset.NewToken(wethAddr, "WETH", "Wrapped Ether", 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weth.Symbol() != "WETH" || weth.Name() != "Wrapped Ether" || weth.Decimals() != 18 {
		t.Errorf("unexpected token: %s %s %d", weth.Symbol(), weth.Name(), weth.Decimals())
	}
}

func TestNewToken_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		symbol   string
		decimals uint8
		wantCode apperror.Code
	}{
		{"bad_address", "0x1234", "X", 18, apperror.CodeInvalidTokenAddress},
		{"missing_prefix_ok_but_short", "abcd", "X", 18, apperror.CodeInvalidTokenAddress},
		{"decimals_too_large", wethAddr, "X", 19, apperror.CodeInvalidTokenDecimals},
		{"empty_symbol", wethAddr, "", 18, apperror.CodeRequiredField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := asset.NewToken(tt.address, tt.symbol, "", tt.decimals)
			if !apperror.IsCode(err, tt.wantCode) {
				t.Errorf("code = %s, want %s", apperror.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestToken_EqualityIsCaseInsensitive(t *testing.T) {
	upper := asset.MustToken(wethAddr, "WETH", "", 18)
	lower := asset.MustToken("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "WETH2", "", 18)

	if !upper.Equals(lower) {
		t.Error("tokens with the same address should be equal regardless of hex casing")
	}
}

func TestToken_SortsBefore(t *testing.T) {
	usdc := asset.MustToken(usdcAddr, "USDC", "", 6)
	weth := asset.MustToken(wethAddr, "WETH", "", 18)

	// 0xA0b8... < 0xC02a...
	if !usdc.SortsBefore(weth) {
		t.Error("USDC address should sort before WETH address")
	}
	if weth.SortsBefore(usdc) {
		t.Error("ordering should be antisymmetric")
	}
	if usdc.SortsBefore(usdc) {
		t.Error("a token never sorts before itself")
	}
}

func TestToken_HasSymbol(t *testing.T) {
	weth := asset.MustToken(wethAddr, "WETH", "", 18)
	if !weth.HasSymbol("weth") {
		t.Error("symbol match should ignore case")
	}
	if weth.HasSymbol("USDC") {
		t.Error("different symbol should not match")
	}
}
