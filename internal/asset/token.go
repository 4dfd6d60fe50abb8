// Package asset provides the token reference type and the decimal-safe
// value objects (Amount, Slippage) the pricing and trading contexts
// are built on. Settlement values never touch native floating point;
// decimal.Decimal carries them and big.Int holds base units.
package asset

import (
	"bytes"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hvalen/ammkit/internal/apperror"
)

// MaxDecimals is the largest decimal count a token or Amount may carry.
const MaxDecimals = 18

// Token represents the metadata of an ERC20-style token.
// It is a reference value supplied by the caller: identity is the
// contract address (case-insensitive), the symbol is display metadata.
type Token struct {
	address  common.Address
	symbol   string
	name     string
	decimals uint8
}

// NewToken creates a Token from a 0x-prefixed hex address string.
func NewToken(address, symbol, name string, decimals uint8) (Token, error) {
	if !common.IsHexAddress(address) {
		return Token{}, apperror.Validation(apperror.CodeInvalidTokenAddress, address)
	}
	if decimals > MaxDecimals {
		return Token{}, apperror.Validationf(apperror.CodeInvalidTokenDecimals, "%s: %d", symbol, decimals)
	}
	if symbol == "" {
		return Token{}, apperror.Validation(apperror.CodeRequiredField, "token symbol")
	}

	return Token{
		address:  common.HexToAddress(address),
		symbol:   symbol,
		name:     name,
		decimals: decimals,
	}, nil
}

// MustToken creates a Token, panicking on invalid input. Intended for
// tests and static token tables.
func MustToken(address, symbol, name string, decimals uint8) Token {
	t, err := NewToken(address, symbol, name, decimals)
	if err != nil {
		panic(err)
	}
	return t
}

// Address returns the token contract address.
func (t Token) Address() common.Address {
	return t.address
}

// Symbol returns the ticker symbol (e.g., "WETH", "USDC").
func (t Token) Symbol() string {
	return t.symbol
}

// Name returns the human-readable name, falling back to the symbol.
func (t Token) Name() string {
	if t.name == "" {
		return t.symbol
	}
	return t.name
}

// Decimals returns the number of decimal places.
func (t Token) Decimals() uint8 {
	return t.decimals
}

// Equals compares two tokens by address. common.Address is already
// case-normalized, so this is the case-insensitive identity the
// callers expect.
func (t Token) Equals(other Token) bool {
	return t.address == other.address
}

// SortsBefore reports whether t precedes other in canonical pool order
// (ascending byte order of the addresses).
func (t Token) SortsBefore(other Token) bool {
	return bytes.Compare(t.address.Bytes(), other.address.Bytes()) < 0
}

// HasSymbol reports whether the token's symbol matches, ignoring case.
func (t Token) HasSymbol(symbol string) bool {
	return strings.EqualFold(t.symbol, symbol)
}

// String returns a human-readable representation.
func (t Token) String() string {
	return t.symbol
}
