package starknet

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Felt is a StarkNet field element. Values are always below the stark prime
// (~2^251), so a 256-bit unsigned integer holds any valid felt. The JSON wire
// form is a 0x-prefixed hex string, which uint256.Int already speaks.
type Felt = uint256.Int

// HexToFelt parses a 0x-prefixed hex string into a Felt.
func HexToFelt(s string) (*Felt, error) {
	f, err := uint256.FromHex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid felt %q: %w", s, err)
	}
	return f, nil
}

// MustHexToFelt is like HexToFelt but panics on malformed input. Only for
// constants and tests.
func MustHexToFelt(s string) *Felt {
	f, err := HexToFelt(s)
	if err != nil {
		panic(err)
	}
	return f
}

// BigToFelt converts a non-negative big.Int into a Felt.
func BigToFelt(b *big.Int) (*Felt, error) {
	f, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("value %s overflows felt", b.String())
	}
	return f, nil
}

// Uint64ToFelt converts a uint64 into a Felt.
func Uint64ToFelt(v uint64) *Felt {
	return uint256.NewInt(v)
}
