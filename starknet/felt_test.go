package starknet

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexToFelt(t *testing.T) {
	f, err := HexToFelt("0x7b")
	require.NoError(t, err)
	require.Equal(t, uint64(123), f.Uint64())
	require.Equal(t, "0x7b", f.Hex())

	_, err = HexToFelt("123")
	require.Error(t, err)
	_, err = HexToFelt("0xzz")
	require.Error(t, err)

	require.Panics(t, func() { MustHexToFelt("not hex") })
}

func TestBigToFelt(t *testing.T) {
	f, err := BigToFelt(big.NewInt(456))
	require.NoError(t, err)
	require.Equal(t, uint64(456), f.Uint64())

	// 2^256 does not fit
	overflow := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = BigToFelt(overflow)
	require.ErrorContains(t, err, "overflows felt")
}

func TestFeltHexRoundTrip(t *testing.T) {
	// L1 reports state roots as big integers, the cache keys them by
	// canonical hex, both spellings must land on the same string
	root := big.NewInt(0xa10)
	fromL1, err := BigToFelt(root)
	require.NoError(t, err)
	require.Equal(t, MustHexToFelt("0xa10").Hex(), fromL1.Hex())
}
