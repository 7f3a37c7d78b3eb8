package etherman

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// BlockNumberFinality is the level of assurance asked of the L1 node when
// resolving a block-tagged read.
type BlockNumberFinality string

const (
	// LatestBlock is the head of the chain, reorganizable
	LatestBlock = BlockNumberFinality("LatestBlock")
	// SafeBlock is unlikely to be reorganized
	SafeBlock = BlockNumberFinality("SafeBlock")
	// PendingBlock is the block being built
	PendingBlock = BlockNumberFinality("PendingBlock")
	// FinalizedBlock can no longer be reorganized
	FinalizedBlock = BlockNumberFinality("FinalizedBlock")
)

// ToBlockNum maps the finality tag to the special block numbers understood
// by the Ethereum JSON-RPC API.
func (b BlockNumberFinality) ToBlockNum() (*big.Int, error) {
	switch strings.ToUpper(string(b)) {
	case strings.ToUpper(string(LatestBlock)):
		return big.NewInt(int64(rpc.LatestBlockNumber)), nil
	case strings.ToUpper(string(SafeBlock)):
		return big.NewInt(int64(rpc.SafeBlockNumber)), nil
	case strings.ToUpper(string(PendingBlock)):
		return big.NewInt(int64(rpc.PendingBlockNumber)), nil
	case strings.ToUpper(string(FinalizedBlock)):
		return big.NewInt(int64(rpc.FinalizedBlockNumber)), nil
	default:
		return nil, fmt.Errorf("invalid block number finality %q", b)
	}
}
