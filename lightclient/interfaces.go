package lightclient

import (
	"context"
	"math/big"

	"github.com/tinoh9/beerus/etherman"
	"github.com/tinoh9/beerus/starknet"
)

// Ethereumer is the trusted side: an Ethereum light client able to serve
// verified reads of the StarkNet core contract.
type Ethereumer interface {
	// Start runs the underlying light client protocol.
	Start(ctx context.Context) error
	// StarknetStateRoot returns the verified L2 state root registered on L1.
	StarknetStateRoot(ctx context.Context) (*big.Int, error)
	// StarknetLastProvenBlock returns the number of the last L2 block proven
	// on L1.
	StarknetLastProvenBlock(ctx context.Context) (uint64, error)
	// Call executes an encoded read-only contract call at the given finality.
	Call(ctx context.Context, opts etherman.CallOpts, finality etherman.BlockNumberFinality) ([]byte, error)
}

// Starkneter is the untrusted side: a StarkNet node serving block and
// transaction data without independent proof.
type Starkneter interface {
	// Start runs the underlying client protocol.
	Start(ctx context.Context) error
	// GetBlockWithTxs returns a block with its full transactions. The result
	// may be a pending block.
	GetBlockWithTxs(ctx context.Context, blockID starknet.BlockID) (*starknet.BlockWithTxs, error)
	// GetStorageAt returns a contract storage slot at a block number.
	GetStorageAt(ctx context.Context, contractAddress, key *starknet.Felt, blockNumber uint64) (*starknet.Felt, error)
	// Call executes a view function at a block number.
	Call(ctx context.Context, call starknet.FunctionCall, blockNumber uint64) ([]*starknet.Felt, error)
	// EstimateFee estimates the fee of a not-yet-submitted transaction.
	EstimateFee(ctx context.Context, tx starknet.BroadcastedTransaction, blockID starknet.BlockID) (*starknet.FeeEstimate, error)
	// GetNonce returns a contract nonce at a block number.
	GetNonce(ctx context.Context, blockNumber uint64, contractAddress *starknet.Felt) (*starknet.Felt, error)
	// GetTransactionReceipt returns the receipt of a transaction.
	GetTransactionReceipt(ctx context.Context, txHash *starknet.Felt) (*starknet.TransactionReceipt, error)
	// GetTransactionByHash returns a transaction by hash.
	GetTransactionByHash(ctx context.Context, txHash *starknet.Felt) (starknet.Transaction, error)
}
