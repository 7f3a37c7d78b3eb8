package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tinoh9/beerus/lightclient"
	"github.com/tinoh9/beerus/starknet"
)

// LightClienter is the part of the light client the RPC layer consumes.
type LightClienter interface {
	SyncStatus() lightclient.SyncStatus
	GetStorageAt(ctx context.Context, contractAddress, key *starknet.Felt) (*starknet.Felt, error)
	CallContract(ctx context.Context, contractAddress, entryPointSelector *starknet.Felt, calldata []*starknet.Felt) ([]*starknet.Felt, error)
	EstimateFee(ctx context.Context, tx starknet.BroadcastedTransaction, blockID starknet.BlockID) (*starknet.FeeEstimate, error)
	GetNonce(ctx context.Context, address *starknet.Felt) (*starknet.Felt, error)
	GetBlockHashAndNumber() (*starknet.BlockHashAndNumber, error)
	GetBlockWithTxHashes(blockID starknet.BlockID) (*starknet.BlockWithTxHashes, error)
	GetTransactionReceipt(ctx context.Context, txHash *starknet.Felt) (*starknet.TransactionReceipt, error)
	GetTransactionByHash(ctx context.Context, txHash *starknet.Felt) (starknet.Transaction, error)
	L1ToL2MessageCancellations(ctx context.Context, msgHash common.Hash) (*big.Int, error)
	L1ToL2Messages(ctx context.Context, msgHash common.Hash) (*big.Int, error)
	L2ToL1Messages(ctx context.Context, msgHash common.Hash) (*big.Int, error)
	L1ToL2MessageNonce(ctx context.Context) (*big.Int, error)
}
