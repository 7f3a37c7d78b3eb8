package lightclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tinoh9/beerus/etherman"
	"github.com/tinoh9/beerus/starknet"
)

// GetStorageAt returns a contract storage slot, anchored at the last block
// L1 has proven rather than whatever the provider reports as latest.
func (c *Client) GetStorageAt(ctx context.Context, contractAddress, key *starknet.Felt) (*starknet.Felt, error) {
	lastProven, err := c.ethereum.StarknetLastProvenBlock(ctx)
	if err != nil {
		return nil, err
	}
	return c.starknet.GetStorageAt(ctx, contractAddress, key, lastProven)
}

// CallContract executes a view function at the last proven block. The result
// itself is untrusted: StarkNet exposes no access list, so the execution
// cannot be checked against the anchored state.
func (c *Client) CallContract(ctx context.Context, contractAddress, entryPointSelector *starknet.Felt, calldata []*starknet.Felt) ([]*starknet.Felt, error) {
	lastProven, err := c.ethereum.StarknetLastProvenBlock(ctx)
	if err != nil {
		return nil, err
	}
	return c.starknet.Call(ctx, starknet.FunctionCall{
		ContractAddress:    contractAddress,
		EntryPointSelector: entryPointSelector,
		Calldata:           calldata,
	}, lastProven)
}

// EstimateFee delegates a fee estimation to the provider.
func (c *Client) EstimateFee(ctx context.Context, tx starknet.BroadcastedTransaction, blockID starknet.BlockID) (*starknet.FeeEstimate, error) {
	return c.starknet.EstimateFee(ctx, tx, blockID)
}

// GetNonce returns the nonce of an address at the last proven block.
func (c *Client) GetNonce(ctx context.Context, address *starknet.Felt) (*starknet.Felt, error) {
	lastProven, err := c.ethereum.StarknetLastProvenBlock(ctx)
	if err != nil {
		return nil, err
	}
	return c.starknet.GetNonce(ctx, lastProven, address)
}

// L1ToL2MessageCancellations returns the timestamp at which an L1 to L2
// message matching msgHash was cancelled, or 0 if it never was.
func (c *Client) L1ToL2MessageCancellations(ctx context.Context, msgHash common.Hash) (*big.Int, error) {
	return c.callCore(ctx, "l1ToL2MessageCancellations", [32]byte(msgHash))
}

// L1ToL2Messages returns msg_fee+1 for the pending L1 to L2 message matching
// msgHash, or 0 if there is none.
func (c *Client) L1ToL2Messages(ctx context.Context, msgHash common.Hash) (*big.Int, error) {
	return c.callCore(ctx, "l1ToL2Messages", [32]byte(msgHash))
}

// L2ToL1Messages returns msg_fee+1 for the pending L2 to L1 message matching
// msgHash, or 0 if there is none.
func (c *Client) L2ToL1Messages(ctx context.Context, msgHash common.Hash) (*big.Int, error) {
	return c.callCore(ctx, "l2ToL1Messages", [32]byte(msgHash))
}

// L1ToL2MessageNonce returns the nonce of the L1 to L2 message bridge.
func (c *Client) L1ToL2MessageNonce(ctx context.Context) (*big.Int, error) {
	return c.callCore(ctx, "l1ToL2MessageNonce")
}

func (c *Client) callCore(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	opts, err := c.core.EncodedCall(method, args...)
	if err != nil {
		return nil, err
	}
	res, err := c.ethereum.Call(ctx, opts, etherman.LatestBlock)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", method, err)
	}
	return etherman.DecodeUint256(res), nil
}

// GetBlockHashAndNumber returns the hash and number of the cached head
// block. It fails with ErrBlockNotFound while the cache is empty instead of
// handing out zero values.
func (c *Client) GetBlockHashAndNumber() (*starknet.BlockHashAndNumber, error) {
	snap := c.node.Snapshot()
	block, ok := snap.Payload[snap.BlockNumber]
	if !ok {
		return nil, ErrBlockNotFound
	}
	return &starknet.BlockHashAndNumber{
		BlockHash:   block.BlockHash,
		BlockNumber: block.BlockNumber,
	}, nil
}

// GetTransactionReceipt returns the receipt of a transaction, but only after
// checking the cache is still in line with the L1-verified state root. A
// mismatch means the local view is stale and is surfaced instead of served.
func (c *Client) GetTransactionReceipt(ctx context.Context, txHash *starknet.Felt) (*starknet.TransactionReceipt, error) {
	if err := c.checkFreshness(ctx); err != nil {
		return nil, err
	}
	return c.starknet.GetTransactionReceipt(ctx, txHash)
}

// GetBlockWithTxHashes resolves blockID against the cache and projects the
// block down to its transaction hashes. Pending-tag lookups search the cache
// for a pending block; since pending blocks are never cached, they always
// fail with ErrBlockNotFound.
func (c *Client) GetBlockWithTxHashes(blockID starknet.BlockID) (*starknet.BlockWithTxHashes, error) {
	snap := c.node.Snapshot()
	block, err := resolveBlock(snap, blockID)
	if err != nil {
		return nil, err
	}
	return block.WithTxHashes(), nil
}

// GetTransactionByHash returns a transaction straight from the provider.
// There is no trust anchoring here: the data is returned as supplied.
func (c *Client) GetTransactionByHash(ctx context.Context, txHash *starknet.Felt) (starknet.Transaction, error) {
	return c.starknet.GetTransactionByHash(ctx, txHash)
}

func (c *Client) checkFreshness(ctx context.Context) error {
	snap := c.node.Snapshot()
	verifiedRoot, err := c.ethereum.StarknetStateRoot(ctx)
	if err != nil {
		return err
	}
	rootFelt, err := starknet.BigToFelt(verifiedRoot)
	if err != nil {
		return fmt.Errorf("invalid verified state root: %w", err)
	}
	if snap.StateRoot != rootFelt.Hex() {
		return fmt.Errorf("%w: cached %s, verified %s", ErrStateRootMismatch, snap.StateRoot, rootFelt.Hex())
	}
	return nil
}

func resolveBlock(snap NodeSnapshot, blockID starknet.BlockID) (*starknet.BlockWithTxs, error) {
	switch {
	case blockID.Number != nil:
		if block, ok := snap.Payload[*blockID.Number]; ok {
			return block, nil
		}
		return nil, fmt.Errorf("%w: number %d", ErrBlockNotFound, *blockID.Number)
	case blockID.Hash != nil:
		for _, block := range snap.Payload {
			if block.BlockHash != nil && block.BlockHash.Eq(blockID.Hash) {
				return block, nil
			}
		}
		return nil, fmt.Errorf("%w: hash %s", ErrBlockNotFound, blockID.Hash.Hex())
	case blockID.Tag == starknet.BlockTagLatest:
		if block, ok := snap.Payload[snap.BlockNumber]; ok {
			return block, nil
		}
		return nil, ErrBlockNotFound
	case blockID.Tag == starknet.BlockTagPending:
		for _, block := range snap.Payload {
			if block.Pending() {
				return block, nil
			}
		}
		return nil, fmt.Errorf("%w: no pending block cached", ErrBlockNotFound)
	}
	return nil, starknet.ErrInvalidBlockID
}
