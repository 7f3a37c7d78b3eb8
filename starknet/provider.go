package starknet

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/tinoh9/beerus/log"
)

// Provider is a StarkNet JSON-RPC client. It carries no mutable state after
// construction and is safe for concurrent use.
type Provider struct {
	cfg    Config
	rpc    *rpc.Client
	logger *log.Logger
}

// NewProvider creates a provider connected to the configured StarkNet node.
func NewProvider(cfg Config) (*Provider, error) {
	client, err := rpc.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error dialing starknet node %s: %w", cfg.URL, err)
	}
	return &Provider{
		cfg:    cfg,
		rpc:    client,
		logger: log.WithFields("module", "starknet-provider"),
	}, nil
}

// Start checks connectivity against the configured node.
func (p *Provider) Start(ctx context.Context) error {
	var chainID string
	if err := p.rpc.CallContext(ctx, &chainID, "starknet_chainId"); err != nil {
		return fmt.Errorf("error getting starknet chain id: %w", err)
	}
	p.logger.Infof("connected to starknet chain %s", chainID)
	return nil
}

// GetBlockWithTxs returns the block identified by blockID with its full
// transactions. The returned block may be pending.
func (p *Provider) GetBlockWithTxs(ctx context.Context, blockID BlockID) (*BlockWithTxs, error) {
	block := &BlockWithTxs{}
	if err := p.rpc.CallContext(ctx, block, "starknet_getBlockWithTxs", blockID); err != nil {
		return nil, err
	}
	return block, nil
}

// GetStorageAt returns the value of the storage slot key of the contract at
// the given block number.
func (p *Provider) GetStorageAt(ctx context.Context, contractAddress, key *Felt, blockNumber uint64) (*Felt, error) {
	value := &Felt{}
	err := p.rpc.CallContext(ctx, value, "starknet_getStorageAt", contractAddress, key, BlockIDFromNumber(blockNumber))
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Call executes a view function at the given block number.
func (p *Provider) Call(ctx context.Context, call FunctionCall, blockNumber uint64) ([]*Felt, error) {
	var result []*Felt
	if err := p.rpc.CallContext(ctx, &result, "starknet_call", call, BlockIDFromNumber(blockNumber)); err != nil {
		return nil, err
	}
	return result, nil
}

// EstimateFee asks the sequencer for a fee estimation of tx at blockID.
func (p *Provider) EstimateFee(ctx context.Context, tx BroadcastedTransaction, blockID BlockID) (*FeeEstimate, error) {
	estimate := &FeeEstimate{}
	if err := p.rpc.CallContext(ctx, estimate, "starknet_estimateFee", tx, blockID); err != nil {
		return nil, err
	}
	return estimate, nil
}

// GetNonce returns the nonce of the contract at the given block number.
func (p *Provider) GetNonce(ctx context.Context, blockNumber uint64, contractAddress *Felt) (*Felt, error) {
	nonce := &Felt{}
	err := p.rpc.CallContext(ctx, nonce, "starknet_getNonce", BlockIDFromNumber(blockNumber), contractAddress)
	if err != nil {
		return nil, err
	}
	return nonce, nil
}

// GetTransactionReceipt returns the receipt of the transaction with the
// given hash.
func (p *Provider) GetTransactionReceipt(ctx context.Context, txHash *Felt) (*TransactionReceipt, error) {
	receipt := &TransactionReceipt{}
	if err := p.rpc.CallContext(ctx, receipt, "starknet_getTransactionReceipt", txHash); err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetTransactionByHash returns the transaction with the given hash.
func (p *Provider) GetTransactionByHash(ctx context.Context, txHash *Felt) (Transaction, error) {
	var raw json.RawMessage
	if err := p.rpc.CallContext(ctx, &raw, "starknet_getTransactionByHash", txHash); err != nil {
		return nil, err
	}
	return UnmarshalTransaction(raw)
}
