package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/tinoh9/beerus/lightclient"
	"github.com/tinoh9/beerus/log"
	"github.com/tinoh9/beerus/starknet"
)

const (
	// STARKNET is the namespace of the starknet service
	STARKNET  = "starknet"
	meterName = "github.com/tinoh9/beerus/rpc"
)

// StarknetEndpoints contains implementations for the "starknet" RPC
// endpoints. Every answer is served by the light client, so it is anchored
// to the last L1-proven block or cross-checked against the verified root.
type StarknetEndpoints struct {
	logger      *log.Logger
	meter       metric.Meter
	readTimeout time.Duration
	client      LightClienter
}

// NewStarknetEndpoints returns StarknetEndpoints
func NewStarknetEndpoints(
	logger *log.Logger,
	readTimeout time.Duration,
	client LightClienter,
) *StarknetEndpoints {
	meter := otel.Meter(meterName)
	return &StarknetEndpoints{
		logger:      logger,
		meter:       meter,
		readTimeout: readTimeout,
		client:      client,
	}
}

// GetStorageAt returns the storage value of the given contract slot at the
// last proven block.
func (s *StarknetEndpoints) GetStorageAt(contractAddress, key *starknet.Felt) (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "get_storage_at")

	value, err := s.client.GetStorageAt(ctx, contractAddress, key)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get storage, error: %s", err))
	}
	return value, nil
}

// Call executes a view function at the last proven block. The result is not
// independently provable.
func (s *StarknetEndpoints) Call(call starknet.FunctionCall) (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "call")

	result, err := s.client.CallContract(ctx, call.ContractAddress, call.EntryPointSelector, call.Calldata)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to call contract, error: %s", err))
	}
	return result, nil
}

// EstimateFee estimates the fee of the given transaction.
func (s *StarknetEndpoints) EstimateFee(tx starknet.BroadcastedTransaction, blockID starknet.BlockID) (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "estimate_fee")

	estimate, err := s.client.EstimateFee(ctx, tx, blockID)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to estimate fee, error: %s", err))
	}
	return estimate, nil
}

// GetNonce returns the nonce of the given address at the last proven block.
func (s *StarknetEndpoints) GetNonce(address *starknet.Felt) (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "get_nonce")

	nonce, err := s.client.GetNonce(ctx, address)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get nonce, error: %s", err))
	}
	return nonce, nil
}

// BlockHashAndNumber returns the hash and number of the cached head block.
func (s *StarknetEndpoints) BlockHashAndNumber() (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "block_hash_and_number")

	result, err := s.client.GetBlockHashAndNumber()
	if err != nil {
		if errors.Is(err, lightclient.ErrBlockNotFound) {
			return nil, rpc.NewRPCError(rpc.DefaultErrorCode, err.Error())
		}
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get block hash and number, error: %s", err))
	}
	return result, nil
}

// GetBlockWithTxHashes returns the cached block identified by blockID with
// its transaction hashes.
func (s *StarknetEndpoints) GetBlockWithTxHashes(blockID starknet.BlockID) (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "get_block_with_tx_hashes")

	block, err := s.client.GetBlockWithTxHashes(blockID)
	if err != nil {
		if errors.Is(err, lightclient.ErrBlockNotFound) {
			return nil, rpc.NewRPCError(rpc.DefaultErrorCode, err.Error())
		}
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get block, error: %s", err))
	}
	return block, nil
}

// GetTransactionReceipt returns the receipt of the given transaction, after
// checking the cache against the L1-verified state root.
func (s *StarknetEndpoints) GetTransactionReceipt(txHash *starknet.Felt) (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "get_transaction_receipt")

	receipt, err := s.client.GetTransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get transaction receipt, error: %s", err))
	}
	return receipt, nil
}

// GetTransactionByHash returns the provider's view of the given transaction.
func (s *StarknetEndpoints) GetTransactionByHash(txHash *starknet.Felt) (interface{}, rpc.Error) {
	ctx, cancel := s.readCtx()
	defer cancel()
	s.count(ctx, "get_transaction_by_hash")

	tx, err := s.client.GetTransactionByHash(ctx, txHash)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("failed to get transaction, error: %s", err))
	}
	return tx, nil
}

func (s *StarknetEndpoints) readCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.readTimeout)
}

func (s *StarknetEndpoints) count(ctx context.Context, name string) {
	counter, err := s.meter.Int64Counter(name)
	if err != nil {
		s.logger.Warnf("failed to create %s counter: %s", name, err)
		return
	}
	counter.Add(ctx, 1)
}
