package rpc

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/tinoh9/beerus/lightclient"
	"github.com/tinoh9/beerus/starknet"
)

type LightClientMock struct {
	mock.Mock
}

func NewLightClientMock(t *testing.T) *LightClientMock {
	m := &LightClientMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *LightClientMock) SyncStatus() lightclient.SyncStatus {
	args := m.Called()
	return args.Get(0).(lightclient.SyncStatus)
}

func (m *LightClientMock) GetStorageAt(ctx context.Context, contractAddress, key *starknet.Felt) (*starknet.Felt, error) {
	args := m.Called(ctx, contractAddress, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*starknet.Felt), args.Error(1)
}

func (m *LightClientMock) CallContract(ctx context.Context, contractAddress, entryPointSelector *starknet.Felt, calldata []*starknet.Felt) ([]*starknet.Felt, error) {
	args := m.Called(ctx, contractAddress, entryPointSelector, calldata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*starknet.Felt), args.Error(1)
}

func (m *LightClientMock) EstimateFee(ctx context.Context, tx starknet.BroadcastedTransaction, blockID starknet.BlockID) (*starknet.FeeEstimate, error) {
	args := m.Called(ctx, tx, blockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*starknet.FeeEstimate), args.Error(1)
}

func (m *LightClientMock) GetNonce(ctx context.Context, address *starknet.Felt) (*starknet.Felt, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*starknet.Felt), args.Error(1)
}

func (m *LightClientMock) GetBlockHashAndNumber() (*starknet.BlockHashAndNumber, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*starknet.BlockHashAndNumber), args.Error(1)
}

func (m *LightClientMock) GetBlockWithTxHashes(blockID starknet.BlockID) (*starknet.BlockWithTxHashes, error) {
	args := m.Called(blockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*starknet.BlockWithTxHashes), args.Error(1)
}

func (m *LightClientMock) GetTransactionReceipt(ctx context.Context, txHash *starknet.Felt) (*starknet.TransactionReceipt, error) {
	args := m.Called(ctx, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*starknet.TransactionReceipt), args.Error(1)
}

func (m *LightClientMock) GetTransactionByHash(ctx context.Context, txHash *starknet.Felt) (starknet.Transaction, error) {
	args := m.Called(ctx, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(starknet.Transaction), args.Error(1)
}

func (m *LightClientMock) L1ToL2MessageCancellations(ctx context.Context, msgHash common.Hash) (*big.Int, error) {
	args := m.Called(ctx, msgHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *LightClientMock) L1ToL2Messages(ctx context.Context, msgHash common.Hash) (*big.Int, error) {
	args := m.Called(ctx, msgHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *LightClientMock) L2ToL1Messages(ctx context.Context, msgHash common.Hash) (*big.Int, error) {
	args := m.Called(ctx, msgHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *LightClientMock) L1ToL2MessageNonce(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
