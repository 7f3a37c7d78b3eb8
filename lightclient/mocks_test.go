package lightclient

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/tinoh9/beerus/etherman"
	"github.com/tinoh9/beerus/starknet"
)

// EthereumMock is a mock implementation of Ethereumer.
type EthereumMock struct {
	mock.Mock
}

func NewEthereumMock(t *testing.T) *EthereumMock {
	t.Helper()
	m := &EthereumMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EthereumMock) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *EthereumMock) StarknetStateRoot(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	var root *big.Int
	if args.Get(0) != nil {
		root = args.Get(0).(*big.Int)
	}
	return root, args.Error(1)
}

func (m *EthereumMock) StarknetLastProvenBlock(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *EthereumMock) Call(ctx context.Context, opts etherman.CallOpts, finality etherman.BlockNumberFinality) ([]byte, error) {
	args := m.Called(ctx, opts, finality)
	var res []byte
	if args.Get(0) != nil {
		res = args.Get(0).([]byte)
	}
	return res, args.Error(1)
}

// StarknetMock is a mock implementation of Starkneter.
type StarknetMock struct {
	mock.Mock
}

func NewStarknetMock(t *testing.T) *StarknetMock {
	t.Helper()
	m := &StarknetMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StarknetMock) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *StarknetMock) GetBlockWithTxs(ctx context.Context, blockID starknet.BlockID) (*starknet.BlockWithTxs, error) {
	args := m.Called(ctx, blockID)
	var block *starknet.BlockWithTxs
	if args.Get(0) != nil {
		block = args.Get(0).(*starknet.BlockWithTxs)
	}
	return block, args.Error(1)
}

func (m *StarknetMock) GetStorageAt(ctx context.Context, contractAddress, key *starknet.Felt, blockNumber uint64) (*starknet.Felt, error) {
	args := m.Called(ctx, contractAddress, key, blockNumber)
	var value *starknet.Felt
	if args.Get(0) != nil {
		value = args.Get(0).(*starknet.Felt)
	}
	return value, args.Error(1)
}

func (m *StarknetMock) Call(ctx context.Context, call starknet.FunctionCall, blockNumber uint64) ([]*starknet.Felt, error) {
	args := m.Called(ctx, call, blockNumber)
	var result []*starknet.Felt
	if args.Get(0) != nil {
		result = args.Get(0).([]*starknet.Felt)
	}
	return result, args.Error(1)
}

func (m *StarknetMock) EstimateFee(ctx context.Context, tx starknet.BroadcastedTransaction, blockID starknet.BlockID) (*starknet.FeeEstimate, error) {
	args := m.Called(ctx, tx, blockID)
	var estimate *starknet.FeeEstimate
	if args.Get(0) != nil {
		estimate = args.Get(0).(*starknet.FeeEstimate)
	}
	return estimate, args.Error(1)
}

func (m *StarknetMock) GetNonce(ctx context.Context, blockNumber uint64, contractAddress *starknet.Felt) (*starknet.Felt, error) {
	args := m.Called(ctx, blockNumber, contractAddress)
	var nonce *starknet.Felt
	if args.Get(0) != nil {
		nonce = args.Get(0).(*starknet.Felt)
	}
	return nonce, args.Error(1)
}

func (m *StarknetMock) GetTransactionReceipt(ctx context.Context, txHash *starknet.Felt) (*starknet.TransactionReceipt, error) {
	args := m.Called(ctx, txHash)
	var receipt *starknet.TransactionReceipt
	if args.Get(0) != nil {
		receipt = args.Get(0).(*starknet.TransactionReceipt)
	}
	return receipt, args.Error(1)
}

func (m *StarknetMock) GetTransactionByHash(ctx context.Context, txHash *starknet.Felt) (starknet.Transaction, error) {
	args := m.Called(ctx, txHash)
	var tx starknet.Transaction
	if args.Get(0) != nil {
		tx = args.Get(0).(starknet.Transaction)
	}
	return tx, args.Error(1)
}
