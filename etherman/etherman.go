package etherman

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/tinoh9/beerus/log"
)

type ethereumClient interface {
	ethereum.ChainIDReader
	ethereum.ContractCaller
}

// Client reads the StarkNet core contract on Ethereum. It is the root of
// trust of the light client: the state root and proven block number it
// returns are what every L2 answer gets anchored to.
//
// The struct is immutable after construction and the underlying ethclient is
// safe for concurrent use, so a Client may be shared across goroutines
// without external locking.
type Client struct {
	EthClient ethereumClient
	Core      *StarknetCore

	logger *log.Logger
}

// NewClient creates an L1 client for the configured node and core contract.
func NewClient(cfg Config) (*Client, error) {
	ethClient, err := ethclient.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", cfg.URL, err)
	}
	core, err := NewStarknetCore(cfg.CoreContractAddress)
	if err != nil {
		return nil, err
	}
	return &Client{
		EthClient: ethClient,
		Core:      core,
		logger:    log.WithFields("module", "etherman"),
	}, nil
}

// Start checks connectivity against the configured node.
func (c *Client) Start(ctx context.Context) error {
	chainID, err := c.EthClient.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("error getting L1 chain id: %w", err)
	}
	c.logger.Infof("connected to L1 chain %d", chainID)
	return nil
}

// StarknetStateRoot returns the L2 state root the core contract holds for
// the last proven block.
func (c *Client) StarknetStateRoot(ctx context.Context) (*big.Int, error) {
	res, err := c.call(ctx, "stateRoot", FinalizedBlock)
	if err != nil {
		return nil, err
	}
	return DecodeUint256(res), nil
}

// StarknetLastProvenBlock returns the number of the last L2 block proven on
// L1.
func (c *Client) StarknetLastProvenBlock(ctx context.Context) (uint64, error) {
	res, err := c.call(ctx, "stateBlockNumber", FinalizedBlock)
	if err != nil {
		return 0, err
	}
	return DecodeUint256(res).Uint64(), nil
}

// Call executes an encoded read-only call against L1 at the given finality.
func (c *Client) Call(ctx context.Context, opts CallOpts, finality BlockNumberFinality) ([]byte, error) {
	blockNum, err := finality.ToBlockNum()
	if err != nil {
		return nil, err
	}
	return c.EthClient.CallContract(ctx, ethereum.CallMsg{
		To:   &opts.To,
		Data: opts.Data,
	}, blockNum)
}

func (c *Client) call(ctx context.Context, method string, finality BlockNumberFinality) ([]byte, error) {
	opts, err := c.Core.EncodedCall(method)
	if err != nil {
		return nil, err
	}
	res, err := c.Call(ctx, opts, finality)
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", method, err)
	}
	return res, nil
}
