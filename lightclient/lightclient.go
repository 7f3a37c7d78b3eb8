package lightclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tinoh9/beerus/etherman"
	"github.com/tinoh9/beerus/log"
)

// Client is the Beerus light client: it keeps a local cache of L2 block data
// fed by the untrusted StarkNet provider and anchors every answer to the
// state the trusted Ethereum side has proven.
type Client struct {
	cfg      Config
	ethereum Ethereumer
	starknet Starkneter
	core     *etherman.StarknetCore
	node     *NodeData
	logger   *log.Logger

	mu     sync.Mutex
	status SyncStatus
}

// New creates a light client over the given L1 and L2 handles.
// coreContractAddress is the L1 address of the StarkNet core contract used
// for the L1<->L2 messaging queries. The embedded core contract ABI is a
// build-time artifact; failing to parse it fails construction.
func New(cfg Config, coreContractAddress common.Address, eth Ethereumer, sn Starkneter) (*Client, error) {
	core, err := etherman.NewStarknetCore(coreContractAddress)
	if err != nil {
		return nil, err
	}
	return &Client{
		cfg:      cfg,
		ethereum: eth,
		starknet: sn,
		core:     core,
		node:     NewNodeData(),
		logger:   log.WithFields("module", "lightclient"),
		status:   NotSynced,
	}, nil
}

// Start runs the underlying light clients and spawns the sync loop. It is
// idempotent: once the client left NotSynced, further calls are no-ops. A
// failure to start either side aborts the call and leaves the client in
// NotSynced so it can be retried.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.status != NotSynced {
		c.mu.Unlock()
		return nil
	}
	c.status = Syncing
	c.mu.Unlock()

	if err := c.ethereum.Start(ctx); err != nil {
		c.setStatus(NotSynced)
		return fmt.Errorf("error starting ethereum light client: %w", err)
	}
	if err := c.starknet.Start(ctx); err != nil {
		c.setStatus(NotSynced)
		return fmt.Errorf("error starting starknet client: %w", err)
	}
	c.setStatus(Synced)

	go c.runSync(ctx)
	return nil
}

// SyncStatus returns the lifecycle state of the client.
func (c *Client) SyncStatus() SyncStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Client) setStatus(status SyncStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}
