package lightclient

import (
	"context"
	"time"

	"github.com/tinoh9/beerus/starknet"
)

// runSync drives cache freshness until ctx is cancelled. Every per-iteration
// failure is logged and swallowed; the previously cached data stays valid
// and the next tick retries from scratch.
func (c *Client) runSync(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.PollInterval.Duration)
	defer ticker.Stop()
	for {
		c.syncIteration(ctx)
		select {
		case <-ticker.C:
		case <-ctx.Done():
			c.logger.Info("sync loop stopped")
			return
		}
	}
}

func (c *Client) syncIteration(ctx context.Context) {
	stateRoot, err := c.ethereum.StarknetStateRoot(ctx)
	if err != nil {
		c.logger.Error("error reading verified state root: ", err)
		return
	}
	lastProven, err := c.ethereum.StarknetLastProvenBlock(ctx)
	if err != nil {
		c.logger.Error("error reading last proven block: ", err)
		return
	}
	c.logger.Debugf("L1 verified state root: %s, last proven block: %d", stateRoot, lastProven)

	block, err := c.starknet.GetBlockWithTxs(ctx, starknet.BlockIDFromTag(starknet.BlockTagLatest))
	if err != nil {
		c.logger.Error("error getting latest block: ", err)
		return
	}
	if block.Pending() {
		c.logger.Warn("discarding pending block")
		return
	}
	// The block number is not required to be at or below lastProven: the
	// cache may run ahead of what L1 has proven, queries anchor themselves.
	if c.node.AcceptBlock(block, c.cfg.RetainBlocks) {
		c.logger.Infof("new block added to payload: number %d, root %s", block.BlockNumber, block.NewRoot.Hex())
	} else {
		c.logger.Debugf("dropping block %d, not newer than cached head", block.BlockNumber)
	}
}
