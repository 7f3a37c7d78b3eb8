package lightclient

import (
	"sync"

	"github.com/tinoh9/beerus/starknet"
)

// NodeData is the in-memory view of the highest finalized L2 block observed
// so far. It is written only by the sync loop and read by every query, so
// all access goes through the embedded reader/writer lock.
//
// Invariants: BlockNumber equals the highest key of Payload (0 while empty)
// and StateRoot is the new_root of the block stored under BlockNumber.
type NodeData struct {
	mu sync.RWMutex

	blockNumber uint64
	stateRoot   string
	payload     map[uint64]*starknet.BlockWithTxs
}

// NodeSnapshot is a point-in-time copy of the cache, safe to use without
// holding the lock. Blocks are shared by pointer; they are immutable once
// cached.
type NodeSnapshot struct {
	BlockNumber uint64
	StateRoot   string
	Payload     map[uint64]*starknet.BlockWithTxs
}

// NewNodeData creates an empty cache.
func NewNodeData() *NodeData {
	return &NodeData{
		payload: make(map[uint64]*starknet.BlockWithTxs),
	}
}

// AcceptBlock merges block into the cache and reports whether it was
// accepted. A block is accepted only if it is finalized, numbered above the
// cached head, and not the number-zero sentinel. Anything else is a no-op,
// so out-of-order late delivery of older blocks cannot move the head
// backwards.
//
// retain caps how many blocks below the head are kept; 0 keeps everything.
func (n *NodeData) AcceptBlock(block *starknet.BlockWithTxs, retain uint64) bool {
	if block.Pending() {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if block.BlockNumber == 0 || block.BlockNumber <= n.blockNumber {
		return false
	}
	n.blockNumber = block.BlockNumber
	n.stateRoot = block.NewRoot.Hex()
	n.payload[block.BlockNumber] = block
	if retain > 0 && n.blockNumber > retain {
		for num := range n.payload {
			if num <= n.blockNumber-retain {
				delete(n.payload, num)
			}
		}
	}
	return true
}

// Snapshot returns a point-in-time copy of the cache.
func (n *NodeData) Snapshot() NodeSnapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()
	payload := make(map[uint64]*starknet.BlockWithTxs, len(n.payload))
	for num, block := range n.payload {
		payload[num] = block
	}
	return NodeSnapshot{
		BlockNumber: n.blockNumber,
		StateRoot:   n.stateRoot,
		Payload:     payload,
	}
}
