package lightclient

import (
	"github.com/tinoh9/beerus/config/types"
)

// Config holds the sync loop settings.
type Config struct {
	// PollInterval is the delay between sync loop iterations. L2 block
	// production is slow relative to this, so a coarse value is fine.
	PollInterval types.Duration `mapstructure:"PollInterval"`
	// RetainBlocks caps how many blocks below the head stay cached.
	// 0 disables eviction and retains every accepted block.
	RetainBlocks uint64 `mapstructure:"RetainBlocks"`
}
