package lightclient

import "errors"

var (
	// ErrBlockNotFound is returned when the requested block is not present
	// in the local payload cache.
	ErrBlockNotFound = errors.New("block not found")
	// ErrStateRootMismatch is returned when the cached state root diverges
	// from the L1-verified one. Serving the cache in that situation would
	// silently hand out stale data.
	ErrStateRootMismatch = errors.New("state root mismatch between cache and L1")
)
