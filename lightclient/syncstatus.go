package lightclient

// SyncStatus is the lifecycle state of the light client. It only moves
// forward, and only inside Start.
type SyncStatus int

const (
	// NotSynced initial state, nothing running
	NotSynced SyncStatus = iota
	// Syncing underlying light clients are being started
	Syncing
	// Synced sync loop running
	Synced
)

func (s SyncStatus) String() string {
	switch s {
	case NotSynced:
		return "NotSynced"
	case Syncing:
		return "Syncing"
	case Synced:
		return "Synced"
	}
	return "Unknown"
}
