package status

import (
	"fmt"
	"time"
)

// Source resolves a server address to a status snapshot. A nil
// snapshot with a nil error means the server reported itself offline;
// a non-nil error means the lookup itself failed. Callers render both
// cases as offline.
type Source interface {
	Fetch(address string) (*Snapshot, error)
}

// NewSource selects a Source implementation by its configured kind.
func NewSource(kind, apiBaseURL string, timeout time.Duration) (Source, error) {
	switch kind {
	case "", "ping":
		return NewPinger(timeout), nil
	case "api":
		return NewAPIClient(apiBaseURL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown status source %q", kind)
	}
}
