package connections

import (
	"fmt"
	"sync"

	"github.com/framebridge/framebridge/types"
)

// Process-wide default manager. A convenience over passing a *Manager
// explicitly; it is never set implicitly.
var (
	globalManager *Manager
	globalMu      sync.RWMutex
)

// SetGlobal sets the process-wide default manager
func SetGlobal(m *Manager) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = m
}

// GetGlobal returns the process-wide default manager
func GetGlobal() (*Manager, error) {
	globalMu.RLock()
	defer globalMu.RUnlock()

	if globalManager == nil {
		return nil, fmt.Errorf("%w: call SetGlobal first\n\n"+
			"Example:\n"+
			"  manager, err := connections.FromYAML(ctx, \"connections.yaml\")\n"+
			"  connections.SetGlobal(manager)",
			types.ErrNotInitialized)
	}
	return globalManager, nil
}
