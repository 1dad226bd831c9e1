package connections

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/framebridge/framebridge/logger"
	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
)

// Manager holds at most one live connector per backend and routes source
// URIs to them. Writes are guarded by a mutex; the expected usage pattern is
// still single-threaded setup followed by read-mostly routing.
type Manager struct {
	mu          sync.RWMutex
	connections map[types.BackendType]types.Connector
}

// NewManager creates an empty connection manager
func NewManager() *Manager {
	return &Manager{
		connections: make(map[types.BackendType]types.Connector),
	}
}

// AddConnection constructs a connector for the backend, connects it, and
// stores it. An existing connector for the same backend is replaced without
// being closed; callers that replace a connection close the old handle
// themselves.
func (m *Manager) AddConnection(ctx context.Context, backend types.BackendType, cfg types.Config) error {
	driver, err := registry.Get(backend)
	if err != nil {
		return err
	}

	locator, ok := cfg.GetString(driver.LocatorKey)
	if !ok {
		return fmt.Errorf("%w: missing required field %q in %s configuration\n\n"+
			"Add the required field:\n%s",
			types.ErrInvalidConfig, driver.LocatorKey, backend, driver.ConfigExample)
	}

	conn := driver.New()
	if err := conn.Connect(ctx, locator, cfg.Without(driver.LocatorKey)); err != nil {
		return err
	}

	m.mu.Lock()
	m.connections[backend] = conn
	m.mu.Unlock()

	logger.Info("registered %s connection", backend)
	return nil
}

// GetConnection returns the live connector for a backend
func (m *Manager) GetConnection(backend types.BackendType) (types.Connector, error) {
	m.mu.RLock()
	conn, ok := m.connections[backend]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no connection configured for backend %q\n\n"+
			"Add the connection to your connections.yaml:\n"+
			"  %s:\n"+
			"    # backend-specific config\n\n"+
			"Or call AddConnection:\n"+
			"  manager.AddConnection(ctx, %q, cfg)",
			types.ErrNotConfigured, backend, backend, backend)
	}
	return conn, nil
}

// GetConnectionForSource parses a source URI and returns the connector for
// its backend. The database and table parts are the caller's to use against
// the returned handle.
func (m *Manager) GetConnectionForSource(uri string) (types.Connector, error) {
	ref, err := ParseSourceURI(uri)
	if err != nil {
		return nil, err
	}
	return m.GetConnection(ref.Backend)
}

// Backends returns the backends with live connections, sorted
func (m *Manager) Backends() []types.BackendType {
	m.mu.RLock()
	defer m.mu.RUnlock()

	backends := make([]types.BackendType, 0, len(m.connections))
	for backend := range m.connections {
		backends = append(backends, backend)
	}
	sort.Slice(backends, func(i, j int) bool { return backends[i] < backends[j] })
	return backends
}

// CloseAll closes every held connector and empties the manager. Calling it
// again is a no-op.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for backend, conn := range m.connections {
		if err := conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", backend, err))
		}
	}
	m.connections = make(map[types.BackendType]types.Connector)
	return errors.Join(errs...)
}

// String returns a short description of the manager's state
func (m *Manager) String() string {
	return fmt.Sprintf("Manager(backends=%v)", m.Backends())
}
