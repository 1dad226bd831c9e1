package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/framebridge/framebridge/types"
)

// Driver describes a registered backend driver
type Driver struct {
	// New constructs an unconnected connector for the backend
	New func() types.Connector

	// LocatorKey is the configuration key that holds the connection locator
	// ("path" for embedded databases, "project_id" for warehouses, "dsn"
	// for server databases)
	LocatorKey string

	// ConfigExample is a YAML snippet shown in errors when LocatorKey is
	// missing from a backend's configuration
	ConfigExample string
}

// driverRegistry holds all registered backend drivers
var (
	drivers = make(map[types.BackendType]Driver)
	mu      sync.RWMutex
)

// Register registers a backend driver. Driver packages call this from init(),
// so a duplicate registration is a programming error and panics.
func Register(backend types.BackendType, driver Driver) {
	mu.Lock()
	defer mu.Unlock()

	if driver.New == nil {
		panic(fmt.Sprintf("driver %s registered without a constructor", backend))
	}
	if _, exists := drivers[backend]; exists {
		panic(fmt.Sprintf("driver %s already registered", backend))
	}

	drivers[backend] = driver
}

// Get retrieves a registered backend driver
func Get(backend types.BackendType) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	driver, exists := drivers[backend]
	if !exists {
		return Driver{}, fmt.Errorf("%w: backend type %q not supported, supported backends: %s",
			types.ErrUnsupportedBackend, backend, strings.Join(supportedLocked(), ", "))
	}

	return driver, nil
}

// Supported returns the registered backend names in sorted order
func Supported() []string {
	mu.RLock()
	defer mu.RUnlock()
	return supportedLocked()
}

func supportedLocked() []string {
	names := make([]string, 0, len(drivers))
	for backend := range drivers {
		names = append(names, backend.String())
	}
	sort.Strings(names)
	return names
}
