package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/framebridge/framebridge/types"
)

// Clear the registry between tests
func clearRegistry() {
	mu.Lock()
	defer mu.Unlock()
	drivers = make(map[types.BackendType]Driver)
}

type stubConnector struct {
	backend types.BackendType
}

func (s *stubConnector) Connect(ctx context.Context, locator string, options types.Config) error {
	return nil
}
func (s *stubConnector) IsConnected() bool { return false }
func (s *stubConnector) GetTable(ctx context.Context, name string) (*types.Table, error) {
	return nil, types.ErrTableNotFound
}
func (s *stubConnector) Execute(ctx context.Context, query string, format types.OutputFormat) (*types.Result, error) {
	return nil, types.ErrQueryFailed
}
func (s *stubConnector) Close() error                   { return nil }
func (s *stubConnector) BackendType() types.BackendType { return s.backend }

func stubDriver(backend types.BackendType) Driver {
	return Driver{
		New:        func() types.Connector { return &stubConnector{backend: backend} },
		LocatorKey: "path",
	}
}

func TestRegisterAndGet(t *testing.T) {
	clearRegistry()

	Register("testdb", stubDriver("testdb"))

	driver, err := Get("testdb")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if driver.LocatorKey != "path" {
		t.Errorf("LocatorKey = %q, want %q", driver.LocatorKey, "path")
	}
	conn := driver.New()
	if conn.BackendType() != "testdb" {
		t.Errorf("BackendType() = %q, want %q", conn.BackendType(), "testdb")
	}
}

func TestGetUnsupported(t *testing.T) {
	clearRegistry()
	Register("testdb", stubDriver("testdb"))

	_, err := Get("clickhouse")
	if !errors.Is(err, types.ErrUnsupportedBackend) {
		t.Errorf("Get() error = %v, want ErrUnsupportedBackend", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	clearRegistry()
	Register("duplicate", stubDriver("duplicate"))

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Register() should panic for duplicate driver")
		}
	}()
	Register("duplicate", stubDriver("duplicate"))
}

func TestRegisterNilConstructorPanics(t *testing.T) {
	clearRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Register() should panic for nil constructor")
		}
	}()
	Register("broken", Driver{LocatorKey: "path"})
}

func TestSupported(t *testing.T) {
	clearRegistry()
	Register("zeta", stubDriver("zeta"))
	Register("alpha", stubDriver("alpha"))

	got := Supported()
	want := []string{"alpha", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Supported() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Supported()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
