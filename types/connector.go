package types

import (
	"context"
	"fmt"
)

// OutputFormat selects the container shape Execute returns
type OutputFormat string

const (
	// FormatRecords returns results row-major, one map per row
	FormatRecords OutputFormat = "records"
	// FormatColumnar returns results column-major, one vector per column
	FormatColumnar OutputFormat = "columnar"
)

// Valid reports whether the format is one of the supported output formats
func (f OutputFormat) Valid() bool {
	return f == FormatRecords || f == FormatColumnar
}

// Column describes one column of a table or result set
type Column struct {
	Name string
	Type string
}

// Table is a resolved reference to a table in a connected backend.
// Name is the backend-native table name (simple name for embedded databases,
// dataset-qualified for warehouses).
type Table struct {
	Backend BackendType
	Name    string
	Columns []Column
}

// Result holds the output of an executed query. Columns preserves the
// backend's column order. Exactly one of Records or Vectors is populated,
// depending on the OutputFormat passed to Execute.
type Result struct {
	Columns []string
	Records []map[string]any
	Vectors map[string][]any
}

// Len returns the number of rows in the result
func (r *Result) Len() int {
	if r.Records != nil {
		return len(r.Records)
	}
	for _, vec := range r.Vectors {
		return len(vec)
	}
	return 0
}

// Connector is a live handle to one backend. Implementations are constructed
// unconnected by their driver factory and become usable after Connect.
//
// Connect is not guaranteed to be idempotent; calling it on an already
// connected handle may reconnect or fail depending on the backend.
// Close is idempotent and leaves IsConnected false.
type Connector interface {
	// Connect establishes the connection. The locator is backend-specific:
	// a file path or :memory: for embedded databases, a project ID for
	// warehouses, a DSN for server databases.
	Connect(ctx context.Context, locator string, options Config) error

	// IsConnected reports whether the handle holds a live connection
	IsConnected() bool

	// GetTable resolves a table by its backend-native name and returns its
	// reference with column metadata
	GetTable(ctx context.Context, name string) (*Table, error)

	// Execute runs a query and returns the result in the requested format
	Execute(ctx context.Context, query string, format OutputFormat) (*Result, error)

	// Close releases the connection. Safe to call more than once.
	Close() error

	// BackendType returns the backend family this handle belongs to
	BackendType() BackendType
}

// NotConnectedError builds the error returned by handle operations invoked
// before Connect
func NotConnectedError(backend BackendType) error {
	return fmt.Errorf("%w: not connected to %s, call Connect() first", ErrConnectionFailed, backend)
}
