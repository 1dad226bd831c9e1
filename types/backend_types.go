package types

import "fmt"

// BackendType identifies a backend driver family
// It's defined as a string to allow extensibility for new backends
type BackendType string

// Well-known backend types (for convenience and documentation)
const (
	BackendDuckDB   BackendType = "duckdb"
	BackendBigQuery BackendType = "bigquery"
	BackendSQLite   BackendType = "sqlite"
	BackendPostgres BackendType = "postgres"
	BackendMySQL    BackendType = "mysql"
)

// String returns the string representation of the backend type
func (b BackendType) String() string {
	return string(b)
}

// ParseBackendType parses a string into a BackendType
// Any non-empty string is accepted so new backends can be addressed before
// their driver is linked in; resolution against the registry happens later
func ParseBackendType(s string) (BackendType, error) {
	if s == "" {
		return "", fmt.Errorf("backend type cannot be empty")
	}
	return BackendType(s), nil
}

// SourceRef is the parsed form of a source URI: which backend to route to,
// which database (or project) to address, and which table to read
type SourceRef struct {
	Backend  BackendType
	Database string
	Table    string
}

// String returns the source reference in URI form
func (r SourceRef) String() string {
	return fmt.Sprintf("%s://%s/%s", r.Backend, r.Database, r.Table)
}
