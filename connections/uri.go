package connections

import (
	"fmt"
	"strings"

	"github.com/framebridge/framebridge/types"
)

// ParseSourceURI parses a source URI into (backend, database, table).
//
// Format: backend://database_identifier/table_name
//
// DuckDB examples:
//   - duckdb://analytics.db/events        -> (duckdb, analytics.db, events)
//   - duckdb://:memory:/events            -> (duckdb, :memory:, events)
//   - duckdb:///abs/path/db/events        -> (duckdb, /abs/path/db, events)
//
// BigQuery examples:
//   - bigquery://my-project.dataset.table -> (bigquery, my-project, dataset.table)
//   - bigquery://project/dataset.table    -> (bigquery, project, dataset.table)
//
// Unknown schemes parse with the generic last-slash rule and fail later at
// resolution time, not here.
func ParseSourceURI(uri string) (types.SourceRef, error) {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found || scheme == "" {
		return types.SourceRef{}, fmt.Errorf("%w: missing backend type in URI %q\n\n"+
			"URI must start with the backend type:\n"+
			"  duckdb://analytics.db/events\n"+
			"  bigquery://project.dataset.table",
			types.ErrInvalidURI, uri)
	}

	// Standard URI syntax ends the path at a query or fragment. Source URIs
	// carry neither, so anything after those markers is dropped.
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	if rest == "" {
		return types.SourceRef{}, fmt.Errorf("%w: empty path in URI %q, URI must include database and table",
			types.ErrInvalidURI, uri)
	}

	backend := types.BackendType(scheme)
	if backend == types.BackendBigQuery {
		return parseWarehousePath(uri, backend, rest)
	}
	return parseEmbeddedPath(uri, backend, rest)
}

// parseEmbeddedPath splits a path-style locator at its last slash. The
// database locator may itself contain slashes (directory paths), so the last
// slash separates it from the table name. Used for duckdb, the other
// embedded and server backends, and unknown schemes.
func parseEmbeddedPath(uri string, backend types.BackendType, fullPath string) (types.SourceRef, error) {
	lastSlash := strings.LastIndex(fullPath, "/")
	if lastSlash < 0 {
		return types.SourceRef{}, fmt.Errorf("%w: missing table separator '/' in URI %q\n\n"+
			"Expected format:\n"+
			"  %s://database.db/table_name",
			types.ErrInvalidURI, uri, backend)
	}

	database := fullPath[:lastSlash]
	table := fullPath[lastSlash+1:]
	if table == "" {
		return types.SourceRef{}, fmt.Errorf("%w: empty table name in URI %q, URI must include table name",
			types.ErrInvalidURI, uri)
	}

	return types.SourceRef{Backend: backend, Database: database, Table: table}, nil
}

// parseWarehousePath normalizes slashes to dots and splits into segments:
// the first is the project, the rest rejoin into the dataset-qualified table
// locator, which keeps any extra dots with the table.
func parseWarehousePath(uri string, backend types.BackendType, fullPath string) (types.SourceRef, error) {
	normalized := strings.ReplaceAll(fullPath, "/", ".")
	parts := strings.Split(normalized, ".")

	if len(parts) < 3 {
		return types.SourceRef{}, fmt.Errorf("%w: BigQuery URI must have at least 3 parts (project.dataset.table): %q\n\n"+
			"Valid formats:\n"+
			"  bigquery://project.dataset.table\n"+
			"  bigquery://project/dataset.table",
			types.ErrInvalidURI, uri)
	}
	for _, part := range parts {
		if part == "" {
			return types.SourceRef{}, fmt.Errorf("%w: empty segment in BigQuery URI %q", types.ErrInvalidURI, uri)
		}
	}

	return types.SourceRef{
		Backend:  backend,
		Database: parts[0],
		Table:    strings.Join(parts[1:], "."),
	}, nil
}
