package base

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/framebridge/framebridge/logger"
	"github.com/framebridge/framebridge/types"
)

// DSNBuilder turns a locator plus leftover options into the DSN understood by
// the backend's database/sql driver
type DSNBuilder func(locator string, options types.Config) (string, error)

// QuoteFunc quotes an identifier for use in SQL text
type QuoteFunc func(name string) string

// QuoteDouble quotes an identifier with double quotes (SQL standard)
func QuoteDouble(name string) string {
	return `"` + name + `"`
}

// QuoteBacktick quotes an identifier with backticks (MySQL)
func QuoteBacktick(name string) string {
	return "`" + name + "`"
}

// SQLConnector implements types.Connector for every backend reachable through
// database/sql. Drivers differ only in driver name, DSN construction, and
// identifier quoting.
type SQLConnector struct {
	backend    types.BackendType
	driverName string
	buildDSN   DSNBuilder
	quote      QuoteFunc
	db         *sql.DB
	locator    string
}

// NewSQLConnector creates an unconnected SQL-backed connector
func NewSQLConnector(backend types.BackendType, driverName string, buildDSN DSNBuilder, quote QuoteFunc) *SQLConnector {
	if quote == nil {
		quote = QuoteDouble
	}
	return &SQLConnector{
		backend:    backend,
		driverName: driverName,
		buildDSN:   buildDSN,
		quote:      quote,
	}
}

// Connect opens the database and verifies it with a ping. Reconnecting an
// already connected handle closes the previous connection first.
func (c *SQLConnector) Connect(ctx context.Context, locator string, options types.Config) error {
	dsn, err := c.buildDSN(locator, options)
	if err != nil {
		return fmt.Errorf("%w: %s connection failed for %q: %v", types.ErrConnectionFailed, c.backend, locator, err)
	}

	db, err := sql.Open(c.driverName, dsn)
	if err != nil {
		return fmt.Errorf("%w: %s connection failed for %q: %v", types.ErrConnectionFailed, c.backend, locator, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		if classified := classifyConnectError(c.backend, err); classified != nil {
			return classified
		}
		return fmt.Errorf("%w: %s connection failed for %q: %v", types.ErrConnectionFailed, c.backend, locator, err)
	}

	if c.db != nil {
		c.db.Close()
	}
	c.db = db
	c.locator = locator
	logger.Debug("connected to %s (%s)", c.backend, locator)
	return nil
}

// IsConnected reports whether the handle holds a live connection
func (c *SQLConnector) IsConnected() bool {
	return c.db != nil
}

// DB exposes the underlying connection pool. Nil before Connect and after
// Close.
func (c *SQLConnector) DB() *sql.DB {
	return c.db
}

// GetTable resolves a table by probing it with a zero-row select and returns
// its reference with column metadata
func (c *SQLConnector) GetTable(ctx context.Context, name string) (*types.Table, error) {
	if !c.IsConnected() {
		return nil, types.NotConnectedError(c.backend)
	}

	rows, err := c.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s WHERE 1=0", c.quote(name)))
	if err != nil {
		return nil, Classify(c.backend, name, err)
	}
	defer rows.Close()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, Classify(c.backend, name, err)
	}

	columns := make([]types.Column, len(colTypes))
	for i, ct := range colTypes {
		columns[i] = types.Column{Name: ct.Name(), Type: ct.DatabaseTypeName()}
	}

	return &types.Table{Backend: c.backend, Name: name, Columns: columns}, nil
}

// Execute runs a query and returns the result in the requested format
func (c *SQLConnector) Execute(ctx context.Context, query string, format types.OutputFormat) (*types.Result, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q, supported formats: %s, %s",
			types.ErrInvalidFormat, format, types.FormatRecords, types.FormatColumnar)
	}
	if !c.IsConnected() {
		return nil, types.NotConnectedError(c.backend)
	}

	start := time.Now()
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: on %s: %v", types.ErrQueryFailed, c.backend, err)
	}
	defer rows.Close()

	columns, values, err := scanAll(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: on %s: %v", types.ErrQueryFailed, c.backend, err)
	}

	logger.Debug("%s query finished in %v (%d rows)", c.backend, time.Since(start), len(values))
	return BuildResult(columns, values, format), nil
}

// Close releases the connection. Safe to call more than once.
func (c *SQLConnector) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	logger.Debug("closed %s connection (%s)", c.backend, c.locator)
	return err
}

// BackendType returns the backend family this handle belongs to
func (c *SQLConnector) BackendType() types.BackendType {
	return c.backend
}

// scanAll drains the row set into generic values, normalizing []byte to
// string so results are printable and comparable
func scanAll(rows *sql.Rows) ([]string, [][]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var values [][]any
	for rows.Next() {
		row := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range row {
			ptrs[i] = &row[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		for i, v := range row {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			}
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return columns, values, nil
}

// BuildResult shapes scanned values into the requested output container
func BuildResult(columns []string, values [][]any, format types.OutputFormat) *types.Result {
	result := &types.Result{Columns: columns}

	switch format {
	case types.FormatColumnar:
		result.Vectors = make(map[string][]any, len(columns))
		for i, col := range columns {
			vec := make([]any, len(values))
			for j, row := range values {
				vec[j] = row[i]
			}
			result.Vectors[col] = vec
		}
	default:
		result.Records = make([]map[string]any, len(values))
		for j, row := range values {
			record := make(map[string]any, len(columns))
			for i, col := range columns {
				record[col] = row[i]
			}
			result.Records[j] = record
		}
	}

	return result
}
