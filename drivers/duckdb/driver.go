package duckdb

import (
	"net/url"

	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/framebridge/framebridge/drivers/base"
	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
)

func init() {
	registry.Register(types.BackendDuckDB, registry.Driver{
		New:        func() types.Connector { return New() },
		LocatorKey: "path",
		ConfigExample: "  duckdb:\n" +
			"    path: analytics.db",
	})
}

// Connector routes to an embedded DuckDB database, either a file on disk or
// the :memory: sentinel
type Connector struct {
	*base.SQLConnector
}

// New creates an unconnected DuckDB connector
func New() *Connector {
	return &Connector{
		SQLConnector: base.NewSQLConnector(types.BackendDuckDB, "duckdb", buildDSN, base.QuoteDouble),
	}
}

// buildDSN maps the locator onto the go-duckdb DSN. An empty DSN opens an
// in-memory database, so the :memory: sentinel translates to "".
func buildDSN(locator string, options types.Config) (string, error) {
	if locator == ":memory:" {
		locator = ""
	}

	params := url.Values{}
	if readOnly, ok := options.GetBool("read_only"); ok && readOnly {
		params.Set("access_mode", "read_only")
	}

	if len(params) == 0 {
		return locator, nil
	}
	return locator + "?" + params.Encode(), nil
}
