package sqlite

import (
	_ "github.com/mattn/go-sqlite3"

	"github.com/framebridge/framebridge/drivers/base"
	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
)

func init() {
	registry.Register(types.BackendSQLite, registry.Driver{
		New:        func() types.Connector { return New() },
		LocatorKey: "path",
		ConfigExample: "  sqlite:\n" +
			"    path: app.db",
	})
}

// Connector routes to an embedded SQLite database file or :memory:
type Connector struct {
	*base.SQLConnector
}

// New creates an unconnected SQLite connector
func New() *Connector {
	return &Connector{
		SQLConnector: base.NewSQLConnector(types.BackendSQLite, "sqlite3", buildDSN, base.QuoteDouble),
	}
}

// buildDSN passes the locator straight through; go-sqlite3 understands both
// file paths and the :memory: sentinel natively
func buildDSN(locator string, options types.Config) (string, error) {
	return locator, nil
}
