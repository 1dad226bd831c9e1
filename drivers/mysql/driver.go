package mysql

import (
	_ "github.com/go-sql-driver/mysql"

	"github.com/framebridge/framebridge/drivers/base"
	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
)

func init() {
	registry.Register(types.BackendMySQL, registry.Driver{
		New:        func() types.Connector { return New() },
		LocatorKey: "dsn",
		ConfigExample: "  mysql:\n" +
			"    dsn: user:pass@tcp(localhost:3306)/analytics",
	})
}

// Connector routes to a MySQL server
type Connector struct {
	*base.SQLConnector
}

// New creates an unconnected MySQL connector
func New() *Connector {
	return &Connector{
		SQLConnector: base.NewSQLConnector(types.BackendMySQL, "mysql", buildDSN, base.QuoteBacktick),
	}
}

// buildDSN passes the locator through in go-sql-driver DSN form
func buildDSN(locator string, options types.Config) (string, error) {
	return locator, nil
}
