package connections

// Import all default drivers to register them automatically
// This makes it convenient for users to call FromYAML without manually
// importing each driver package
import (
	_ "github.com/framebridge/framebridge/drivers/bigquery"
	_ "github.com/framebridge/framebridge/drivers/duckdb"
	_ "github.com/framebridge/framebridge/drivers/mysql"
	_ "github.com/framebridge/framebridge/drivers/postgres"
	_ "github.com/framebridge/framebridge/drivers/sqlite"
)
