package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/framebridge/framebridge/connections"
	"github.com/framebridge/framebridge/logger"
	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
)

const (
	version = "0.1.0"
	usage   = `framebridge CLI - Route source URIs to analytic backends

Usage:
  framebridge <command> [flags]

Commands:
  parse <uri>       Parse a source URI and print (backend, database, table)
  backends          List the registered backend drivers
  table             Show the columns of the table a source URI points at
  query             Run a query against the backend a source URI routes to
  version           Show version information

Flags:
  --config      Path to the connections YAML file (default: ./connections.yaml)
                Maps backend names to option mappings, for example:
                  duckdb:
                    path: analytics.db
                  bigquery:
                    project_id: ${GCP_PROJECT}

  --source      Source URI selecting backend, database and table
                Examples:
                - duckdb://analytics.db/events
                - bigquery://project.dataset.table

  --sql         Query text for the query command

  --format      Output format: records|columnar (default: records)

  --log-level   Log verbosity: debug|info|warn|error|none (default: warn)

Examples:
  framebridge parse duckdb://data/analytics/prod.db/events
  framebridge table --config connections.yaml --source duckdb://analytics.db/events
  framebridge query --config connections.yaml --source duckdb://analytics.db/events \
      --sql "SELECT count(*) AS n FROM events"
`
)

func main() {
	var (
		configPath string
		source     string
		sqlText    string
		format     string
		logLevel   string
	)

	flag.StringVar(&configPath, "config", "./connections.yaml", "Path to connections YAML file")
	flag.StringVar(&source, "source", "", "Source URI")
	flag.StringVar(&sqlText, "sql", "", "Query text")
	flag.StringVar(&format, "format", "records", "Output format: records|columnar")
	flag.StringVar(&logLevel, "log-level", "warn", "Log verbosity")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(0)
	}

	command := os.Args[1]

	switch command {
	case "version":
		fmt.Printf("framebridge v%s\n", version)
		return
	case "help", "--help", "-h":
		flag.Usage()
		return
	}

	flag.CommandLine.Parse(os.Args[2:])

	l := logger.NewDefaultLogger("framebridge")
	l.SetLevel(logger.ParseLogLevel(logLevel))
	logger.SetGlobalLogger(l)

	ctx := context.Background()
	switch command {
	case "parse":
		args := flag.Args()
		if len(args) < 1 {
			log.Fatal("Error: source URI required\nUsage: framebridge parse <uri>")
		}
		runParse(args[0])
	case "backends":
		fmt.Println(strings.Join(registry.Supported(), "\n"))
	case "table":
		requireSource(source)
		runTable(ctx, configPath, source)
	case "query":
		requireSource(source)
		if sqlText == "" {
			log.Fatal("Error: --sql flag is required for query")
		}
		runQuery(ctx, configPath, source, sqlText, types.OutputFormat(format))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func requireSource(source string) {
	if source == "" {
		log.Fatal("Error: --source flag is required")
	}
}

func runParse(uri string) {
	ref, err := connections.ParseSourceURI(uri)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("backend:  %s\ndatabase: %s\ntable:    %s\n", ref.Backend, ref.Database, ref.Table)
}

func loadManager(ctx context.Context, configPath string) *connections.Manager {
	manager, err := connections.FromYAML(ctx, configPath)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return manager
}

func runTable(ctx context.Context, configPath, source string) {
	ref, err := connections.ParseSourceURI(source)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	manager := loadManager(ctx, configPath)
	defer manager.CloseAll()

	conn, err := manager.GetConnection(ref.Backend)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	table, err := conn.GetTable(ctx, ref.Table)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("%s (%s)\n", table.Name, table.Backend)
	for _, col := range table.Columns {
		fmt.Printf("  %-24s %s\n", col.Name, col.Type)
	}
}

func runQuery(ctx context.Context, configPath, source, sqlText string, format types.OutputFormat) {
	manager := loadManager(ctx, configPath)
	defer manager.CloseAll()

	conn, err := manager.GetConnectionForSource(source)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	result, err := conn.Execute(ctx, sqlText, format)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	printResult(result, format)
}

func printResult(result *types.Result, format types.OutputFormat) {
	fmt.Println(strings.Join(result.Columns, "\t"))
	switch format {
	case types.FormatColumnar:
		for _, col := range result.Columns {
			fmt.Printf("%s: %v\n", col, result.Vectors[col])
		}
	default:
		for _, record := range result.Records {
			values := make([]string, len(result.Columns))
			for i, col := range result.Columns {
				values[i] = fmt.Sprintf("%v", record[col])
			}
			fmt.Println(strings.Join(values, "\t"))
		}
	}
	fmt.Printf("(%d rows)\n", result.Len())
}
