package bigquery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/framebridge/framebridge/drivers/base"
	"github.com/framebridge/framebridge/logger"
	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
)

func init() {
	registry.Register(types.BackendBigQuery, registry.Driver{
		New:        func() types.Connector { return New() },
		LocatorKey: "project_id",
		ConfigExample: "  bigquery:\n" +
			"    project_id: your-project-id",
	})
}

// Connector routes to a BigQuery project. Authentication uses Application
// Default Credentials unless a credentials file is configured.
type Connector struct {
	client    *bigquery.Client
	projectID string
	datasetID string
}

// New creates an unconnected BigQuery connector
func New() *Connector {
	return &Connector{}
}

// Connect creates the BigQuery client for the given project. The locator is
// the GCP project ID. Recognized options: dataset_id (default dataset for
// queries), credentials_file, endpoint.
func (c *Connector) Connect(ctx context.Context, locator string, options types.Config) error {
	var opts []option.ClientOption
	if credFile, ok := options.GetString("credentials_file"); ok {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}
	if endpoint, ok := options.GetString("endpoint"); ok {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	client, err := bigquery.NewClient(ctx, locator, opts...)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "credentials") || strings.Contains(msg, "authentication") {
			return fmt.Errorf("%w: BigQuery Application Default Credentials not found\n\n"+
				"To fix this, run:\n"+
				"  gcloud auth application-default login\n\n"+
				"Or set GOOGLE_APPLICATION_CREDENTIALS:\n"+
				"  export GOOGLE_APPLICATION_CREDENTIALS=/path/to/credentials.json",
				types.ErrConnectionFailed)
		}
		return fmt.Errorf("%w: BigQuery connection failed for project %q: %v", types.ErrConnectionFailed, locator, err)
	}

	if c.client != nil {
		c.client.Close()
	}
	c.client = client
	c.projectID = locator
	if datasetID, ok := options.GetString("dataset_id"); ok {
		c.datasetID = datasetID
	}
	logger.Debug("connected to bigquery (project %s)", locator)
	return nil
}

// IsConnected reports whether the handle holds a live client
func (c *Connector) IsConnected() bool {
	return c.client != nil
}

// GetTable resolves a dataset-qualified table and returns its reference with
// column metadata. A project.dataset.table name is reduced to dataset.table
// by dropping the leading project segment.
func (c *Connector) GetTable(ctx context.Context, name string) (*types.Table, error) {
	if !c.IsConnected() {
		return nil, types.NotConnectedError(types.BackendBigQuery)
	}

	reduced, err := ReduceTableName(name)
	if err != nil {
		return nil, err
	}

	datasetID, tableID, _ := strings.Cut(reduced, ".")
	md, err := c.client.Dataset(datasetID).Table(tableID).Metadata(ctx)
	if err != nil {
		if classified := base.Classify(types.BackendBigQuery, reduced, err); classified != err {
			return nil, classified
		}
		return nil, fmt.Errorf("%w: table %q in bigquery backend: %v", types.ErrTableNotFound, reduced, err)
	}

	columns := make([]types.Column, len(md.Schema))
	for i, field := range md.Schema {
		columns[i] = types.Column{Name: field.Name, Type: string(field.Type)}
	}

	return &types.Table{Backend: types.BackendBigQuery, Name: reduced, Columns: columns}, nil
}

// Execute runs a query and returns the result in the requested format
func (c *Connector) Execute(ctx context.Context, query string, format types.OutputFormat) (*types.Result, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q, supported formats: %s, %s",
			types.ErrInvalidFormat, format, types.FormatRecords, types.FormatColumnar)
	}
	if !c.IsConnected() {
		return nil, types.NotConnectedError(types.BackendBigQuery)
	}

	start := time.Now()
	q := c.client.Query(query)
	if c.datasetID != "" {
		q.DefaultDatasetID = c.datasetID
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: on bigquery: %v", types.ErrQueryFailed, err)
	}

	var values [][]any
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: on bigquery: %v", types.ErrQueryFailed, err)
		}
		generic := make([]any, len(row))
		for i, v := range row {
			generic[i] = v
		}
		values = append(values, generic)
	}

	columns := make([]string, len(it.Schema))
	for i, field := range it.Schema {
		columns[i] = field.Name
	}

	logger.Debug("bigquery query finished in %v (%d rows)", time.Since(start), len(values))
	return base.BuildResult(columns, values, format), nil
}

// Close releases the client. Safe to call more than once.
func (c *Connector) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	logger.Debug("closed bigquery connection (project %s)", c.projectID)
	return err
}

// BackendType returns the backend family this handle belongs to
func (c *Connector) BackendType() types.BackendType {
	return types.BackendBigQuery
}

// ReduceTableName normalizes a qualified BigQuery table name to the
// dataset.table form the client API wants. Two-part names pass through; names
// with three or more parts lose their leading project segment. Fewer than two
// parts is an error.
func ReduceTableName(name string) (string, error) {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: BigQuery table name must have at least 2 parts (dataset.table): %q\n\n"+
			"Valid formats:\n"+
			"  dataset.table\n"+
			"  project.dataset.table",
			types.ErrInvalidURI, name)
	}
	if len(parts) == 2 {
		return name, nil
	}
	return strings.Join(parts[1:], "."), nil
}
