package base

import (
	"errors"
	"fmt"
	"testing"

	"github.com/framebridge/framebridge/types"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		table string
		want  error
	}{
		{
			name:  "sqlite missing table",
			err:   errors.New("no such table: events"),
			table: "events",
			want:  types.ErrTableNotFound,
		},
		{
			name:  "postgres missing relation",
			err:   errors.New(`pq: relation "events" does not exist`),
			table: "events",
			want:  types.ErrTableNotFound,
		},
		{
			name:  "mysql missing table",
			err:   errors.New("Error 1146 (42S02): Table 'db.events' doesn't exist"),
			table: "events",
			want:  types.ErrTableNotFound,
		},
		{
			name:  "bigquery 404",
			err:   errors.New("googleapi: Error 404: Not found: Table proj:ds.events"),
			table: "ds.events",
			want:  types.ErrTableNotFound,
		},
		{
			name: "missing credentials",
			err:  errors.New("could not find default credentials"),
			want: types.ErrConnectionFailed,
		},
		{
			name: "authentication failure",
			err:  errors.New("pq: password authentication failed for user"),
			want: types.ErrConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(types.BackendSQLite, tt.table, tt.err)
			assert.True(t, errors.Is(got, tt.want), "Classify() = %v, want kind %v", got, tt.want)
		})
	}
}

func TestClassifyPassthrough(t *testing.T) {
	err := errors.New("syntax error near SELECT")
	got := Classify(types.BackendDuckDB, "events", err)
	assert.Equal(t, err, got, "unrecognized errors must pass through unchanged")

	assert.NoError(t, Classify(types.BackendDuckDB, "events", nil))
}

func TestClassifyConnectError(t *testing.T) {
	err := errors.New("pq: password authentication failed for user")
	got := classifyConnectError(types.BackendPostgres, err)
	assert.ErrorIs(t, got, types.ErrConnectionFailed)

	// A missing database at connect time is not a missing table
	assert.Nil(t, classifyConnectError(types.BackendPostgres, errors.New(`database "analytics" does not exist`)))
}

func TestClassifyNamesTable(t *testing.T) {
	err := fmt.Errorf("Catalog Error: Table with name events does not exist")
	got := Classify(types.BackendDuckDB, "events", err)
	assert.ErrorIs(t, got, types.ErrTableNotFound)
	assert.Contains(t, got.Error(), `"events"`)
	assert.Contains(t, got.Error(), "duckdb")
}
