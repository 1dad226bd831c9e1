package duckdb

import (
	"context"
	"testing"

	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		options types.Config
		want    string
	}{
		{
			name:    "file path",
			locator: "analytics.db",
			want:    "analytics.db",
		},
		{
			name:    "memory sentinel maps to empty DSN",
			locator: ":memory:",
			want:    "",
		},
		{
			name:    "read only",
			locator: "analytics.db",
			options: types.Config{"read_only": true},
			want:    "analytics.db?access_mode=read_only",
		},
		{
			name:    "read only false is ignored",
			locator: "analytics.db",
			options: types.Config{"read_only": false},
			want:    "analytics.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildDSN(tt.locator, tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistered(t *testing.T) {
	driver, err := registry.Get(types.BackendDuckDB)
	require.NoError(t, err)
	assert.Equal(t, "path", driver.LocatorKey)
	assert.Contains(t, driver.ConfigExample, "path:")
}

func TestConnectAndQuery(t *testing.T) {
	ctx := context.Background()
	conn := New()

	require.NoError(t, conn.Connect(ctx, ":memory:", nil))
	defer conn.Close()
	assert.True(t, conn.IsConnected())
	assert.Equal(t, types.BackendDuckDB, conn.BackendType())

	_, err := conn.DB().ExecContext(ctx, "CREATE TABLE events (id INTEGER, name VARCHAR)")
	require.NoError(t, err)
	_, err = conn.DB().ExecContext(ctx, "INSERT INTO events VALUES (1, 'signup'), (2, 'login')")
	require.NoError(t, err)

	table, err := conn.GetTable(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, "events", table.Name)
	assert.Len(t, table.Columns, 2)

	result, err := conn.Execute(ctx, "SELECT id, name FROM events ORDER BY id", types.FormatRecords)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, "signup", result.Records[0]["name"])
}

func TestGetTableNotFound(t *testing.T) {
	ctx := context.Background()
	conn := New()
	require.NoError(t, conn.Connect(ctx, ":memory:", nil))
	defer conn.Close()

	_, err := conn.GetTable(ctx, "missing")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestCloseIdempotent(t *testing.T) {
	conn := New()
	require.NoError(t, conn.Connect(context.Background(), ":memory:", nil))

	require.NoError(t, conn.Close())
	assert.False(t, conn.IsConnected())
	require.NoError(t, conn.Close())
}
