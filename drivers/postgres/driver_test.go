package postgres

import (
	"context"
	"testing"

	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	driver, err := registry.Get(types.BackendPostgres)
	require.NoError(t, err)
	assert.Equal(t, "dsn", driver.LocatorKey)
	assert.Contains(t, driver.ConfigExample, "dsn:")

	conn := driver.New()
	assert.Equal(t, types.BackendPostgres, conn.BackendType())
	assert.False(t, conn.IsConnected())
}

func TestNotConnected(t *testing.T) {
	conn := New()

	_, err := conn.GetTable(context.Background(), "events")
	assert.ErrorIs(t, err, types.ErrConnectionFailed)
}
