package mysql

import (
	"context"
	"testing"

	"github.com/framebridge/framebridge/registry"
	"github.com/framebridge/framebridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	driver, err := registry.Get(types.BackendMySQL)
	require.NoError(t, err)
	assert.Equal(t, "dsn", driver.LocatorKey)
	assert.Contains(t, driver.ConfigExample, "dsn:")

	conn := driver.New()
	assert.Equal(t, types.BackendMySQL, conn.BackendType())
	assert.False(t, conn.IsConnected())
}

func TestNotConnected(t *testing.T) {
	conn := New()

	_, err := conn.Execute(context.Background(), "SELECT 1", types.FormatRecords)
	assert.ErrorIs(t, err, types.ErrConnectionFailed)
}
