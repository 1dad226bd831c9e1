package base

import (
	"testing"

	"github.com/framebridge/framebridge/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildResultRecords(t *testing.T) {
	columns := []string{"id", "name"}
	values := [][]any{
		{int64(1), "alice"},
		{int64(2), "bob"},
	}

	result := BuildResult(columns, values, types.FormatRecords)

	assert.Equal(t, columns, result.Columns)
	assert.Nil(t, result.Vectors)
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, map[string]any{"id": int64(1), "name": "alice"}, result.Records[0])
	assert.Equal(t, map[string]any{"id": int64(2), "name": "bob"}, result.Records[1])
}

func TestBuildResultColumnar(t *testing.T) {
	columns := []string{"id", "name"}
	values := [][]any{
		{int64(1), "alice"},
		{int64(2), "bob"},
	}

	result := BuildResult(columns, values, types.FormatColumnar)

	assert.Nil(t, result.Records)
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, []any{int64(1), int64(2)}, result.Vectors["id"])
	assert.Equal(t, []any{"alice", "bob"}, result.Vectors["name"])
}

func TestBuildResultEmpty(t *testing.T) {
	result := BuildResult([]string{"id"}, nil, types.FormatRecords)
	assert.Equal(t, 0, result.Len())
	assert.Empty(t, result.Records)
}
