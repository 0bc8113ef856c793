package store

import (
	"math"
	"testing"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnNames(t *schema.Table) []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

func column(t *testing.T, tbl *schema.Table, name string) *schema.Column {
	t.Helper()
	c, ok := tbl.Column(name)
	require.True(t, ok, "column %q missing from %s", name, tbl.Name)
	return c
}

func TestTableFor_ColumnsFollowEntSchemas(t *testing.T) {
	assert.Equal(t, []string{
		"id", "sequence", "timestamp",
		"attempt_id", "answers", "tie_break", "normalization", "career_path", "result",
	}, columnNames(attemptsTable))
	assert.Equal(t, llmEventColumns, columnNames(llmEventsTable))
	assert.Equal(t, []string{"id", "sequence", "timestamp", "data"}, columnNames(snapshotsTable))

	for _, tbl := range tables {
		require.Len(t, tbl.PrimaryKey, 1)
		assert.True(t, tbl.PrimaryKey[0].Increment, "%s id", tbl.Name)
	}
}

func TestTableFor_ColumnAttributes(t *testing.T) {
	seq := column(t, attemptsTable, "sequence")
	assert.Equal(t, field.TypeInt64, seq.Type)
	assert.True(t, seq.Unique)
	assert.False(t, column(t, snapshotsTable, "sequence").Unique, "snapshots share the sequence of the event they follow")

	assert.Equal(t, field.TypeTime, column(t, attemptsTable, "timestamp").Type)
	assert.True(t, column(t, attemptsTable, "attempt_id").Unique)
	assert.EqualValues(t, 16, column(t, attemptsTable, "answers").Size)
	assert.EqualValues(t, math.MaxInt32, column(t, attemptsTable, "result").Size)

	assert.Equal(t, field.TypeBool, column(t, llmEventsTable, "success").Type)
	assert.Equal(t, field.TypeInt, column(t, llmEventsTable, "input_tokens").Type)
	assert.False(t, column(t, llmEventsTable, "provider").Nullable)
	for _, name := range []string{"error_message", "request_body", "response_body"} {
		assert.True(t, column(t, llmEventsTable, name).Nullable, name)
	}
}

func TestTableFor_Indexes(t *testing.T) {
	tests := []struct {
		table *schema.Table
		index string
		col   string
	}{
		{attemptsTable, "attempt_timestamp", "timestamp"},
		{llmEventsTable, "llmrequestevent_timestamp", "timestamp"},
		{llmEventsTable, "llmrequestevent_purpose", "purpose"},
	}
	for _, tt := range tests {
		t.Run(tt.index, func(t *testing.T) {
			idx, ok := tt.table.Index(tt.index)
			require.True(t, ok)
			require.Len(t, idx.Columns, 1)
			assert.Equal(t, tt.col, idx.Columns[0].Name)
			assert.False(t, idx.Unique)
		})
	}
	assert.Empty(t, snapshotsTable.Indexes)
}

func TestRepoColumnsExist(t *testing.T) {
	for _, name := range attemptColumns {
		column(t, attemptsTable, name)
	}
	for _, name := range llmEventColumns {
		column(t, llmEventsTable, name)
	}
}
