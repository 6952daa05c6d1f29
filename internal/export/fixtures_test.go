package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// sampleTable has one column of each type and a null in every column.
func sampleTable(t *testing.T) *tabload.Table {
	t.Helper()
	table, err := tabload.NewTable([]tabload.Column{
		{Name: "id", Type: tabload.ColumnTypeInt, Values: []any{int64(1), int64(2), nil}},
		{Name: "price", Type: tabload.ColumnTypeFloat, Values: []any{9.5, nil, 0.25}},
		{Name: "active", Type: tabload.ColumnTypeBool, Values: []any{true, false, nil}},
		{Name: "label \"quoted\"", Type: tabload.ColumnTypeText, Values: []any{nil, "b,c", "d"}},
	})
	require.NoError(t, err)
	return table
}
