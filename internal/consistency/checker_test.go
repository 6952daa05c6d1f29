package consistency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/tabload/pkg/tabload"
)

func loaded(t *testing.T, name string, columns ...string) tabload.LoadedFile {
	t.Helper()
	cols := make([]tabload.Column, len(columns))
	for i, c := range columns {
		cols[i] = tabload.Column{Name: c, Type: tabload.ColumnTypeInt, Values: []any{int64(i)}}
	}
	table, err := tabload.NewTable(cols)
	require.NoError(t, err)
	return tabload.LoadedFile{Name: name, Path: "/data/" + name, Table: table}
}

func TestCheck_FewerThanTwoFiles(t *testing.T) {
	assert.True(t, Check(nil).OK())

	report := Check([]tabload.LoadedFile{loaded(t, "only.csv", "a", "b")})
	assert.True(t, report.OK())
	assert.Empty(t, report.ReferenceFile)
	assert.Empty(t, report.Message())
}

func TestCheck_IdenticalSchemas(t *testing.T) {
	report := Check([]tabload.LoadedFile{
		loaded(t, "a.csv", "id", "name"),
		loaded(t, "b.csv", "id", "name"),
		loaded(t, "c.csv", "id", "name"),
	})

	assert.True(t, report.OK())
	assert.Equal(t, "a.csv", report.ReferenceFile)
	assert.Equal(t, []string{"id", "name"}, report.ReferenceColumns)
}

func TestCheck_CountMismatch(t *testing.T) {
	report := Check([]tabload.LoadedFile{
		loaded(t, "a.csv", "id", "name", "qty"),
		loaded(t, "b.csv", "id", "name"),
	})

	require.Len(t, report.Issues, 1)
	issue := report.Issues[0]
	assert.Equal(t, "b.csv", issue.File)
	assert.Equal(t, "Column count mismatch: 2 vs 3", issue.Issue)
	assert.Equal(t, []string{"id", "name"}, issue.Columns)
	assert.Nil(t, issue.Expected)
}

func TestCheck_NameMismatch(t *testing.T) {
	report := Check([]tabload.LoadedFile{
		loaded(t, "a.csv", "id", "name"),
		loaded(t, "b.csv", "id", "Name"),
		loaded(t, "c.csv", "name", "id"),
	})

	require.Len(t, report.Issues, 2)
	for _, issue := range report.Issues {
		assert.Equal(t, "Column names mismatch", issue.Issue)
		assert.Equal(t, []string{"id", "name"}, issue.Expected)
	}
	assert.Equal(t, []string{"id", "Name"}, report.Issues[0].Columns)
	assert.Equal(t, []string{"name", "id"}, report.Issues[1].Columns)
}

func TestCheck_ReportsEveryDriftingFile(t *testing.T) {
	report := Check([]tabload.LoadedFile{
		loaded(t, "a.csv", "x", "y"),
		loaded(t, "b.csv", "x"),
		loaded(t, "c.csv", "x", "y"),
		loaded(t, "d.csv", "x", "z"),
	})

	require.Len(t, report.Issues, 2)
	assert.Equal(t, "b.csv", report.Issues[0].File)
	assert.Equal(t, "d.csv", report.Issues[1].File)

	msg := report.Message()
	assert.Contains(t, msg, "Reference file: a.csv (columns: ['x', 'y'])")
	assert.Contains(t, msg, "File: b.csv\nIssue: Column count mismatch: 1 vs 2\nActual columns: ['x']")
	assert.Contains(t, msg, "File: d.csv\nIssue: Column names mismatch\nExpected columns: ['x', 'y']\nActual columns: ['x', 'z']")
}
