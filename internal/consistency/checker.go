// Package consistency compares the column schemas of loaded files.
//
// The first file is the reference. Every later file is compared against it
// by column count, then by ordered column names (case-sensitive). Check is a
// pure function; applying a policy to its Report is the caller's job.
package consistency

import (
	"fmt"

	"github.com/vvka-141/tabload/pkg/tabload"
)

// Check compares each file's columns with the first file's columns.
// Fewer than two files yields an empty report.
func Check(files []tabload.LoadedFile) tabload.ConsistencyReport {
	if len(files) < 2 {
		return tabload.ConsistencyReport{}
	}

	reference := files[0]
	expected := reference.Table.Columns()
	report := tabload.ConsistencyReport{
		ReferenceFile:    reference.Name,
		ReferenceColumns: expected,
	}

	for _, file := range files[1:] {
		actual := file.Table.Columns()

		if len(actual) != len(expected) {
			report.Issues = append(report.Issues, tabload.ConsistencyIssue{
				File:    file.Name,
				Issue:   fmt.Sprintf("Column count mismatch: %d vs %d", len(actual), len(expected)),
				Columns: actual,
			})
			continue
		}

		if !sameNames(actual, expected) {
			report.Issues = append(report.Issues, tabload.ConsistencyIssue{
				File:     file.Name,
				Issue:    "Column names mismatch",
				Columns:  actual,
				Expected: expected,
			})
		}
	}

	return report
}

func sameNames(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
