package tabload

import (
	"fmt"
	"strconv"
)

// ColumnType is the logical type shared by every value in a Column.
type ColumnType int

const (
	ColumnTypeText  ColumnType = iota // string values
	ColumnTypeInt                     // int64 values
	ColumnTypeFloat                   // float64 values
	ColumnTypeBool                    // bool values
)

// String returns the column type name.
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeText:
		return "text"
	case ColumnTypeInt:
		return "int"
	case ColumnTypeFloat:
		return "float"
	case ColumnTypeBool:
		return "bool"
	default:
		return fmt.Sprintf("Unknown(%d)", ct)
	}
}

// Column is a named, typed sequence of values. A nil value is null.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any
}

// Table is an immutable in-memory table of named columns.
// Column names are unique and every column holds exactly Rows() values.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// NewTable builds a Table from columns, taking ownership of their value
// slices. It fails on duplicate names or uneven column lengths.
func NewTable(columns []Column) (*Table, error) {
	t := &Table{
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if _, dup := t.index[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		t.index[col.Name] = i

		if i == 0 {
			t.rows = len(col.Values)
		} else if len(col.Values) != t.rows {
			return nil, fmt.Errorf("column %q has %d values, want %d", col.Name, len(col.Values), t.rows)
		}
	}

	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) { return t.rows, len(t.columns) }

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Types returns the column types in column order.
func (t *Table) Types() []ColumnType {
	types := make([]ColumnType, len(t.columns))
	for i, c := range t.columns {
		types[i] = c.Type
	}
	return types
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.ColumnAt(i), true
}

// ColumnAt returns a copy of the i-th column.
func (t *Table) ColumnAt(i int) Column {
	c := t.columns[i]
	values := make([]any, len(c.Values))
	copy(values, c.Values)
	return Column{Name: c.Name, Type: c.Type, Values: values}
}

// Value returns the value at (row, col); nil means null.
func (t *Table) Value(row, col int) any {
	return t.columns[col].Values[row]
}

// Row returns the values of one row in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Values[i]
	}
	return row
}

// Index returns the dense 0-based row index.
func (t *Table) Index() []int {
	idx := make([]int, t.rows)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Concat stacks tables vertically. The result has the union of all column
// names in order of first appearance; a table lacking a column contributes
// nulls for it. Rows keep table order, then original row order, and the
// index is renumbered from 0.
//
// Column types unify as: equal types stay, int with float becomes float,
// any other mix becomes text. Columns holding only nulls do not take part
// in unification.
func Concat(tables ...*Table) *Table {
	var (
		order    []string
		position = map[string]int{}
		types    []ColumnType
		typed    []bool
		total    int
	)

	for _, t := range tables {
		total += t.rows
		for _, c := range t.columns {
			i, seen := position[c.Name]
			if !seen {
				i = len(order)
				position[c.Name] = i
				order = append(order, c.Name)
				types = append(types, c.Type)
				typed = append(typed, false)
			}
			if !hasValues(c.Values) {
				continue
			}
			if !typed[i] {
				types[i] = c.Type
				typed[i] = true
				continue
			}
			types[i] = unifyTypes(types[i], c.Type)
		}
	}

	columns := make([]Column, len(order))
	for i, name := range order {
		values := make([]any, total)
		offset := 0
		for _, t := range tables {
			if j, ok := t.index[name]; ok {
				for r, v := range t.columns[j].Values {
					values[offset+r] = convertValue(v, types[i])
				}
			}
			offset += t.rows
		}
		columns[i] = Column{Name: name, Type: types[i], Values: values}
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c.Name] = i
	}
	return &Table{columns: columns, index: index, rows: total}
}

func hasValues(values []any) bool {
	for _, v := range values {
		if v != nil {
			return true
		}
	}
	return false
}

func unifyTypes(a, b ColumnType) ColumnType {
	if a == b {
		return a
	}
	if (a == ColumnTypeInt && b == ColumnTypeFloat) || (a == ColumnTypeFloat && b == ColumnTypeInt) {
		return ColumnTypeFloat
	}
	return ColumnTypeText
}

func convertValue(v any, to ColumnType) any {
	if v == nil {
		return nil
	}
	switch to {
	case ColumnTypeFloat:
		if i, ok := v.(int64); ok {
			return float64(i)
		}
	case ColumnTypeText:
		if _, ok := v.(string); !ok {
			return FormatValue(v)
		}
	}
	return v
}

// FormatValue renders a cell value as text. Null renders as the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
