package dataset

import (
	"strconv"
)

// ColumnType is the storage type tag reported for a column.
//
// Tags are stable strings and are what the variable dictionary and the
// missing-value summary print in their dtype column.
type ColumnType string

const (
	TypeInteger     ColumnType = "integer"
	TypeFloat       ColumnType = "float"
	TypeText        ColumnType = "text"
	TypeCategorical ColumnType = "categorical"
)

// IsNumeric reports whether values of this type carry a float64 payload
func (t ColumnType) IsNumeric() bool {
	return t == TypeInteger || t == TypeFloat
}

// ValueKind identifies which field of a Value is populated
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindInteger
	KindFloat
	KindText
)

// Value is a single parsed cell
type Value struct {
	Kind ValueKind
	Int  int64
	Num  float64
	Text string
}

// Null is the missing value
var Null = Value{Kind: KindNull}

func IntValue(v int64) Value     { return Value{Kind: KindInteger, Int: v, Num: float64(v)} }
func FloatValue(v float64) Value { return Value{Kind: KindFloat, Num: v} }
func TextValue(v string) Value   { return Value{Kind: KindText, Text: v} }

// IsNull reports whether the cell is missing
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Float returns the numeric payload; ok is false for text and null cells
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindInteger:
		return float64(v.Int), true
	case KindFloat:
		return v.Num, true
	}
	return 0, false
}

// String formats the value for display. Nulls format as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Text
	}
	return ""
}

// Column holds one column of a RecordTable
type Column struct {
	Name   string
	Type   ColumnType
	Values []Value
	// Labels is the sorted set of distinct non-null labels, set only for categorical columns
	Labels []string
}

// MissingCount returns the number of null cells
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsNull() {
			n++
		}
	}
	return n
}

// RecordTable is an in-memory tabular dataset, loaded once and read-only afterwards.
// Every column holds exactly RowCount values.
type RecordTable struct {
	Source   string
	Sheet    string
	Columns  []*Column
	RowCount int
	index    map[string]int
}

// NewRecordTable builds a table from columns of equal length
func NewRecordTable(source, sheet string, columns []*Column) *RecordTable {
	t := &RecordTable{
		Source:  source,
		Sheet:   sheet,
		Columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		t.index[c.Name] = i
		if len(c.Values) > t.RowCount {
			t.RowCount = len(c.Values)
		}
	}
	return t
}

// ColumnNames returns the column names in source order
func (t *RecordTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by exact name
func (t *RecordTable) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.Columns[i], true
}

// Row returns the values of row i in column order
func (t *RecordTable) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for j, c := range t.Columns {
		if i < len(c.Values) {
			row[j] = c.Values[i]
		}
	}
	return row
}
