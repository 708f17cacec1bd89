package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueFormatting(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		text  string
		num   float64
		isNum bool
	}{
		{name: "null", value: Null, text: ""},
		{name: "integer", value: IntValue(50001), text: "50001", num: 50001, isNum: true},
		{name: "float", value: FloatValue(159.93), text: "159.93", num: 159.93, isNum: true},
		{name: "whole float", value: FloatValue(3), text: "3", num: 3, isNum: true},
		{name: "text", value: TextValue("Mobile Phone"), text: "Mobile Phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.value.String())
			f, ok := tt.value.Float()
			assert.Equal(t, tt.isNum, ok)
			assert.Equal(t, tt.num, f)
		})
	}
	assert.True(t, Null.IsNull())
	assert.True(t, Value{}.IsNull(), "the zero value is null")
}

func TestRecordTable(t *testing.T) {
	table := NewRecordTable("ecomm.xlsx", "E Comm", []*Column{
		{Name: "CustomerID", Type: TypeInteger, Values: []Value{IntValue(1), IntValue(2)}},
		{Name: "Gender", Type: TypeCategorical, Values: []Value{TextValue("Male"), Null}},
	})

	assert.Equal(t, 2, table.RowCount)
	assert.Equal(t, []string{"CustomerID", "Gender"}, table.ColumnNames())

	col, ok := table.Column("Gender")
	require.True(t, ok)
	assert.Equal(t, 1, col.MissingCount())

	_, ok = table.Column("gender")
	assert.False(t, ok, "lookups are case sensitive")

	assert.Equal(t, []Value{IntValue(2), Null}, table.Row(1))
}

func TestColumnTypeIsNumeric(t *testing.T) {
	assert.True(t, TypeInteger.IsNumeric())
	assert.True(t, TypeFloat.IsNumeric())
	assert.False(t, TypeText.IsNumeric())
	assert.False(t, TypeCategorical.IsNumeric())
}
