package profiling

import (
	"math"
	"sort"

	"churnreport/domain/datareadiness/profiling"
	"churnreport/domain/dataset"
)

// VariableDictionary describes every column of the table: name, storage type and
// catalog description (empty when the catalog has no entry). Rows are sorted by name.
func VariableDictionary(table *dataset.RecordTable, catalog dataset.DescriptionCatalog) []profiling.ColumnDescriptor {
	rows := make([]profiling.ColumnDescriptor, 0, len(table.Columns))
	for _, col := range table.Columns {
		rows = append(rows, profiling.ColumnDescriptor{
			Variable:    col.Name,
			DType:       col.Type,
			Description: catalog.Lookup(col.Name),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Variable < rows[j].Variable
	})
	return rows
}

// MissingSummary counts null cells per column. Rows are sorted by count
// descending, then by name ascending.
func MissingSummary(table *dataset.RecordTable) []profiling.MissingDescriptor {
	rows := make([]profiling.MissingDescriptor, 0, len(table.Columns))
	for _, col := range table.Columns {
		n := col.MissingCount()
		rows = append(rows, profiling.MissingDescriptor{
			Variable:   col.Name,
			DType:      col.Type,
			NMissing:   n,
			PctMissing: Percent(n, table.RowCount, 2),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].NMissing != rows[j].NMissing {
			return rows[i].NMissing > rows[j].NMissing
		}
		return rows[i].Variable < rows[j].Variable
	})
	return rows
}

// ColumnsWithMissing returns how many summary rows have at least one null
func ColumnsWithMissing(summary []profiling.MissingDescriptor) int {
	n := 0
	for _, row := range summary {
		if row.NMissing > 0 {
			n++
		}
	}
	return n
}

// Percent returns part/total*100 rounded half-to-even to the given decimals; 0 when total is 0
func Percent(part, total, decimals int) float64 {
	if total <= 0 {
		return 0
	}
	return Round(float64(part)/float64(total)*100, decimals)
}

// Round rounds half-to-even at the given number of decimals
func Round(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*scale) / scale
}
