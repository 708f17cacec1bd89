package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	domainprofiling "churnreport/domain/datareadiness/profiling"

	"github.com/xuri/excelize/v2"
)

// Export file names offered to report readers
const (
	DictionaryFileName = "diccionario_variables.csv"
	MissingFileName    = "resumen_faltantes.csv"
	WorkbookFileName   = "reporte_churn.xlsx"
)

var (
	dictionaryHeader = []string{"variable", "dtype", "descripcion"}
	missingHeader    = []string{"variable", "dtype", "n_missing", "pct_missing"}
)

// WriteDictionaryCSV writes the variable dictionary as UTF-8 CSV with columns variable,dtype,descripcion
func WriteDictionaryCSV(w io.Writer, rows []domainprofiling.ColumnDescriptor) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dictionaryHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Variable, string(row.DType), row.Description}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMissingCSV writes the missing-value summary with two-decimal percentages
func WriteMissingCSV(w io.Writer, rows []domainprofiling.MissingDescriptor) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(missingHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Variable,
			string(row.DType),
			strconv.Itoa(row.NMissing),
			strconv.FormatFloat(row.PctMissing, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Workbook sheet names
const (
	SheetDictionary = "diccionario"
	SheetMissing    = "faltantes"
)

// WriteWorkbook writes the dictionary and the missing-value summary as two sheets of one xlsx file
func WriteWorkbook(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetDictionary); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetMissing); err != nil {
		return err
	}

	dict := make([][]interface{}, 0, len(r.Dictionary)+1)
	dict = append(dict, toRow(dictionaryHeader))
	for _, row := range r.Dictionary {
		dict = append(dict, []interface{}{row.Variable, string(row.DType), row.Description})
	}
	if err := writeRows(f, SheetDictionary, dict); err != nil {
		return err
	}

	missing := make([][]interface{}, 0, len(r.Missing)+1)
	missing = append(missing, toRow(missingHeader))
	for _, row := range r.Missing {
		missing = append(missing, []interface{}{row.Variable, string(row.DType), row.NMissing, row.PctMissing})
	}
	if err := writeRows(f, SheetMissing, missing); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
