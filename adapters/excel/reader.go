package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"churnreport/adapters/datareadiness/coercer"
	"churnreport/domain/dataset"
	apperrors "churnreport/internal/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// DataReader loads an Excel sheet or a CSV file into a RecordTable
type DataReader struct {
	config   LoaderConfig
	fileType string // "xlsx" or "csv"
	coercer  *coercer.TypeCoercer
	logger   *zap.SugaredLogger
}

// NewDataReader creates a reader; the file type is taken from the extension
func NewDataReader(config LoaderConfig, logger *zap.SugaredLogger) *DataReader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &DataReader{
		config:   config,
		fileType: fileTypeOf(config.FilePath),
		coercer:  coercer.NewTypeCoercer(config.CoercionConfig),
		logger:   logger,
	}
}

func fileTypeOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return "xlsx"
	}
	return ""
}

// Load reads the whole source once and returns a typed, categorical-coerced table.
// Every failure is a LoadError and no table is returned with it.
func (r *DataReader) Load() (*dataset.RecordTable, error) {
	path := r.config.FilePath
	r.logger.Infof("[DataReader] Loading %s file: %s", r.fileType, path)

	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.LoadError(fmt.Sprintf("data source not found: %s", path), err)
	}

	var (
		raw *RawSheet
		err error
	)
	switch r.fileType {
	case "xlsx":
		raw, err = r.readExcel(path, r.config.Sheet)
	case "csv":
		raw, err = r.readCSV(path)
	default:
		return nil, apperrors.LoadError(fmt.Sprintf("unsupported file type: %s", filepath.Ext(path)), nil)
	}
	if err != nil {
		return nil, err
	}

	table := r.buildTable(raw)
	r.logger.Infof("[DataReader] Loaded %d columns, %d rows", len(table.Columns), table.RowCount)
	return table, nil
}

// readExcel reads the named sheet with raw cell values so number formats do not leak into parsing
func (r *DataReader) readExcel(path, sheet string) (*RawSheet, error) {
	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.LoadError("failed to open Excel file", err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, apperrors.LoadError(
			fmt.Sprintf("sheet %q not found (available: %s)", sheet, strings.Join(f.GetSheetList(), ", ")), err)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.LoadError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	r.logger.Debugf("[DataReader] Sheet %q read in %s (%d rows)", sheet, time.Since(start), len(rows))

	return processRows(rows), nil
}

// readCSV reads a comma-separated file; the sheet selector does not apply
func (r *DataReader) readCSV(path string) (*RawSheet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.LoadError("failed to open CSV file", err)
	}
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.LoadError("malformed CSV file", err)
	}
	r.logger.Debugf("[DataReader] CSV read (%d rows)", len(rows))

	return processRows(rows), nil
}

// processRows splits off the header row and aligns every data row to it.
// Blank headers become "Unnamed: <i>" and repeats get ".1", ".2" suffixes.
func processRows(rows [][]string) *RawSheet {
	if len(rows) == 0 {
		return &RawSheet{}
	}

	// the widest row decides the column count, short header rows are padded
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	headers := make([]string, width)
	used := make(map[string]bool, width)
	for i := range headers {
		var h string
		if i < len(rows[0]) {
			h = strings.TrimSpace(rows[0][i])
		}
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s.%d", h, n)
		}
		used[name] = true
		headers[i] = name
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		aligned := make([]string, len(headers))
		copy(aligned, row)
		data = append(data, aligned)
	}

	return &RawSheet{Headers: headers, Rows: data}
}

// buildTable types every column and applies the categorical coercion list
func (r *DataReader) buildTable(raw *RawSheet) *dataset.RecordTable {
	columns := make([]*dataset.Column, len(raw.Headers))
	for j, name := range raw.Headers {
		columns[j] = r.coercer.CoerceColumn(name, raw.Column(j))
	}

	applied := coercer.ApplyCategoricals(columns, r.config.Categoricals)
	if skipped := len(r.config.Categoricals) - len(applied); skipped > 0 {
		r.logger.Debugf("[DataReader] %d categorical columns not present, skipped", skipped)
	}

	sheet := r.config.Sheet
	if r.fileType == "csv" {
		sheet = ""
	}
	table := dataset.NewRecordTable(r.config.FilePath, sheet, columns)
	table.RowCount = len(raw.Rows)
	return table
}
