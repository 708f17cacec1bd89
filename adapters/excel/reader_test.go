package excel

import (
	"os"
	"path/filepath"
	"testing"

	"churnreport/domain/dataset"
	apperrors "churnreport/internal/errors"
	"churnreport/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaderConfig(path, sheet string) LoaderConfig {
	cfg := DefaultLoaderConfig()
	cfg.FilePath = path
	cfg.Sheet = sheet
	return cfg
}

func TestLoadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecomm.xlsx")
	headers := []string{"CustomerID", "Churn", "Gender", "CityTier", "WarehouseToHome", "CashbackAmount"}
	rows := [][]interface{}{
		{50001, 1, "Female", 3, 6, 159.93},
		{50002, 1, "Male", 1, nil, 120.9},
		{50003, 0, "Male", 1, 30, 120.28},
	}
	require.NoError(t, testkit.WriteWorkbook(path, "E Comm", headers, rows))

	table, err := NewDataReader(loaderConfig(path, "E Comm"), nil).Load()
	require.NoError(t, err)

	assert.Equal(t, headers, table.ColumnNames())
	assert.Equal(t, 3, table.RowCount)
	assert.Equal(t, "E Comm", table.Sheet)

	expectedTypes := map[string]dataset.ColumnType{
		"CustomerID":      dataset.TypeInteger,
		"Churn":           dataset.TypeInteger,
		"Gender":          dataset.TypeCategorical,
		"CityTier":        dataset.TypeCategorical,
		"WarehouseToHome": dataset.TypeInteger,
		"CashbackAmount":  dataset.TypeFloat,
	}
	for name, expected := range expectedTypes {
		col, ok := table.Column(name)
		require.True(t, ok, name)
		assert.Equal(t, expected, col.Type, name)
	}

	warehouse, _ := table.Column("WarehouseToHome")
	assert.Equal(t, 1, warehouse.MissingCount())

	gender, _ := table.Column("Gender")
	assert.Equal(t, []string{"Female", "Male"}, gender.Labels)
}

func TestLoadSkipsAbsentCategoricalColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no_gender.xlsx")
	gen := testkit.DefaultECommerceConfig()
	gen.CustomerCount = 20
	gen.DropColumns = []string{"Gender", "MaritalStatus"}
	headers, rows := testkit.NewECommerceDataGenerator(gen).Generate()
	require.NoError(t, testkit.WriteWorkbook(path, "E Comm", headers, rows))

	table, err := NewDataReader(loaderConfig(path, "E Comm"), nil).Load()
	require.NoError(t, err)

	_, hasGender := table.Column("Gender")
	assert.False(t, hasGender)

	complain, ok := table.Column("Complain")
	require.True(t, ok)
	assert.Equal(t, dataset.TypeCategorical, complain.Type)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "ecomm.xlsx")
	require.NoError(t, testkit.WriteWorkbook(workbook, "E Comm", []string{"Churn"}, [][]interface{}{{0}}))

	corrupt := filepath.Join(dir, "corrupt.xlsx")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a zip archive"), 0o644))

	unsupported := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(unsupported, []byte("{}"), 0o644))

	malformed := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(malformed, []byte("a,b\n\"unterminated,1\n"), 0o644))

	tests := []struct {
		name  string
		path  string
		sheet string
	}{
		{name: "nonexistent source", path: filepath.Join(dir, "missing.xlsx"), sheet: "E Comm"},
		{name: "sheet does not exist", path: workbook, sheet: "Hoja1"},
		{name: "corrupt workbook", path: corrupt, sheet: "E Comm"},
		{name: "unsupported extension", path: unsupported},
		{name: "malformed csv", path: malformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewDataReader(loaderConfig(tt.path, tt.sheet), nil).Load()
			require.Error(t, err)
			assert.Nil(t, table, "no partial table on a load error")
			assert.True(t, apperrors.IsLoadError(err), "expected LoadError, got %v", err)
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecomm.csv")
	content := "\xef\xbb\xbfCustomerID, Churn ,Gender,Tenure\n" +
		"50001,1,Female,4\n" +
		"50002,0,Male,NA\n" +
		"50003,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := NewDataReader(loaderConfig(path, "E Comm"), nil).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"CustomerID", "Churn", "Gender", "Tenure"}, table.ColumnNames())
	assert.Equal(t, 3, table.RowCount)
	assert.Empty(t, table.Sheet, "csv sources have no sheet")

	tenure, _ := table.Column("Tenure")
	assert.Equal(t, 2, tenure.MissingCount(), "NA token and short row are both null")
	gender, _ := table.Column("Gender")
	assert.Equal(t, dataset.TypeCategorical, gender.Type)
}

func TestLoadKeepsCellsBeyondHeader(t *testing.T) {
	dir := t.TempDir()

	workbook := filepath.Join(dir, "wide.xlsx")
	require.NoError(t, testkit.WriteWorkbook(workbook, "E Comm", []string{"A", "B"}, [][]interface{}{
		{1, 2, 3},
		{4, 5, 6},
	}))
	csvPath := filepath.Join(dir, "wide.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("A,B\n1,2,3\n"), 0o644))

	tests := []struct {
		name string
		path string
		rows int
		last []string
	}{
		{name: "workbook", path: workbook, rows: 2, last: []string{"3", "6"}},
		{name: "csv", path: csvPath, rows: 1, last: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewDataReader(loaderConfig(tt.path, "E Comm"), nil).Load()
			require.NoError(t, err)

			assert.Equal(t, []string{"A", "B", "Unnamed: 2"}, table.ColumnNames())
			assert.Equal(t, tt.rows, table.RowCount)

			extra, ok := table.Column("Unnamed: 2")
			require.True(t, ok)
			assert.Zero(t, extra.MissingCount())
			for i, want := range tt.last {
				assert.Equal(t, want, extra.Values[i].String())
			}
		})
	}
}

func TestProcessRowsHeaders(t *testing.T) {
	raw := processRows([][]string{
		{"Churn", "", "Churn", "Churn.1"},
		{"1", "x"},
	})

	assert.Equal(t, []string{"Churn", "Unnamed: 1", "Churn.1", "Churn.1.1"}, raw.Headers)
	require.Len(t, raw.Rows, 1)
	assert.Equal(t, []string{"1", "x", "", ""}, raw.Rows[0])
}

func TestProcessRowsWiderThanHeader(t *testing.T) {
	raw := processRows([][]string{
		{"A", "B"},
		{"1"},
		{"1", "2", "3", "4"},
	})

	assert.Equal(t, []string{"A", "B", "Unnamed: 2", "Unnamed: 3"}, raw.Headers)
	require.Len(t, raw.Rows, 2)
	assert.Equal(t, []string{"1", "", "", ""}, raw.Rows[0])
	assert.Equal(t, []string{"1", "2", "3", "4"}, raw.Rows[1])
}

func TestProcessRowsEmptySheet(t *testing.T) {
	raw := processRows(nil)
	assert.Empty(t, raw.Headers)
	assert.Empty(t, raw.Rows)
}
