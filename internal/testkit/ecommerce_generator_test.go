package testkit

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestECommerceDataGenerator_Basic(t *testing.T) {
	config := DefaultECommerceConfig()
	config.CustomerCount = 200

	headers, rows := NewECommerceDataGenerator(config).Generate()

	if len(headers) != len(ECommerceHeaders) {
		t.Fatalf("Expected %d headers, got %d", len(ECommerceHeaders), len(headers))
	}
	if len(rows) != config.CustomerCount {
		t.Fatalf("Expected %d rows, got %d", config.CustomerCount, len(rows))
	}

	nullable := toSet(config.MissingColumns)
	nulls := 0
	for i, row := range rows {
		if len(row) != len(headers) {
			t.Fatalf("Row %d has %d cells, expected %d", i, len(row), len(headers))
		}
		for j, v := range row {
			if v != nil {
				continue
			}
			if !nullable[headers[j]] {
				t.Errorf("Row %d: unexpected null in %s", i, headers[j])
			}
			nulls++
		}
	}
	if nulls == 0 {
		t.Error("Expected some nulls in the nullable columns")
	}
}

func TestECommerceDataGenerator_Deterministic(t *testing.T) {
	config := DefaultECommerceConfig()
	config.CustomerCount = 25

	_, first := NewECommerceDataGenerator(config).Generate()
	_, second := NewECommerceDataGenerator(config).Generate()

	for i := range first {
		for j := range first[i] {
			if first[i][j] != second[i][j] {
				t.Fatalf("Same seed produced different cell at row %d col %d: %v vs %v", i, j, first[i][j], second[i][j])
			}
		}
	}
}

func TestECommerceDataGenerator_DropColumns(t *testing.T) {
	config := DefaultECommerceConfig()
	config.CustomerCount = 5
	config.DropColumns = []string{"Gender"}

	headers, rows := NewECommerceDataGenerator(config).Generate()
	for _, h := range headers {
		if h == "Gender" {
			t.Fatal("Dropped column still present in headers")
		}
	}
	if len(rows[0]) != len(ECommerceHeaders)-1 {
		t.Errorf("Expected %d cells per row, got %d", len(ECommerceHeaders)-1, len(rows[0]))
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecomm.xlsx")
	headers := []string{"CustomerID", "Tenure"}
	rows := [][]interface{}{{50001, 4}, {50002, nil}}

	if err := WriteWorkbook(path, "E Comm", headers, rows); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("E Comm")
	if err != nil {
		t.Fatalf("Failed to read sheet: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 rows including header, got %d", len(got))
	}
	if got[1][1] != "4" {
		t.Errorf("Expected Tenure 4, got %q", got[1][1])
	}
	if len(got[2]) != 1 {
		t.Errorf("Expected the null cell to be left empty, got %v", got[2])
	}
}
