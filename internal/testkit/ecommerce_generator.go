package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"

	"github.com/xuri/excelize/v2"
)

// ECommerceGeneratorConfig configures the synthetic customer churn dataset
type ECommerceGeneratorConfig struct {
	CustomerCount  int      `json:"customer_count"`
	ChurnRate      float64  `json:"churn_rate"`
	MissingRate    float64  `json:"missing_rate"`
	MissingColumns []string `json:"missing_columns"` // Columns that receive nulls at MissingRate
	DropColumns    []string `json:"drop_columns"`    // Columns left out of the schema
	Seed           int64    `json:"seed"`
}

// DefaultECommerceConfig mirrors the shape of the original workbook: about
// 17% churn and roughly 5% nulls in seven behavioural columns
func DefaultECommerceConfig() ECommerceGeneratorConfig {
	return ECommerceGeneratorConfig{
		CustomerCount: 500,
		ChurnRate:     0.17,
		MissingRate:   0.05,
		MissingColumns: []string{
			"Tenure", "WarehouseToHome", "HourSpendOnApp", "OrderAmountHikeFromlastYear",
			"CouponUsed", "OrderCount", "DaySinceLastOrder",
		},
		Seed: 42,
	}
}

// ECommerceHeaders is the column order of the e-commerce churn sheet
var ECommerceHeaders = []string{
	"CustomerID", "Churn", "Tenure", "PreferredLoginDevice", "CityTier", "WarehouseToHome",
	"PreferredPaymentMode", "Gender", "HourSpendOnApp", "NumberOfDeviceRegistered",
	"PreferedOrderCat", "SatisfactionScore", "MaritalStatus", "NumberOfAddress", "Complain",
	"OrderAmountHikeFromlastYear", "CouponUsed", "OrderCount", "DaySinceLastOrder", "CashbackAmount",
}

// ECommerceDataGenerator produces rows of the churn dataset; nil cells are nulls
type ECommerceDataGenerator struct {
	config ECommerceGeneratorConfig
	rng    *rand.Rand
}

// NewECommerceDataGenerator creates a generator seeded from config
func NewECommerceDataGenerator(config ECommerceGeneratorConfig) *ECommerceDataGenerator {
	return &ECommerceDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns the header row and the data rows
func (g *ECommerceDataGenerator) Generate() ([]string, [][]interface{}) {
	dropped := toSet(g.config.DropColumns)
	nullable := toSet(g.config.MissingColumns)

	headers := make([]string, 0, len(ECommerceHeaders))
	for _, h := range ECommerceHeaders {
		if !dropped[h] {
			headers = append(headers, h)
		}
	}

	rows := make([][]interface{}, 0, g.config.CustomerCount)
	for i := 0; i < g.config.CustomerCount; i++ {
		record := g.customer(50001 + i)
		row := make([]interface{}, len(headers))
		for j, h := range headers {
			if nullable[h] && g.rng.Float64() < g.config.MissingRate {
				continue
			}
			row[j] = record[h]
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func (g *ECommerceDataGenerator) customer(id int) map[string]interface{} {
	churn := 0
	if g.rng.Float64() < g.config.ChurnRate {
		churn = 1
	}
	return map[string]interface{}{
		"CustomerID":                  id,
		"Churn":                       churn,
		"Tenure":                      g.rng.Intn(61),
		"PreferredLoginDevice":        g.pick("Mobile Phone", "Phone", "Computer"),
		"CityTier":                    1 + g.rng.Intn(3),
		"WarehouseToHome":             5 + g.rng.Intn(32),
		"PreferredPaymentMode":        g.pick("Debit Card", "Credit Card", "E wallet", "UPI", "COD", "Cash on Delivery"),
		"Gender":                      g.pick("Female", "Male"),
		"HourSpendOnApp":              g.rng.Intn(6),
		"NumberOfDeviceRegistered":    1 + g.rng.Intn(6),
		"PreferedOrderCat":            g.pick("Laptop & Accessory", "Mobile", "Mobile Phone", "Fashion", "Grocery", "Others"),
		"SatisfactionScore":           1 + g.rng.Intn(5),
		"MaritalStatus":               g.pick("Single", "Married", "Divorced"),
		"NumberOfAddress":             1 + g.rng.Intn(22),
		"Complain":                    g.rng.Intn(2),
		"OrderAmountHikeFromlastYear": 11 + g.rng.Intn(16),
		"CouponUsed":                  g.rng.Intn(17),
		"OrderCount":                  1 + g.rng.Intn(16),
		"DaySinceLastOrder":           g.rng.Intn(47),
		"CashbackAmount":              float64(g.rng.Intn(32500))/100 + 0.01,
	}
}

func (g *ECommerceDataGenerator) pick(options ...string) string {
	return options[g.rng.Intn(len(options))]
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// WriteWorkbook writes headers and rows to a new xlsx file with a single named sheet
func WriteWorkbook(path, sheet string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// WriteCSV writes headers and rows as CSV; nil cells are written empty
func WriteCSV(path string, headers []string, rows [][]interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				record[j] = fmt.Sprint(v)
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
