package excel

import (
	"churnreport/adapters/datareadiness/coercer"
	"churnreport/domain/dataset"
)

// LoaderConfig holds configuration for a tabular data source
type LoaderConfig struct {
	FilePath       string                 `json:"file_path"`
	Sheet          string                 `json:"sheet"`
	Categoricals   []string               `json:"categoricals"`
	CoercionConfig coercer.CoercionConfig `json:"coercion_config"`
}

// DefaultLoaderConfig returns the settings for the e-commerce churn workbook
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		FilePath:       "E Commerce Dataset.xlsx",
		Sheet:          "E Comm",
		Categoricals:   dataset.ECommerceCategoricals(),
		CoercionConfig: coercer.DefaultCoercionConfig(),
	}
}
