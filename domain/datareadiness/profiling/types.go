package profiling

import (
	"churnreport/domain/dataset"
)

// ColumnDescriptor is one row of the variable dictionary
type ColumnDescriptor struct {
	Variable    string             `json:"variable"`
	DType       dataset.ColumnType `json:"dtype"`
	Description string             `json:"descripcion"`
}

// MissingDescriptor is one row of the missing-value summary.
// NMissing never exceeds the row count and PctMissing is in [0, 100].
type MissingDescriptor struct {
	Variable   string             `json:"variable"`
	DType      dataset.ColumnType `json:"dtype"`
	NMissing   int                `json:"n_missing"`
	PctMissing float64            `json:"pct_missing"`
}

// NumericSummary holds descriptive statistics of one numeric column over its non-null values
type NumericSummary struct {
	Variable string             `json:"variable"`
	DType    dataset.ColumnType `json:"dtype"`
	Count    int                `json:"count"`
	Mean     float64            `json:"mean"`
	StdDev   float64            `json:"std"`
	Min      float64            `json:"min"`
	Q25      float64            `json:"q25"`
	Median   float64            `json:"median"`
	Q75      float64            `json:"q75"`
	Max      float64            `json:"max"`
}

// ClassShare is the frequency of one target class
type ClassShare struct {
	Value   string  `json:"value"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// TargetDistribution summarises a binary outcome column
type TargetDistribution struct {
	Variable     string       `json:"variable"`
	Classes      []ClassShare `json:"classes"` // Ordered by count descending
	Total        int          `json:"total"`   // Non-null observations
	Missing      int          `json:"missing"`
	PositiveRate float64      `json:"positive_rate"`
	CILow        float64      `json:"ci_low"`
	CIHigh       float64      `json:"ci_high"`
	Imbalanced   bool         `json:"imbalanced"`
}

// DistributionConfig controls the target distribution summary
type DistributionConfig struct {
	PositiveValue      string            `json:"positive_value"`
	Labels             map[string]string `json:"labels"`
	Confidence         float64           `json:"confidence"`
	ImbalanceThreshold float64           `json:"imbalance_threshold"` // Minority share below this is flagged
}

// DefaultDistributionConfig returns the churn settings: 1 is attrition, 0 retention
func DefaultDistributionConfig() DistributionConfig {
	return DistributionConfig{
		PositiveValue: "1",
		Labels: map[string]string{
			"0": "Se queda (0)",
			"1": "Se retira (1)",
		},
		Confidence:         0.95,
		ImbalanceThreshold: 0.30,
	}
}
