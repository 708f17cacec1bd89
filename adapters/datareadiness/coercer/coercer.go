package coercer

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"churnreport/domain/dataset"
)

// TypeCoercer turns raw cell strings into typed column values with deterministic rules
type TypeCoercer struct {
	config CoercionConfig
	nulls  map[string]struct{}
}

// CoercionConfig defines which raw strings count as missing and how cells are cleaned
type CoercionConfig struct {
	NullTokens []string `json:"null_tokens"` // Exact (post-trim) strings read as null
	TrimSpace  bool     `json:"trim_space"`  // Trim surrounding whitespace before parsing
}

// DefaultCoercionConfig returns the pandas-compatible NA token set
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		NullTokens: []string{
			"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
			"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
			"n/a", "nan", "null",
		},
		TrimSpace: true,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	nulls := make(map[string]struct{}, len(config.NullTokens))
	for _, tok := range config.NullTokens {
		nulls[tok] = struct{}{}
	}
	return &TypeCoercer{config: config, nulls: nulls}
}

// IsMissing reports whether a raw cell is a null marker
func (c *TypeCoercer) IsMissing(raw string) bool {
	if c.config.TrimSpace {
		raw = strings.TrimSpace(raw)
	}
	_, ok := c.nulls[raw]
	return ok
}

// ColumnAnalysis counts how the non-null cells of a column parse
type ColumnAnalysis struct {
	TotalCount      int                `json:"total_count"`
	ValidCount      int                `json:"valid_count"`
	IntegerCount    int                `json:"integer_count"`
	FloatCount      int                `json:"float_count"`
	TextCount       int                `json:"text_count"`
	RecommendedType dataset.ColumnType `json:"recommended_type"`
}

// AnalyzeColumn classifies every cell of a raw column
func (c *TypeCoercer) AnalyzeColumn(raw []string) ColumnAnalysis {
	analysis := ColumnAnalysis{TotalCount: len(raw)}
	for _, cell := range raw {
		if c.IsMissing(cell) {
			continue
		}
		analysis.ValidCount++
		v := c.parseScalar(cell)
		switch v.Kind {
		case dataset.KindInteger:
			analysis.IntegerCount++
		case dataset.KindFloat:
			analysis.FloatCount++
		default:
			analysis.TextCount++
		}
	}
	analysis.RecommendedType = determineRecommendedType(analysis)
	return analysis
}

// determineRecommendedType picks the narrowest type that holds every non-null cell.
// An all-null column is float, matching how an all-NA column reads as NaN.
func determineRecommendedType(a ColumnAnalysis) dataset.ColumnType {
	switch {
	case a.ValidCount == 0:
		return dataset.TypeFloat
	case a.TextCount > 0:
		return dataset.TypeText
	case a.FloatCount > 0:
		return dataset.TypeFloat
	default:
		return dataset.TypeInteger
	}
}

// CoerceColumn parses a raw column into a typed Column.
// Text columns keep every non-null cell as text, including ones that look numeric.
func (c *TypeCoercer) CoerceColumn(name string, raw []string) *dataset.Column {
	analysis := c.AnalyzeColumn(raw)
	col := &dataset.Column{
		Name:   name,
		Type:   analysis.RecommendedType,
		Values: make([]dataset.Value, len(raw)),
	}

	for i, cell := range raw {
		if c.IsMissing(cell) {
			col.Values[i] = dataset.Null
			continue
		}
		if c.config.TrimSpace {
			cell = strings.TrimSpace(cell)
		}
		switch col.Type {
		case dataset.TypeText:
			col.Values[i] = dataset.TextValue(cell)
		case dataset.TypeFloat:
			v := c.parseScalar(cell)
			f, _ := v.Float()
			col.Values[i] = dataset.FloatValue(f)
		default:
			col.Values[i] = c.parseScalar(cell)
		}
	}
	return col
}

// parseScalar parses one trimmed, non-null cell. Infinities and NaN spellings
// not in the null set stay text.
func (c *TypeCoercer) parseScalar(cell string) dataset.Value {
	if c.config.TrimSpace {
		cell = strings.TrimSpace(cell)
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return dataset.IntValue(i)
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return dataset.TextValue(cell)
		}
		return dataset.FloatValue(f)
	}
	return dataset.TextValue(cell)
}

// Categorize reinterprets a column as categorical, collecting its label set.
// Labels of numeric columns are ordered numerically, text labels lexically.
func Categorize(col *dataset.Column) {
	if col.Type == dataset.TypeCategorical {
		return
	}
	numeric := col.Type.IsNumeric()

	seen := make(map[string]float64)
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		f, _ := v.Float()
		seen[v.String()] = f
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if numeric && seen[labels[i]] != seen[labels[j]] {
			return seen[labels[i]] < seen[labels[j]]
		}
		return labels[i] < labels[j]
	})

	col.Type = dataset.TypeCategorical
	col.Labels = labels
}

// ApplyCategoricals coerces each named column that exists in columns.
// Names without a matching column are skipped; the applied names are returned in list order.
func ApplyCategoricals(columns []*dataset.Column, names []string) []string {
	byName := make(map[string]*dataset.Column, len(columns))
	for _, col := range columns {
		byName[col.Name] = col
	}

	applied := make([]string, 0, len(names))
	for _, name := range names {
		col, ok := byName[name]
		if !ok {
			continue
		}
		Categorize(col)
		applied = append(applied, name)
	}
	return applied
}
