package profiling

import (
	"fmt"
	"math"
	"sort"

	"churnreport/domain/datareadiness/profiling"
	"churnreport/domain/dataset"
	apperrors "churnreport/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrTargetNotFound is returned when the outcome column is absent from the table
var ErrTargetNotFound = apperrors.NotFound("target column")

// DescribeNumeric computes summary statistics for every integer and float
// column, sorted by name. Columns without a single non-null value are skipped.
func DescribeNumeric(table *dataset.RecordTable) ([]profiling.NumericSummary, error) {
	summaries := make([]profiling.NumericSummary, 0)
	for _, col := range table.Columns {
		if !col.Type.IsNumeric() {
			continue
		}
		data := numericValues(col)
		if len(data) == 0 {
			continue
		}
		summary, err := describe(col, data)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", col.Name, err)
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Variable < summaries[j].Variable
	})
	return summaries, nil
}

func numericValues(col *dataset.Column) stats.Float64Data {
	data := make(stats.Float64Data, 0, len(col.Values))
	for _, v := range col.Values {
		if f, ok := v.Float(); ok {
			data = append(data, f)
		}
	}
	return data
}

func describe(col *dataset.Column, data stats.Float64Data) (profiling.NumericSummary, error) {
	summary := profiling.NumericSummary{
		Variable: col.Name,
		DType:    col.Type,
		Count:    len(data),
	}

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}
	// all three quartiles use nearest rank, which is defined for any sample size
	if summary.Q25, err = stats.PercentileNearestRank(data, 25); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.PercentileNearestRank(data, 50); err != nil {
		return summary, err
	}
	if summary.Q75, err = stats.PercentileNearestRank(data, 75); err != nil {
		return summary, err
	}

	// Sample standard deviation needs two observations; a single one reports 0
	if len(data) > 1 {
		if summary.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// SummarizeTarget counts the classes of the outcome column and estimates the
// positive rate with a Wilson score interval.
func SummarizeTarget(table *dataset.RecordTable, column string, config profiling.DistributionConfig) (*profiling.TargetDistribution, error) {
	col, ok := table.Column(column)
	if !ok {
		return nil, apperrors.Wrapf(ErrTargetNotFound, "column %q", column)
	}

	counts := make(map[string]int)
	dist := &profiling.TargetDistribution{Variable: column}
	for _, v := range col.Values {
		if v.IsNull() {
			dist.Missing++
			continue
		}
		counts[v.String()]++
		dist.Total++
	}

	for value, n := range counts {
		label, ok := config.Labels[value]
		if !ok {
			label = value
		}
		dist.Classes = append(dist.Classes, profiling.ClassShare{
			Value:   value,
			Label:   label,
			Count:   n,
			Percent: Percent(n, dist.Total, 1),
		})
	}
	sort.Slice(dist.Classes, func(i, j int) bool {
		if dist.Classes[i].Count != dist.Classes[j].Count {
			return dist.Classes[i].Count > dist.Classes[j].Count
		}
		return dist.Classes[i].Value < dist.Classes[j].Value
	})

	if dist.Total == 0 {
		return dist, nil
	}

	positives := counts[config.PositiveValue]
	dist.PositiveRate = float64(positives) / float64(dist.Total)
	dist.CILow, dist.CIHigh = wilsonInterval(positives, dist.Total, config.Confidence)

	minority := dist.Classes[len(dist.Classes)-1].Count
	if len(dist.Classes) < 2 {
		minority = 0
	}
	dist.Imbalanced = float64(minority)/float64(dist.Total) < config.ImbalanceThreshold

	return dist, nil
}

// wilsonInterval returns the Wilson score interval for successes out of n trials
func wilsonInterval(successes, n int, confidence float64) (float64, float64) {
	if n == 0 {
		return 0, 0
	}
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	p := float64(successes) / float64(n)
	nf := float64(n)

	denom := 1 + z*z/nf
	center := (p + z*z/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf)) / denom

	low, high := math.Max(0, center-half), math.Min(1, center+half)
	if successes == 0 {
		low = 0
	}
	if successes == n {
		high = 1
	}
	return low, high
}
