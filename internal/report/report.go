package report

import (
	"context"
	"time"

	domainprofiling "churnreport/domain/datareadiness/profiling"
	"churnreport/domain/dataset"
	apperrors "churnreport/internal/errors"
	"churnreport/internal/profiling"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report is every derived section of one report generation
type Report struct {
	ID                 uuid.UUID                           `json:"id"`
	GeneratedAt        time.Time                           `json:"generated_at"`
	Source             string                              `json:"source"`
	Sheet              string                              `json:"sheet,omitempty"`
	Rows               int                                 `json:"rows"`
	Columns            int                                 `json:"columns"`
	Dictionary         []domainprofiling.ColumnDescriptor  `json:"dictionary"`
	Missing            []domainprofiling.MissingDescriptor `json:"missing"`
	ColumnsWithMissing int                                 `json:"columns_with_missing"`
	Target             *domainprofiling.TargetDistribution `json:"target,omitempty"`
	Numeric            []domainprofiling.NumericSummary    `json:"numeric"`
	Preview            Preview                             `json:"preview"`
}

// Preview is the first rows of the table formatted for display
type Preview struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Options controls which optional sections are built
type Options struct {
	TargetColumn string
	PreviewRows  int
	Distribution domainprofiling.DistributionConfig
}

// DefaultOptions returns the churn report settings
func DefaultOptions() Options {
	return Options{
		TargetColumn: "Churn",
		PreviewRows:  10,
		Distribution: domainprofiling.DefaultDistributionConfig(),
	}
}

// Builder derives a Report from a loaded table
type Builder struct {
	catalog dataset.DescriptionCatalog
	options Options
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// NewBuilder creates a builder bound to a description catalog
func NewBuilder(catalog dataset.DescriptionCatalog, options Options, logger *zap.SugaredLogger) *Builder {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Builder{
		catalog: catalog,
		options: options,
		logger:  logger,
		now:     time.Now,
	}
}

// Build computes all sections. The table is only read, so sections run concurrently.
// A missing target column drops the target section without failing the report.
func (b *Builder) Build(ctx context.Context, table *dataset.RecordTable) (*Report, error) {
	r := &Report{
		ID:          uuid.New(),
		GeneratedAt: b.now().UTC(),
		Source:      table.Source,
		Sheet:       table.Sheet,
		Rows:        table.RowCount,
		Columns:     len(table.Columns),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.Dictionary = profiling.VariableDictionary(table, b.catalog)
		return nil
	})
	g.Go(func() error {
		r.Missing = profiling.MissingSummary(table)
		r.ColumnsWithMissing = profiling.ColumnsWithMissing(r.Missing)
		return nil
	})
	g.Go(func() error {
		numeric, err := profiling.DescribeNumeric(table)
		if err != nil {
			return err
		}
		r.Numeric = numeric
		return nil
	})
	g.Go(func() error {
		target, err := profiling.SummarizeTarget(table, b.options.TargetColumn, b.options.Distribution)
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			b.logger.Warnf("[ReportBuilder] %v; target section omitted", err)
			return nil
		}
		if err != nil {
			return err
		}
		r.Target = target
		return nil
	})
	g.Go(func() error {
		r.Preview = buildPreview(table, b.options.PreviewRows)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Infof("[ReportBuilder] Report %s built: %d columns, %d rows, %d with missing values",
		r.ID, r.Columns, r.Rows, r.ColumnsWithMissing)
	return r, nil
}

func buildPreview(table *dataset.RecordTable, n int) Preview {
	if n > table.RowCount {
		n = table.RowCount
	}
	p := Preview{
		Headers: table.ColumnNames(),
		Rows:    make([][]string, 0, max(n, 0)),
	}
	for i := 0; i < n; i++ {
		values := table.Row(i)
		cells := make([]string, len(values))
		for j, v := range values {
			cells[j] = v.String()
		}
		p.Rows = append(p.Rows, cells)
	}
	return p
}
