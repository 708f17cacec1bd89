package container

import (
	"context"

	"churnreport/adapters/excel"
	"churnreport/domain/dataset"
	"churnreport/internal/config"
	"churnreport/internal/errors"
	"churnreport/internal/logging"
	"churnreport/internal/report"

	"go.uber.org/zap"
)

// Container holds the application dependencies for one report generation
type Container struct {
	Config *config.Config
	Logger *zap.SugaredLogger

	Reader  *excel.DataReader
	Builder *report.Builder

	Table  *dataset.RecordTable
	Report *report.Report
}

// New creates the container and its logger. Nothing is loaded yet.
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.InternalError("config cannot be nil")
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	loaderConfig := excel.DefaultLoaderConfig()
	loaderConfig.FilePath = cfg.Data.File
	loaderConfig.Sheet = cfg.Data.Sheet

	options := report.DefaultOptions()
	options.TargetColumn = cfg.Report.TargetColumn
	options.PreviewRows = cfg.Report.PreviewRows

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Reader:  excel.NewDataReader(loaderConfig, logger),
		Builder: report.NewBuilder(dataset.ECommerceDescriptions(), options, logger),
	}, nil
}

// Generate loads the dataset once and builds the report from it.
// A LoadError aborts generation and leaves Table and Report unset.
func (c *Container) Generate(ctx context.Context) (*report.Report, error) {
	table, err := c.Reader.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dataset")
	}

	r, err := c.Builder.Build(ctx, table)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build report")
	}

	c.Table = table
	c.Report = r
	return r, nil
}

// Shutdown flushes buffered log entries
func (c *Container) Shutdown() {
	_ = c.Logger.Sync()
}
