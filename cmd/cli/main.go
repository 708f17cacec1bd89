package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"churnreport/internal/config"
	"churnreport/internal/container"
	"churnreport/internal/report"
	"churnreport/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "churnreport",
		Short:        "Customer churn report: variable dictionary, missing values and target distribution",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("file", "", "Data source (.xlsx or .csv) [DATA_FILE]")
	flags.String("sheet", "", "Sheet to read from an Excel workbook [DATA_SHEET]")
	flags.String("target", "", "Outcome column [TARGET_COLUMN]")
	flags.String("log-level", "", "Log level: error|warn|info|debug [LOG_LEVEL]")
	flags.Bool("log-dev", false, "Human-readable console logs [LOG_DEV]")

	config.SetDefaults(v)
	_ = v.BindPFlag(config.KeyDataFile, flags.Lookup("file"))
	_ = v.BindPFlag(config.KeyDataSheet, flags.Lookup("sheet"))
	_ = v.BindPFlag(config.KeyTargetColumn, flags.Lookup("target"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogDev, flags.Lookup("log-dev"))

	rootCmd.AddCommand(
		newServeCmd(v),
		newDictionaryCmd(v),
		newMissingCmd(v),
		newExportCmd(v),
	)
	return rootCmd
}

// generate loads configuration, the dataset and the report in one step
func generate(ctx context.Context, v *viper.Viper) (*container.Container, *report.Report, error) {
	cfg, err := config.FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	c, err := container.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	r, err := c.Generate(ctx)
	if err != nil {
		c.Shutdown()
		return nil, nil, err
	}
	return c, r, nil
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive report over HTTP",
		Long: `Load the dataset once, build the report and serve it.

Example: churnreport serve --file "E Commerce Dataset.xlsx" --sheet "E Comm" --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := generate(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer c.Shutdown()

			app, err := ui.NewApp(ui.Config{
				Report:    r,
				AssetsDir: c.Config.Report.AssetsDir,
				Logger:    c.Logger,
			})
			if err != nil {
				return err
			}
			return app.Start(":" + c.Config.Server.Port)
		},
	}

	cmd.Flags().String("port", "", "HTTP port [PORT]")
	cmd.Flags().String("assets", "", "Directory with report images [ASSETS_DIR]")
	cmd.Flags().Int("preview-rows", 0, "Rows shown in the dataset preview [PREVIEW_ROWS]")
	_ = v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))
	_ = v.BindPFlag(config.KeyAssetsDir, cmd.Flags().Lookup("assets"))
	_ = v.BindPFlag(config.KeyPreviewRows, cmd.Flags().Lookup("preview-rows"))

	return cmd
}

func newDictionaryCmd(v *viper.Viper) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Write the variable dictionary as CSV (variable,dtype,descripcion)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := generate(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer c.Shutdown()

			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return report.WriteDictionaryCSV(w, r.Dictionary)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newMissingCmd(v *viper.Viper) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Write the missing-value summary as CSV (variable,dtype,n_missing,pct_missing)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := generate(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer c.Shutdown()

			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return report.WriteMissingCSV(w, r.Missing)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newExportCmd(v *viper.Viper) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dictionary and missing-value summary to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, r, err := generate(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer c.Shutdown()

			return exportWorkbook(cmd.OutOrStdout(), out, r, c.Logger)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", report.WorkbookFileName, "Output workbook (empty for stdout)")
	return cmd
}

// exportWorkbook writes the report workbook to out, or to stdout when out is empty
func exportWorkbook(stdout io.Writer, out string, r *report.Report, logger *zap.SugaredLogger) error {
	if err := writeOutput(stdout, out, func(w io.Writer) error {
		return report.WriteWorkbook(w, r)
	}); err != nil {
		return err
	}
	if out != "" {
		logger.Infof("[CLI] Workbook written to %s", out)
	}
	return nil
}

// writeOutput writes to path, or to stdout when path is empty
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
