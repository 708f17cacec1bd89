package config

import (
	"strings"

	"churnreport/internal/errors"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Data    DataConfig
	Server  ServerConfig
	Report  ReportConfig
	Logging LoggingConfig
}

// DataConfig names the source workbook and the sheet to read
type DataConfig struct {
	File  string
	Sheet string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ReportConfig holds report rendering settings
type ReportConfig struct {
	TargetColumn string
	PreviewRows  int
	AssetsDir    string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level       string
	Development bool
}

// Keys shared by environment variables and command-line flags
const (
	KeyDataFile     = "data_file"
	KeyDataSheet    = "data_sheet"
	KeyTargetColumn = "target_column"
	KeyPort         = "port"
	KeyLogLevel     = "log_level"
	KeyLogDev       = "log_dev"
	KeyPreviewRows  = "preview_rows"
	KeyAssetsDir    = "assets_dir"
)

// SetDefaults registers defaults and environment binding on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, "E Commerce Dataset.xlsx")
	v.SetDefault(KeyDataSheet, "E Comm")
	v.SetDefault(KeyTargetColumn, "Churn")
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDev, false)
	v.SetDefault(KeyPreviewRows, 10)
	v.SetDefault(KeyAssetsDir, "assets")

	// DATA_FILE, DATA_SHEET, ... map onto the lower-case keys
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from the process environment and validates it
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance (flags bound by the CLI)
func FromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Data: DataConfig{
			File:  strings.TrimSpace(v.GetString(KeyDataFile)),
			Sheet: v.GetString(KeyDataSheet),
		},
		Server: ServerConfig{
			Port: v.GetString(KeyPort),
		},
		Report: ReportConfig{
			TargetColumn: v.GetString(KeyTargetColumn),
			PreviewRows:  v.GetInt(KeyPreviewRows),
			AssetsDir:    v.GetString(KeyAssetsDir),
		},
		Logging: LoggingConfig{
			Level:       v.GetString(KeyLogLevel),
			Development: v.GetBool(KeyLogDev),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("data file is required")
	}
	if config.Report.PreviewRows < 1 {
		return errors.ConfigInvalid("preview rows must be positive")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	return nil
}
