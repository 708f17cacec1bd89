package config

import (
	"testing"

	apperrors "churnreport/internal/errors"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "E Commerce Dataset.xlsx", cfg.Data.File)
	assert.Equal(t, "E Comm", cfg.Data.Sheet)
	assert.Equal(t, "Churn", cfg.Report.TargetColumn)
	assert.Equal(t, 10, cfg.Report.PreviewRows)
	assert.Equal(t, "assets", cfg.Report.AssetsDir)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATA_FILE", " churn.csv ")
	t.Setenv("DATA_SHEET", "Hoja1")
	t.Setenv("TARGET_COLUMN", "Exited")
	t.Setenv("PORT", "9090")
	t.Setenv("PREVIEW_ROWS", "25")
	t.Setenv("LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "churn.csv", cfg.Data.File)
	assert.Equal(t, "Hoja1", cfg.Data.Sheet)
	assert.Equal(t, "Exited", cfg.Report.TargetColumn)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Report.PreviewRows)
	assert.True(t, cfg.Logging.Development)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  interface{}
	}{
		{name: "blank data file", key: KeyDataFile, val: "   "},
		{name: "zero preview rows", key: KeyPreviewRows, val: 0},
		{name: "empty port", key: KeyPort, val: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)

			cfg, err := FromViper(v)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, apperrors.CodeConfigInvalid))
		})
	}
}
