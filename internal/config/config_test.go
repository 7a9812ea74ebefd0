package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badele/namenorm/internal/processor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "namenorm.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFilesDefaults(t *testing.T) {
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	opts, err := cfg.Normalize.Options()
	require.NoError(t, err)
	assert.True(t, opts.StripDiacritics)
	assert.Equal(t, processor.CaseLower, opts.Case)
}

func TestLoadFiles(t *testing.T) {
	path := writeConfig(t, `
[normalize]
extra_separators = ",;"
replace = "–—"
replace_with = "-"
strip_diacritics = false
case = "NAME"

[log]
level = "DEBUG"
format = "json"
`)

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	opts, err := cfg.Normalize.Options()
	require.NoError(t, err)
	assert.Equal(t, []rune{',', ';'}, opts.ExtraSeparators)
	assert.Equal(t, []rune{'–', '—'}, opts.Replace)
	assert.Equal(t, '-', opts.ReplaceWith)
	assert.False(t, opts.StripDiacritics)
	assert.Equal(t, processor.CaseName, opts.Case)
}

func TestLoadFilesLastWins(t *testing.T) {
	first := writeConfig(t, "[normalize]\ncase = \"upper\"\nextra_separators = \",\"\n")
	second := writeConfig(t, "[normalize]\ncase = \"keep\"\n")

	cfg, err := LoadFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, "keep", cfg.Normalize.Case)
	assert.Equal(t, ",", cfg.Normalize.ExtraSeparators)
}

func TestLoadFilesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"Malformed", "[normalize\ncase = ", "config"},
		{"Unknown case", "[normalize]\ncase = \"title\"\n", "unknown case mode"},
		{"Long replacement", "[normalize]\nreplace = \"-\"\nreplace_with = \"ab\"\n", "single character"},
		{"Missing replacement", "[normalize]\nreplace = \"-\"\n", "replace_with is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFiles(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
