package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/badele/namenorm/internal/processor"
)

type Config struct {
	Normalize NormalizeConfig `koanf:"normalize"`
	Log       LogConfig       `koanf:"log"`
}

// NormalizeConfig describes the normalization pipeline. Character sets are
// written as plain strings, each character being one entry.
type NormalizeConfig struct {
	ExtraSeparators string `koanf:"extra_separators"` // e.g. ",;"
	Replace         string `koanf:"replace"`          // characters to substitute
	ReplaceWith     string `koanf:"replace_with"`     // single substitute character
	StripDiacritics bool   `koanf:"strip_diacritics"`
	Case            string `koanf:"case"` // "lower", "upper", "name" or "keep"
}

// LogConfig holds the CLI logger settings.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text, json
}

func Default() *Config {
	return &Config{
		Normalize: NormalizeConfig{
			StripDiacritics: true,
			Case:            string(processor.CaseLower),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the default config files in order of priority (last wins).
// Missing files are skipped.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files over the defaults, skipping the ones
// that do not exist.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if _, err := cfg.Normalize.Options(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Options converts the normalize section to pipeline options.
func (n NormalizeConfig) Options() (processor.Options, error) {
	mode, err := processor.ParseCaseMode(strings.ToLower(n.Case))
	if err != nil {
		return processor.Options{}, err
	}

	opts := processor.Options{
		ExtraSeparators: []rune(n.ExtraSeparators),
		Replace:         []rune(n.Replace),
		StripDiacritics: n.StripDiacritics,
		Case:            mode,
	}

	with := []rune(n.ReplaceWith)
	switch {
	case len(with) == 1:
		opts.ReplaceWith = with[0]
	case len(with) > 1:
		return processor.Options{}, fmt.Errorf("replace_with must be a single character, got %q", n.ReplaceWith)
	case len(opts.Replace) > 0:
		return processor.Options{}, fmt.Errorf("replace_with is required when replace is set")
	}

	return opts, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/namenorm/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "namenorm", "config.toml"))
	}

	// 2. ./namenorm.toml (pwd, highest priority)
	paths = append(paths, "namenorm.toml")

	return paths
}
