// CLAUDE:SUMMARY CLI configuration: YAML file with defaults, then STANFOOD_* environment overrides (optionally from .env).
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/stanfood-menus/pkg/dict"
	"github.com/hazyhaar/stanfood-menus/pkg/filters"
)

const envPrefix = "STANFOOD_"

type config struct {
	DataDir       string              `yaml:"data_dir"`
	OutputDir     string              `yaml:"output_dir"`
	LedgerPath    string              `yaml:"ledger_path"`
	TablesPath    string              `yaml:"tables_path"`
	Timezone      string              `yaml:"timezone"`
	InputEncoding string              `yaml:"input_encoding"`
	LogLevel      string              `yaml:"log_level"`
	XLSX          bool                `yaml:"xlsx"`
	Exclusions    map[string][]string `yaml:"exclusions"`
}

func defaultConfig() config {
	return config{
		DataDir:    "data",
		OutputDir:  "output",
		LedgerPath: "stanfood.db",
		Timezone:   "America/Los_Angeles",
		LogLevel:   "info",
	}
}

// loadConfig reads the YAML file at path over the defaults. A missing file
// is not an error. Environment overrides are applied last.
func loadConfig(path string, logger *slog.Logger) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logger.Info("no config file, using defaults", "path", path)
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *config) error {
	for key, dst := range map[string]*string{
		"DATA_DIR":       &cfg.DataDir,
		"OUTPUT_DIR":     &cfg.OutputDir,
		"LEDGER_PATH":    &cfg.LedgerPath,
		"TABLES_PATH":    &cfg.TablesPath,
		"TIMEZONE":       &cfg.Timezone,
		"INPUT_ENCODING": &cfg.InputEncoding,
		"LOG_LEVEL":      &cfg.LogLevel,
	} {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(envPrefix + "XLSX"); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			cfg.XLSX = true
		case "0", "false", "no", "off", "":
			cfg.XLSX = false
		default:
			return fmt.Errorf("%sXLSX: invalid boolean %q", envPrefix, v)
		}
	}
	return nil
}

func (c config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

func (c config) location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c config) corrector() (*dict.Corrector, error) {
	if c.TablesPath == "" {
		return dict.Default(), nil
	}
	t, err := dict.LoadTables(c.TablesPath)
	if err != nil {
		return nil, err
	}
	return dict.New(t)
}

// exclusions returns the configured exclusion lists, or the defaults when
// the config names none.
func (c config) exclusions() filters.Exclusions {
	if c.Exclusions == nil {
		return filters.DefaultExclusions()
	}
	return filters.NewExclusions(c.Exclusions)
}
