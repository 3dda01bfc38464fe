package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hazyhaar/stanfood-menus/pkg/filters"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "none.yaml"), discardLogger())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, defaultConfig()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte(`
data_dir: menus
output_dir: public/data
xlsx: true
exclusions:
  ingredients: [Salt, Water]
  allergens: [Vegan]
`), 0o644)

	cfg, err := loadConfig(path, discardLogger())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DataDir != "menus" || cfg.OutputDir != "public/data" || !cfg.XLSX {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Timezone != "America/Los_Angeles" {
		t.Errorf("Timezone = %q, want default kept", cfg.Timezone)
	}

	ex := cfg.exclusions()
	if !ex.Has(filters.Allergens, "Vegan") || !ex.Has(filters.Ingredients, "Water") {
		t.Errorf("exclusions = %v", ex)
	}
	if ex.Has(filters.Ingredients, "Sugar") {
		t.Error("configured exclusions should replace the defaults")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644)
	if _, err := loadConfig(path, discardLogger()); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STANFOOD_DATA_DIR", "/srv/menus")
	t.Setenv("STANFOOD_LOG_LEVEL", "debug")
	t.Setenv("STANFOOD_XLSX", "yes")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "none.yaml"), discardLogger())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DataDir != "/srv/menus" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/srv/menus")
	}
	if !cfg.XLSX {
		t.Error("XLSX not enabled from env")
	}
	if l, err := cfg.level(); err != nil || l != slog.LevelDebug {
		t.Errorf("level = %v, %v, want debug", l, err)
	}
}

func TestLoadConfig_BadEnvBool(t *testing.T) {
	t.Setenv("STANFOOD_XLSX", "maybe")
	if _, err := loadConfig(filepath.Join(t.TempDir(), "none.yaml"), discardLogger()); err == nil {
		t.Error("expected error for invalid STANFOOD_XLSX")
	}
}

func TestConfig_DefaultExclusions(t *testing.T) {
	if !defaultConfig().exclusions().Has(filters.Ingredients, "Salt") {
		t.Error("default config should exclude Salt")
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := defaultConfig()
	if _, err := cfg.location(); err != nil {
		t.Errorf("location: %v", err)
	}
	cfg.Timezone = "Nowhere/Atlantis"
	if _, err := cfg.location(); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
