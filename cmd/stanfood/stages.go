// CLAUDE:SUMMARY Pipeline stages behind the CLI: process menu CSVs, build filter tables, prune old dates, list the ledger.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/stanfood-menus/pkg/filters"
	"github.com/hazyhaar/stanfood-menus/pkg/ingest"
	"github.com/hazyhaar/stanfood-menus/pkg/menu"
)

const (
	dishesFile = "combined_dishes.json"
	xlsxFile   = "filters.xlsx"
)

func cmdRun(args []string) error {
	cfg, logger, err := setup("run", args)
	if err != nil {
		return err
	}
	dishes, err := processStage(cfg, logger)
	if err != nil {
		return fmt.Errorf("process stage: %w", err)
	}
	if err := filtersStage(cfg, dishes, logger); err != nil {
		return fmt.Errorf("filters stage: %w", err)
	}
	return nil
}

func cmdProcess(args []string) error {
	cfg, logger, err := setup("process", args)
	if err != nil {
		return err
	}
	_, err = processStage(cfg, logger)
	return err
}

func cmdFilters(args []string) error {
	cfg, logger, err := setup("filters", args)
	if err != nil {
		return err
	}
	dishes, err := ingest.LoadDishes(filepath.Join(cfg.OutputDir, dishesFile))
	if err != nil {
		return err
	}
	return filtersStage(cfg, dishes, logger)
}

func cmdPrune(args []string) error {
	cfg, logger, err := setup("prune", args)
	if err != nil {
		return err
	}
	return pruneStage(cfg, time.Now(), logger)
}

func cmdFiles(args []string) error {
	cfg, _, err := setup("files", args)
	if err != nil {
		return err
	}
	ledger, err := ingest.OpenLedger(cfg.LedgerPath)
	if err != nil {
		return err
	}
	defer ledger.Close()

	files, err := ledger.ListFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No menu files processed yet.")
		return nil
	}
	for _, f := range files {
		line := fmt.Sprintf("  %-12s %4d dishes %3d skipped  %s", f.Status, f.Dishes, f.Skipped, f.Path)
		if f.Error != nil {
			line += "  (" + *f.Error + ")"
		}
		fmt.Println(line)
	}
	return nil
}

// processStage parses every menu CSV under the data dir and writes the
// combined dishes. A batch without any Dish is an error.
func processStage(cfg config, logger *slog.Logger) ([]menu.Dish, error) {
	c, err := cfg.corrector()
	if err != nil {
		return nil, err
	}
	paths, err := ingest.Collect(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	ledger, err := ingest.OpenLedger(cfg.LedgerPath)
	if err != nil {
		return nil, err
	}
	defer ledger.Close()

	runner := ingest.NewRunner(menu.NewParser(c, logger), ledger, menu.ReadOptions{Encoding: cfg.InputEncoding}, logger)
	batch := runner.Run(paths)
	if len(batch.Dishes) == 0 {
		logger.Warn("no dishes processed", "data_dir", cfg.DataDir, "files", len(paths))
		return nil, ingest.ErrNoDishes
	}

	out := filepath.Join(cfg.OutputDir, dishesFile)
	if err := ingest.SaveDishes(out, batch.Dishes); err != nil {
		return nil, err
	}
	logger.Info("combined dishes written", "path", out, "dishes", len(batch.Dishes))
	return batch.Dishes, nil
}

// filtersStage aggregates dishes and writes the filter tables.
func filtersStage(cfg config, dishes []menu.Dish, logger *slog.Logger) error {
	table := filters.Aggregate(dishes, cfg.exclusions())
	if err := filters.WriteJSON(cfg.OutputDir, table); err != nil {
		return err
	}
	for _, c := range filters.Categories {
		logger.Info("filter written", "category", c, "entries", len(table[c]))
	}

	if cfg.XLSX {
		path := filepath.Join(cfg.OutputDir, xlsxFile)
		if err := filters.WriteXLSX(path, table); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("filter workbook written", "path", path)
	}
	return nil
}

// pruneStage removes past date directories and forgets their files in the
// ledger. The ledger is only touched when it already exists.
func pruneStage(cfg config, now time.Time, logger *slog.Logger) error {
	loc, err := cfg.location()
	if err != nil {
		return err
	}
	removed, err := ingest.Prune(cfg.DataDir, now.In(loc), logger)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		return nil
	}
	if _, err := os.Stat(cfg.LedgerPath); err != nil {
		return nil
	}

	ledger, err := ingest.OpenLedger(cfg.LedgerPath)
	if err != nil {
		return err
	}
	defer ledger.Close()
	for _, dir := range removed {
		n, err := ledger.ForgetDir(dir)
		if err != nil {
			return err
		}
		logger.Debug("ledger entries removed", "dir", dir, "count", n)
	}
	return nil
}
