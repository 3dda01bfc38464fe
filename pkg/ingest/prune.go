package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Prune removes the date directories (M-D-YYYY) directly under dataDir whose
// date is before now's calendar day in now's location. Entries that are not
// date directories are left alone. It returns the removed directories.
func Prune(dataDir string, now time.Time, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("read data dir %s: %w", dataDir, err)
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var removed []string
	for _, e := range entries {
		day, err := time.ParseInLocation("1-2-2006", e.Name(), loc)
		if err != nil {
			logger.Debug("skipping non-date entry", "name", e.Name())
			continue
		}
		if !e.IsDir() || !day.Before(today) {
			continue
		}
		dir := filepath.Join(dataDir, e.Name())
		if err := os.RemoveAll(dir); err != nil {
			return removed, fmt.Errorf("remove %s: %w", dir, err)
		}
		logger.Info("removed old menu directory", "dir", dir)
		removed = append(removed, dir)
	}

	if len(removed) == 0 {
		logger.Info("no old menu directories found", "data_dir", dataDir)
	}
	return removed, nil
}
