// CLAUDE:SUMMARY Batch driver: finds menu CSVs under the data dir, parses each, records per-file outcomes, combines Dishes.
package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hazyhaar/stanfood-menus/pkg/menu"
)

// ErrNoDishes is returned when a batch produced no Dish at all.
var ErrNoDishes = errors.New("no dishes were processed")

// Batch is the combined outcome of one pipeline run.
type Batch struct {
	Dishes []menu.Dish
	Files  []FileRecord
}

// Count returns how many files ended with status s.
func (b Batch) Count(s Status) int {
	n := 0
	for _, f := range b.Files {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Collect returns every *.csv file under dir, sorted.
func Collect(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Runner parses menu files one after another. A file that cannot be read is
// dropped from the batch; it never stops the run.
type Runner struct {
	parser *menu.Parser
	ledger *Ledger
	opts   menu.ReadOptions
	logger *slog.Logger
}

// NewRunner creates a Runner. ledger may be nil; a nil logger falls back to
// slog.Default().
func NewRunner(parser *menu.Parser, ledger *Ledger, opts menu.ReadOptions, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{parser: parser, ledger: ledger, opts: opts, logger: logger}
}

// Run processes paths in order and returns the combined Dishes.
func (r *Runner) Run(paths []string) Batch {
	var b Batch
	b.Dishes = []menu.Dish{}
	for _, path := range paths {
		rec := r.runOne(path, &b)
		b.Files = append(b.Files, rec)
		if r.ledger != nil {
			if err := r.ledger.Record(rec); err != nil {
				r.logger.Warn("ledger write failed", "file", path, "error", err)
			}
		}
	}

	r.logger.Info("batch processed",
		"files", len(paths),
		"ok", b.Count(StatusOK),
		"placeholder", b.Count(StatusPlaceholder),
		"failed", b.Count(StatusFailed),
		"dishes", len(b.Dishes),
	)
	return b
}

func (r *Runner) runOne(path string, b *Batch) FileRecord {
	res, err := r.parser.ParseFile(path, r.opts)
	if err != nil {
		r.logger.Error("dropping menu file", "file", path, "error", err)
		msg := err.Error()
		origin, _ := menu.ParseFilename(path)
		return FileRecord{
			Path:     path,
			Location: origin.Location,
			Date:     origin.Date,
			MealTime: origin.MealTime,
			Status:   StatusFailed,
			Error:    &msg,
		}
	}

	b.Dishes = append(b.Dishes, res.Dishes...)
	rec := FileRecord{
		Path:     path,
		Location: res.Origin.Location,
		Date:     res.Origin.Date,
		MealTime: res.Origin.MealTime,
		Status:   StatusOK,
		Skipped:  res.Skipped,
	}
	if res.Placeholder {
		rec.Status = StatusPlaceholder
	} else {
		rec.Dishes = len(res.Dishes)
	}
	return rec
}

// SaveDishes writes dishes as the combined JSON artifact.
func SaveDishes(path string, dishes []menu.Dish) error {
	if dishes == nil {
		dishes = []menu.Dish{}
	}
	return WriteJSON(path, dishes)
}

// LoadDishes reads a combined JSON artifact written by SaveDishes.
func LoadDishes(path string) ([]menu.Dish, error) {
	var dishes []menu.Dish
	if err := ReadJSON(path, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}
