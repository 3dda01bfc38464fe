package ingest

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"

	_ "modernc.org/sqlite"
)

// Status is the outcome of processing one menu file.
type Status string

const (
	StatusOK          Status = "ok"
	StatusPlaceholder Status = "placeholder"
	StatusFailed      Status = "failed"
)

// FileRecord represents a row from the ingest_files table.
type FileRecord struct {
	Path        string
	Location    string
	Date        string
	MealTime    string
	Status      Status
	Dishes      int
	Skipped     int
	Error       *string
	ProcessedAt int64
}

// Ledger manages the ingest_files SQLite table: the last outcome of every
// menu file the pipeline has seen.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens (or creates) the SQLite database at path and ensures the
// ingest_files table exists.
func OpenLedger(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS ingest_files (
		path          TEXT PRIMARY KEY,
		location      TEXT NOT NULL DEFAULT '',
		date          TEXT NOT NULL DEFAULT '',
		meal_time     TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL,
		dishes        INTEGER NOT NULL DEFAULT 0,
		skipped       INTEGER NOT NULL DEFAULT 0,
		error         TEXT,
		processed_at  INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create ingest_files table: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the SQLite connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores the outcome for rec.Path, replacing any earlier one.
// A zero ProcessedAt is set to now.
func (l *Ledger) Record(rec FileRecord) error {
	if rec.ProcessedAt == 0 {
		rec.ProcessedAt = time.Now().Unix()
	}
	const q = `INSERT INTO ingest_files
		(path, location, date, meal_time, status, dishes, skipped, error, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			location = excluded.location,
			date = excluded.date,
			meal_time = excluded.meal_time,
			status = excluded.status,
			dishes = excluded.dishes,
			skipped = excluded.skipped,
			error = excluded.error,
			processed_at = excluded.processed_at`
	_, err := l.db.Exec(q, rec.Path, rec.Location, rec.Date, rec.MealTime, string(rec.Status),
		rec.Dishes, rec.Skipped, rec.Error, rec.ProcessedAt)
	if err != nil {
		return fmt.Errorf("record %s: %w", rec.Path, err)
	}
	return nil
}

// Get returns the stored outcome for path.
func (l *Ledger) Get(path string) (FileRecord, error) {
	row := l.db.QueryRow(`SELECT path, location, date, meal_time, status, dishes, skipped,
		error, processed_at FROM ingest_files WHERE path = ?`, path)
	rec, err := scanRecord(row)
	if err != nil {
		return FileRecord{}, fmt.Errorf("get %s: %w", path, err)
	}
	return rec, nil
}

// ListFiles returns all rows from ingest_files ordered by path.
func (l *Ledger) ListFiles() ([]FileRecord, error) {
	rows, err := l.db.Query(`SELECT path, location, date, meal_time, status, dishes, skipped,
		error, processed_at FROM ingest_files ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var recs []FileRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// ForgetDir deletes the rows of every file under dir and returns how many
// were removed.
func (l *Ledger) ForgetDir(dir string) (int64, error) {
	prefix := dir + string(filepath.Separator)
	res, err := l.db.Exec(`DELETE FROM ingest_files WHERE substr(path, 1, ?) = ?`,
		utf8.RuneCountInString(prefix), prefix)
	if err != nil {
		return 0, fmt.Errorf("forget %s: %w", dir, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (FileRecord, error) {
	var rec FileRecord
	var status string
	err := s.Scan(&rec.Path, &rec.Location, &rec.Date, &rec.MealTime, &status,
		&rec.Dishes, &rec.Skipped, &rec.Error, &rec.ProcessedAt)
	rec.Status = Status(status)
	return rec, err
}
