// CLAUDE:SUMMARY YAML schema for the correction tables (joined words, known terms, canonical names) and their loaders.
package dict

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/stanfood-menus/pkg/text"
)

//go:embed tables.yaml
var defaultTables []byte

// Tables holds the substitution tables applied to menu text.
type Tables struct {
	JoinedWords   []WordPair        `yaml:"joined_words"`
	KnownTerms    []Replacement     `yaml:"known_terms"`
	Canonical     map[string]string `yaml:"canonical"`
	CanonicalFile *CanonicalFile    `yaml:"canonical_file,omitempty"`
}

// WordPair is two words the source data tends to write without a space.
type WordPair struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// Replacement rewrites a whole-word phrase.
type Replacement struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// CanonicalFile points at a two-column CSV (source, canonical) that extends
// the canonical table.
type CanonicalFile struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
	HasHeader bool   `yaml:"has_header"`
}

// DefaultTables returns the tables compiled into the binary.
func DefaultTables() *Tables {
	t, err := parseTables(defaultTables)
	if err != nil {
		panic(fmt.Sprintf("embedded tables.yaml: %v", err))
	}
	return t
}

// LoadTables reads a tables YAML file. A canonical_file path is resolved
// relative to the YAML file and merged into Canonical; YAML entries win.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables %s: %w", path, err)
	}
	t, err := parseTables(data)
	if err != nil {
		return nil, fmt.Errorf("parse tables %s: %w", path, err)
	}

	if cf := t.CanonicalFile; cf != nil && cf.Path != "" {
		csvPath := cf.Path
		if !filepath.IsAbs(csvPath) {
			csvPath = filepath.Join(filepath.Dir(path), csvPath)
		}
		extra, err := loadCanonicalCSV(csvPath, cf)
		if err != nil {
			return nil, fmt.Errorf("tables %s: %w", path, err)
		}
		for k, v := range extra {
			if _, exists := t.Canonical[k]; !exists {
				t.Canonical[k] = v
			}
		}
	}
	return t, nil
}

func parseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	for i, p := range t.JoinedWords {
		if p.First == "" || p.Second == "" {
			return nil, fmt.Errorf("joined_words[%d]: both words required", i)
		}
	}
	for i, r := range t.KnownTerms {
		if r.From == "" {
			return nil, fmt.Errorf("known_terms[%d]: empty from", i)
		}
	}
	if t.Canonical == nil {
		t.Canonical = make(map[string]string)
	}
	return &t, nil
}

func loadCanonicalCSV(path string, cf *CanonicalFile) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open canonical file: %w", err)
	}
	defer f.Close()

	reader, err := text.NewDecodingReader(f, cf.Encoding)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(reader)
	if cf.Delimiter != "" {
		r.Comma = []rune(cf.Delimiter)[0]
	}
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	if cf.HasHeader {
		if _, err := r.Read(); err != nil && err != io.EOF {
			return nil, fmt.Errorf("read header: %w", err)
		}
	}

	out := make(map[string]string)
	var collisions int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		key := strings.TrimSpace(record[0])
		if key == "" {
			continue
		}
		if _, exists := out[key]; exists {
			collisions++
		}
		out[key] = strings.TrimSpace(record[1])
	}

	if collisions > 0 {
		slog.Warn("duplicate canonical names", "file", path, "collisions", collisions)
	}
	return out, nil
}
