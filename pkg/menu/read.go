package menu

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/hazyhaar/stanfood-menus/pkg/text"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// ReadOptions controls how a menu CSV is decoded.
type ReadOptions struct {
	// Encoding is a WHATWG encoding label; empty means UTF-8.
	Encoding string
}

// ReadFile returns every record of the CSV at path, header included.
// Rows may have any number of fields; an empty file yields no records.
func ReadFile(path string, opts ReadOptions) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	records, err := readRecords(f, opts)
	if err != nil {
		return nil, fmt.Errorf("menu file %s: %w", path, err)
	}
	return records, nil
}

func readRecords(r io.Reader, opts ReadOptions) ([][]string, error) {
	r, err := text.NewDecodingReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}
