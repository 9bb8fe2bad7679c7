package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sumry/dataset"
)

// loadDelimited reads a whole .csv or .tsv file. The first row is the
// header, every following row is a record. The file handle is wrapped in
// a counting reader so the report can show how many bytes were parsed.
func loadDelimited(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	var parsed int64
	r := csv.NewReader(&callbackReader{
		srcReader: file,
		cb:        func(n int) { parsed += int64(n) },
	})
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse: missing header row")
	}

	names, records := tabulate(rows[0], rows[1:])
	return &dataset.Dataset{
		Columns:   inferColumns(names, records),
		Records:   records,
		BytesRead: parsed,
	}, nil
}

// tabulate turns a header row and raw data rows into named columns and
// records. Cells are trimmed, empty cells become missing values, short
// rows are padded with missing values.
func tabulate(header []string, rows [][]string) ([]string, []dataset.Record) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	records := make([]dataset.Record, 0, len(rows))
	for _, row := range rows {
		cells := make([]any, len(names))
		for i := range names {
			if i >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[i]); v != "" {
				cells[i] = v
			}
		}
		records = append(records, dataset.Record{Cells: cells})
	}
	return names, records
}
