package reader

import (
	"strconv"
	"strings"
	"time"

	"sumry/dataset"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// classifyString reports the scalar type of one textual cell value.
func classifyString(v string) string {
	if v == "" {
		return dataset.TypeEmpty
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return dataset.TypeInteger
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return dataset.TypeFloat
	}
	switch strings.ToLower(v) {
	case "true", "false":
		return dataset.TypeBoolean
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return dataset.TypeDate
		}
	}
	return dataset.TypeString
}

// classifyCell handles cells that are already typed (decoded JSON values)
// as well as plain strings.
func classifyCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return dataset.TypeEmpty
	case bool:
		return dataset.TypeBoolean
	case float64:
		// JSON numbers decode as float64, keep integral ones as integers
		// so a column of whole numbers does not degrade to float.
		if v == float64(int64(v)) {
			return dataset.TypeInteger
		}
		return dataset.TypeFloat
	case int:
		return dataset.TypeInteger
	case int64:
		return dataset.TypeInteger
	case string:
		return classifyString(v)
	}
	return dataset.TypeString
}

// inferColumns assigns a type to each column from the cell values of the
// given records. A column of mixed integers and floats is a float column,
// any other mixture degrades to string. Columns with no values are "empty".
func inferColumns(names []string, records []dataset.Record) []dataset.Column {
	columns := make([]dataset.Column, len(names))
	for i, name := range names {
		seen := make(map[string]int)
		for _, rec := range records {
			if i >= len(rec.Cells) || rec.Cells[i] == nil {
				continue
			}
			seen[classifyCell(rec.Cells[i])]++
		}
		columns[i] = dataset.Column{Name: name, Type: resolveType(seen)}
	}
	return columns
}

func resolveType(seen map[string]int) string {
	delete(seen, dataset.TypeEmpty)
	if len(seen) == 0 {
		return dataset.TypeEmpty
	}
	if len(seen) == 1 {
		for t := range seen {
			return t
		}
	}
	if len(seen) == 2 && seen[dataset.TypeInteger] > 0 && seen[dataset.TypeFloat] > 0 {
		return dataset.TypeFloat
	}
	return dataset.TypeString
}
