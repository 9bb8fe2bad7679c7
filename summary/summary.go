// Package summary reduces a loaded dataset to the report the renderer
// prints: file facts, column table, geometry rollup, optional sample and
// per-column statistics.
package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/slices"

	"sumry/dataset"
	"sumry/format"
)

const DefaultSampleSize = 5

// Options control what goes into a report beyond the always-present
// facts and column table. Verbose is strictly additive.
type Options struct {
	ShowSample bool
	SampleSize int // records to include, negative counts as zero
	Verbose    bool
}

// Fact is one row of the report's facts panel.
type Fact struct {
	Name  string
	Value string
}

// TypeCount is one distinct geometry type and how often it occurs.
type TypeCount struct {
	Type  string
	Count int
}

// GeometrySummary rolls up the geometries of a geospatial dataset.
// TotalArea is set only for polygonal datasets, TotalLength only for
// line datasets.
type GeometrySummary struct {
	Types       []TypeCount
	Bounds      dataset.Envelope
	TotalArea   *float64
	TotalLength *float64
}

// ColumnStats holds the verbose per-column statistics. Min/Max/Mean are
// nil for non-numeric columns.
type ColumnStats struct {
	Column     string
	Min        *float64
	Max        *float64
	Mean       *float64
	Unique     int
	Missing    int
	MostCommon string
	Samples    []string
}

// Sample is a bounded, order-preserving prefix of the dataset's records.
type Sample struct {
	Columns    []string
	Records    []dataset.Record
	Geospatial bool
}

// Report is the value the renderer consumes. Created once per
// invocation, never mutated afterwards.
type Report struct {
	Format      format.FileFormat
	RowCount    int
	ColumnCount int
	Facts       []Fact
	Columns     []dataset.Column
	Geometry    *GeometrySummary
	Sample      *Sample
	Stats       []ColumnStats
	Warning     string
}

// Summarize computes the report for one dataset. Row and column counts
// are the exact cardinalities, column types are whatever the reader
// assigned. An empty dataset is not an error: sampling it just yields an
// empty sample and a warning on the report.
func Summarize(ds *dataset.Dataset, opts Options) *Report {
	rep := &Report{
		Format:      ds.Format,
		RowCount:    len(ds.Records),
		ColumnCount: len(ds.Columns),
		Columns:     ds.Columns,
		Facts:       facts(ds),
	}

	if ds.Geospatial() {
		rep.Geometry = rollupGeometry(ds.Records)
	}

	if opts.ShowSample {
		n := opts.SampleSize
		if n < 0 {
			n = 0
		}
		if n > rep.RowCount {
			n = rep.RowCount
		}
		if rep.RowCount == 0 {
			rep.Warning = "dataset is empty, nothing to sample"
		}
		names := make([]string, len(ds.Columns))
		for i, c := range ds.Columns {
			names[i] = c.Name
		}
		rep.Sample = &Sample{
			Columns:    names,
			Records:    ds.Records[:n],
			Geospatial: ds.Geospatial(),
		}
	}

	if opts.Verbose {
		rep.Stats = columnStats(ds)
	}
	return rep
}

func facts(ds *dataset.Dataset) []Fact {
	out := []Fact{
		{"File", ds.Name},
		{"Size", fmt.Sprintf("%.2f KB", float64(ds.FileSize)/1024)},
	}
	if ds.BytesRead > 0 {
		out = append(out, Fact{"Parsed", fmt.Sprintf("%.2f KB", float64(ds.BytesRead)/1024)})
	}
	if len(ds.SheetNames) > 0 {
		out = append(out,
			Fact{"Sheets", strconv.Itoa(len(ds.SheetNames))},
			Fact{"Sheet Names", strings.Join(ds.SheetNames, ", ")},
			Fact{"Active Sheet", ds.ActiveSheet},
		)
	}
	rowsName := "Rows"
	if ds.Geospatial() {
		rowsName = "Features"
	}
	out = append(out,
		Fact{rowsName, strconv.Itoa(len(ds.Records))},
		Fact{"Columns", strconv.Itoa(len(ds.Columns))},
	)
	if ds.Geospatial() {
		crs := ds.CRS
		if crs == "" {
			crs = "None"
		}
		out = append(out, Fact{"CRS", crs})
	}
	return out
}

func rollupGeometry(records []dataset.Record) *GeometrySummary {
	counts := make(map[string]int)
	var (
		bounds    dataset.Envelope
		first     = true
		area      float64
		length    float64
		polygonal bool
		lineal    bool
	)
	for _, rec := range records {
		g := rec.Geometry
		if g == nil {
			continue
		}
		counts[g.Type]++
		if first {
			bounds = g.Bounds
			first = false
		} else {
			bounds = bounds.Extend(g.Bounds)
		}
		switch g.Type {
		case "Polygon", "MultiPolygon":
			polygonal = true
			area += g.Area
		case "LineString", "MultiLineString":
			lineal = true
			length += g.Length
		}
	}

	sum := &GeometrySummary{Bounds: bounds}
	for t, c := range counts {
		sum.Types = append(sum.Types, TypeCount{Type: t, Count: c})
	}
	slices.SortFunc(sum.Types, func(a, b TypeCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Type, b.Type)
	})
	if polygonal {
		sum.TotalArea = &area
	}
	if lineal {
		sum.TotalLength = &length
	}
	return sum
}

func columnStats(ds *dataset.Dataset) []ColumnStats {
	out := make([]ColumnStats, 0, len(ds.Columns))
	for i, col := range ds.Columns {
		cs := ColumnStats{Column: col.Name}

		var (
			values  []string
			numbers []float64
		)
		uniq := make(map[string]int)
		for _, rec := range ds.Records {
			if i >= len(rec.Cells) || rec.Cells[i] == nil {
				cs.Missing++
				continue
			}
			s := cellString(rec.Cells[i])
			values = append(values, s)
			uniq[s]++
			if f, ok := cellFloat(rec.Cells[i]); ok {
				numbers = append(numbers, f)
			}
		}
		cs.Unique = len(uniq)
		if len(values) > 0 {
			cs.Samples = values[:min(len(values), DefaultSampleSize)]
		}

		numeric := col.Type == dataset.TypeInteger || col.Type == dataset.TypeFloat
		if numeric && len(numbers) > 0 {
			if v, err := stats.Min(numbers); err == nil {
				cs.Min = &v
			}
			if v, err := stats.Max(numbers); err == nil {
				cs.Max = &v
			}
			if v, err := stats.Mean(numbers); err == nil {
				cs.Mean = &v
			}
		} else {
			cs.MostCommon = mostCommon(values, uniq)
		}
		out = append(out, cs)
	}
	return out
}

// mostCommon returns the most frequent value, the earliest seen one on
// ties.
func mostCommon(ordered []string, counts map[string]int) string {
	best, bestCount := "", 0
	for _, v := range ordered {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", cell)
}

func cellFloat(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
