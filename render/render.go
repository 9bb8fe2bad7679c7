// Package render turns a summary report into colorized terminal output.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexeyco/simpletable"
	"github.com/fatih/color"

	"sumry/summary"
)

const maxCellWidth = 50

var (
	titleColor   = color.New(color.FgGreen, color.Bold)
	sectionColor = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

// Print writes the whole report to w. Output order follows the report:
// facts, columns, statistics, geometry, warning, sample.
func Print(w io.Writer, rep *summary.Report) {
	titleColor.Fprintf(w, "%s File Summary\n", rep.Format)
	fmt.Fprintln(w, factsTable(rep.Facts))

	if len(rep.Columns) > 0 {
		sectionColor.Fprintln(w, "\nColumns/Fields:")
		fmt.Fprintln(w, columnsTable(rep))
	}

	if len(rep.Stats) > 0 {
		sectionColor.Fprintln(w, "\nStatistics:")
		fmt.Fprintln(w, statsTable(rep.Stats))
	}

	if rep.Geometry != nil {
		sectionColor.Fprintln(w, "\nGeometry Information:")
		fmt.Fprintln(w, geometryTable(rep.Geometry))
	}

	if rep.Warning != "" {
		warnColor.Fprintf(w, "\nWarning: %s\n", rep.Warning)
	}

	if rep.Sample != nil {
		sectionColor.Fprintf(w, "\nSample Records (first %d):\n", len(rep.Sample.Records))
		fmt.Fprintln(w, sampleTable(rep.Sample))
	}
}

func factsTable(facts []summary.Fact) string {
	table := simpletable.New()
	for _, f := range facts {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: f.Name},
			{Text: f.Value},
		})
	}
	table.SetStyle(simpletable.StyleCompactLite)
	return table.String()
}

func columnsTable(rep *summary.Report) string {
	samples := make(map[string][]string, len(rep.Stats))
	for _, cs := range rep.Stats {
		samples[cs.Column] = cs.Samples
	}

	table := simpletable.New()
	header := []*simpletable.Cell{
		{Align: simpletable.AlignCenter, Text: "Name"},
		{Align: simpletable.AlignCenter, Text: "Type"},
	}
	if len(rep.Stats) > 0 {
		header = append(header, &simpletable.Cell{Align: simpletable.AlignCenter, Text: "Sample Values"})
	}
	table.Header = &simpletable.Header{Cells: header}

	for _, col := range rep.Columns {
		row := []*simpletable.Cell{
			{Text: col.Name},
			{Text: col.Type},
		}
		if len(rep.Stats) > 0 {
			vals := samples[col.Name]
			if len(vals) > 3 {
				vals = vals[:3]
			}
			row = append(row, &simpletable.Cell{Text: truncate(strings.Join(vals, ", "))})
		}
		table.Body.Cells = append(table.Body.Cells, row)
	}
	table.SetStyle(simpletable.StyleCompactLite)
	return table.String()
}

func statsTable(all []summary.ColumnStats) string {
	table := simpletable.New()
	table.Header = &simpletable.Header{Cells: []*simpletable.Cell{
		{Align: simpletable.AlignCenter, Text: "Column"},
		{Align: simpletable.AlignCenter, Text: "Min"},
		{Align: simpletable.AlignCenter, Text: "Max"},
		{Align: simpletable.AlignCenter, Text: "Mean"},
		{Align: simpletable.AlignCenter, Text: "Unique"},
		{Align: simpletable.AlignCenter, Text: "Missing"},
		{Align: simpletable.AlignCenter, Text: "Most Common"},
	}}
	for _, cs := range all {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: cs.Column},
			{Align: simpletable.AlignRight, Text: floatOrNA(cs.Min)},
			{Align: simpletable.AlignRight, Text: floatOrNA(cs.Max)},
			{Align: simpletable.AlignRight, Text: floatOrNA(cs.Mean)},
			{Align: simpletable.AlignRight, Text: strconv.Itoa(cs.Unique)},
			{Align: simpletable.AlignRight, Text: strconv.Itoa(cs.Missing)},
			{Text: orNA(truncate(cs.MostCommon))},
		})
	}
	table.SetStyle(simpletable.StyleCompactLite)
	return table.String()
}

func geometryTable(g *summary.GeometrySummary) string {
	types := make([]string, len(g.Types))
	for i, tc := range g.Types {
		types[i] = fmt.Sprintf("%s: %d", tc.Type, tc.Count)
	}

	table := simpletable.New()
	rows := [][2]string{
		{"Geometry Types", strings.Join(types, ", ")},
		{"Bounds (minx, miny, maxx, maxy)", fmt.Sprintf("[%.6f, %.6f, %.6f, %.6f]",
			g.Bounds.MinX, g.Bounds.MinY, g.Bounds.MaxX, g.Bounds.MaxY)},
		{"Total Area", floatOrNA6(g.TotalArea)},
		{"Total Length", floatOrNA6(g.TotalLength)},
	}
	for _, r := range rows {
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: r[0]},
			{Text: r[1]},
		})
	}
	table.SetStyle(simpletable.StyleCompactLite)
	return table.String()
}

func sampleTable(s *summary.Sample) string {
	table := simpletable.New()
	header := make([]*simpletable.Cell, 0, len(s.Columns)+1)
	for _, name := range s.Columns {
		header = append(header, &simpletable.Cell{Align: simpletable.AlignCenter, Text: name})
	}
	if s.Geospatial {
		header = append(header, &simpletable.Cell{Align: simpletable.AlignCenter, Text: "geometry"})
	}
	table.Header = &simpletable.Header{Cells: header}

	for _, rec := range s.Records {
		row := make([]*simpletable.Cell, 0, len(s.Columns)+1)
		for i := range s.Columns {
			var cell any
			if i < len(rec.Cells) {
				cell = rec.Cells[i]
			}
			row = append(row, &simpletable.Cell{Text: cellText(cell)})
		}
		if s.Geospatial {
			row = append(row, &simpletable.Cell{Text: "<geometry>"})
		}
		table.Body.Cells = append(table.Body.Cells, row)
	}
	table.SetStyle(simpletable.StyleRounded)
	return table.String()
}

// cellText renders one sample cell: N/A for missing values, fractional
// floats trimmed to two decimals, long strings truncated.
func cellText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return "N/A"
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	case string:
		return truncate(v)
	}
	return truncate(fmt.Sprintf("%v", cell))
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellWidth {
		return s
	}
	return string(runes[:maxCellWidth-3]) + "..."
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func floatOrNA(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func floatOrNA6(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*p, 'f', 6, 64)
}
