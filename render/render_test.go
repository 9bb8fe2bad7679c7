package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"sumry/dataset"
	"sumry/format"
	"sumry/summary"
)

func printed(t *testing.T, rep *summary.Report) string {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	Print(&buf, rep)
	return buf.String()
}

func baseReport() *summary.Report {
	return &summary.Report{
		Format:      format.Delimited,
		RowCount:    2,
		ColumnCount: 2,
		Facts: []summary.Fact{
			{Name: "File", Value: "people.csv"},
			{Name: "Rows", Value: "2"},
		},
		Columns: []dataset.Column{
			{Name: "name", Type: dataset.TypeString},
			{Name: "age", Type: dataset.TypeInteger},
		},
	}
}

func TestPrintBasics(t *testing.T) {
	out := printed(t, baseReport())

	require.Contains(t, out, "CSV File Summary")
	require.Contains(t, out, "people.csv")
	require.Contains(t, out, "Columns/Fields:")
	require.Contains(t, out, "name")
	require.Contains(t, out, "integer")
	require.NotContains(t, out, "Statistics:")
	require.NotContains(t, out, "Sample Records")
	require.NotContains(t, out, "Warning:")
}

func TestPrintSampleWithGeometryPlaceholder(t *testing.T) {
	rep := baseReport()
	rep.Format = format.GeoJSON
	rep.Sample = &summary.Sample{
		Columns:    []string{"name", "age"},
		Geospatial: true,
		Records: []dataset.Record{
			{Cells: []any{"alice", nil}},
			{Cells: []any{"bob", 2.5}},
		},
	}

	out := printed(t, rep)
	require.Contains(t, out, "Sample Records (first 2):")
	require.Contains(t, out, "<geometry>")
	require.Contains(t, out, "N/A")
	require.Contains(t, out, "2.50")
}

func TestPrintStatsAndGeometry(t *testing.T) {
	minV, maxV, meanV := 1.0, 3.0, 2.0
	area := 10.0

	rep := baseReport()
	rep.Format = format.Shapefile
	rep.Stats = []summary.ColumnStats{
		{Column: "age", Min: &minV, Max: &maxV, Mean: &meanV, Unique: 3},
		{Column: "name", Unique: 2, MostCommon: "alice", Samples: []string{"alice", "bob"}},
	}
	rep.Geometry = &summary.GeometrySummary{
		Types:     []summary.TypeCount{{Type: "Polygon", Count: 2}},
		Bounds:    dataset.Envelope{MinX: 0, MinY: 0, MaxX: 4, MaxY: 4},
		TotalArea: &area,
	}

	out := printed(t, rep)
	require.Contains(t, out, "Statistics:")
	require.Contains(t, out, "Most Common")
	require.Contains(t, out, "alice")
	require.Contains(t, out, "Geometry Information:")
	require.Contains(t, out, "Polygon: 2")
	require.Contains(t, out, "[0.000000, 0.000000, 4.000000, 4.000000]")
	require.Contains(t, out, "10.000000")
	// no line geometries, so no length figure
	require.Contains(t, out, "Total Length")
	require.Contains(t, out, "N/A")
}

func TestPrintWarning(t *testing.T) {
	rep := baseReport()
	rep.Warning = "dataset is empty, nothing to sample"
	rep.Sample = &summary.Sample{Columns: []string{"name", "age"}}

	out := printed(t, rep)
	require.Contains(t, out, "Warning: dataset is empty, nothing to sample")
	require.Contains(t, out, "Sample Records (first 0):")
}

func TestCellText(t *testing.T) {
	require.Equal(t, "N/A", cellText(nil))
	require.Equal(t, "3", cellText(3.0))
	require.Equal(t, "2.50", cellText(2.5))
	require.Equal(t, "short", cellText("short"))

	long := strings.Repeat("x", 80)
	got := cellText(long)
	require.Len(t, []rune(got), maxCellWidth)
	require.True(t, strings.HasSuffix(got, "..."))
}
