// Package dataset holds the in-memory representation of one parsed file.
// A Dataset lives for a single invocation: the reader builds it, the
// summarizer consumes it, nothing mutates it in between.
package dataset

import "sumry/format"

// Column is a named column with the scalar type the reader assigned to it.
type Column struct {
	Name string
	Type string
}

// Scalar type names assigned by the readers.
const (
	TypeInteger = "integer"
	TypeFloat   = "float"
	TypeBoolean = "boolean"
	TypeDate    = "date"
	TypeString  = "string"
	TypeEmpty   = "empty"
)

// Envelope is the minimal axis-aligned rectangle around a set of coordinates.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Extend returns the union of two envelopes.
func (e Envelope) Extend(o Envelope) Envelope {
	if o.MinX < e.MinX {
		e.MinX = o.MinX
	}
	if o.MinY < e.MinY {
		e.MinY = o.MinY
	}
	if o.MaxX > e.MaxX {
		e.MaxX = o.MaxX
	}
	if o.MaxY > e.MaxY {
		e.MaxY = o.MaxY
	}
	return e
}

// Geometry is the spatial value attached to a record of a geospatial format.
// Area and Length are planar measures, zero when not applicable.
type Geometry struct {
	Type   string
	Bounds Envelope
	Area   float64
	Length float64
}

// Record is one row. Cells are aligned with the dataset's Columns,
// a nil cell marks a missing value. Geometry is nil for tabular formats.
type Record struct {
	Cells    []any
	Geometry *Geometry
}

// Dataset is the fully loaded content of one file.
type Dataset struct {
	Format  format.FileFormat
	Name    string
	Columns []Column
	Records []Record

	// FileSize is the size of the source file on disk, BytesRead the
	// number of bytes the parser actually consumed (zero when the
	// underlying library does not expose it).
	FileSize  int64
	BytesRead int64

	// Spreadsheet inventory. Counts and records come from the active
	// (first) sheet.
	SheetNames  []string
	ActiveSheet string

	// CRS of a geospatial dataset, empty when unknown.
	CRS string
}

// Geospatial reports whether records carry geometry values.
func (d *Dataset) Geospatial() bool {
	return d.Format.Geospatial()
}
