package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormat is the closed set of file kinds sumry can summarize.
type FileFormat int

const (
	Unknown FileFormat = iota
	Delimited
	Spreadsheet
	GeoJSON
	Shapefile
)

var ErrUnsupported = fmt.Errorf("unsupported file format")

// byExtension maps a lower-cased file extension to its format.
// A bare ".json" is always treated as GeoJSON, the file content is
// never sniffed to tell plain JSON apart.
var byExtension = map[string]FileFormat{
	".csv":     Delimited,
	".tsv":     Delimited,
	".xlsx":    Spreadsheet,
	".xls":     Spreadsheet,
	".xlsm":    Spreadsheet,
	".geojson": GeoJSON,
	".json":    GeoJSON,
	".shp":     Shapefile,
}

// Detect resolves the format of path from its extension, case-insensitively.
// It returns ErrUnsupported for anything outside the supported set.
func Detect(path string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := byExtension[ext]
	if !ok {
		if ext == "" {
			return Unknown, fmt.Errorf("%w: %q has no extension", ErrUnsupported, path)
		}
		return Unknown, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	return f, nil
}

func (f FileFormat) String() string {
	switch f {
	case Delimited:
		return "CSV"
	case Spreadsheet:
		return "Excel"
	case GeoJSON:
		return "GeoJSON"
	case Shapefile:
		return "Shapefile"
	}
	return "Unknown"
}

// Geospatial reports whether records of this format carry geometries.
func (f FileFormat) Geospatial() bool {
	return f == GeoJSON || f == Shapefile
}
