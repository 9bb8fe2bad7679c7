// Package reader loads one file into a dataset.Dataset, delegating the
// actual parsing to format-specific libraries.
package reader

import (
	"fmt"
	"os"
	"path/filepath"

	"sumry/dataset"
	"sumry/format"
)

var ErrPathNotFound = fmt.Errorf("file not found")

// Load reads the file at path fully into memory. The path is checked for
// existence before any parser runs, so a bad path never surfaces as a
// parse failure.
func Load(path string, f format.FileFormat) (*dataset.Dataset, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var ds *dataset.Dataset
	switch f {
	case format.Delimited:
		ds, err = loadDelimited(path)
	case format.Spreadsheet:
		ds, err = loadSpreadsheet(path)
	case format.GeoJSON:
		ds, err = loadGeoJSON(path)
	case format.Shapefile:
		ds, err = loadShapefile(path)
	default:
		return nil, format.ErrUnsupported
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	ds.Format = f
	ds.Name = filepath.Base(path)
	ds.FileSize = info.Size()
	return ds, nil
}
