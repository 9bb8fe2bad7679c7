package reader

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"golang.org/x/exp/slices"

	"sumry/dataset"
)

// GeoJSON carries no CRS member anymore, RFC 7946 fixes it to WGS 84.
const geoJSONCRS = "EPSG:4326"

// loadGeoJSON decodes a FeatureCollection (or a single Feature) and turns
// feature properties into columns.
func loadGeoJSON(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	var parsed int64
	data, err := io.ReadAll(&callbackReader{
		srcReader: file,
		cb:        func(n int) { parsed += int64(n) },
	})
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		feature, ferr := geojson.UnmarshalFeature(data)
		if ferr != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
		fc = geojson.NewFeatureCollection()
		fc.Append(feature)
	}

	// Properties decode into maps, so the document order of keys is gone.
	// Sort the union of keys to keep column order deterministic.
	var names []string
	seen := make(map[string]bool)
	for _, f := range fc.Features {
		for key := range f.Properties {
			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
	}
	slices.Sort(names)

	records := make([]dataset.Record, 0, len(fc.Features))
	for _, f := range fc.Features {
		cells := make([]any, len(names))
		for i, name := range names {
			if v, ok := f.Properties[name]; ok && v != nil {
				cells[i] = v
			}
		}
		records = append(records, dataset.Record{
			Cells:    cells,
			Geometry: geometryOf(f.Geometry),
		})
	}

	return &dataset.Dataset{
		Columns:   inferColumns(names, records),
		Records:   records,
		BytesRead: parsed,
		CRS:       geoJSONCRS,
	}, nil
}

func geometryOf(g orb.Geometry) *dataset.Geometry {
	if g == nil {
		return nil
	}
	b := g.Bound()
	return &dataset.Geometry{
		Type: g.GeoJSONType(),
		Bounds: dataset.Envelope{
			MinX: b.Min.X(), MinY: b.Min.Y(),
			MaxX: b.Max.X(), MaxY: b.Max.Y(),
		},
		Area:   math.Abs(planar.Area(g)),
		Length: planar.Length(g),
	}
}
