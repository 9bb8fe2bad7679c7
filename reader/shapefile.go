package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"

	"sumry/dataset"
)

// loadShapefile reads shapes and their DBF attributes. Column types come
// straight from the DBF field descriptors, no re-inference happens.
func loadShapefile(path string) (*dataset.Dataset, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	fields := r.Fields()
	columns := make([]dataset.Column, len(fields))
	for i, fld := range fields {
		columns[i] = dataset.Column{
			Name: fld.String(),
			Type: dbfType(fld),
		}
	}

	var records []dataset.Record
	for r.Next() {
		idx, shape := r.Shape()

		cells := make([]any, len(fields))
		for j := range fields {
			if v := strings.TrimSpace(r.ReadAttribute(idx, j)); v != "" {
				cells[j] = v
			}
		}

		records = append(records, dataset.Record{
			Cells:    cells,
			Geometry: shapeGeometry(shape, r.GeometryType),
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapes: %w", err)
	}

	return &dataset.Dataset{
		Columns: columns,
		Records: records,
		CRS:     sidecarCRS(path),
	}, nil
}

// dbfType maps a DBF field descriptor to a dataset scalar type.
func dbfType(fld shp.Field) string {
	switch fld.Fieldtype {
	case 'N':
		if fld.Precision == 0 {
			return dataset.TypeInteger
		}
		return dataset.TypeFloat
	case 'F':
		return dataset.TypeFloat
	case 'D':
		return dataset.TypeDate
	case 'L':
		return dataset.TypeBoolean
	}
	return dataset.TypeString
}

// shapeGeometry converts a shape into the dataset geometry value. Common
// shapes go through orb so area and length use the same planar math as
// GeoJSON. Anything else still gets its type and bounding box.
func shapeGeometry(shape shp.Shape, fileType shp.ShapeType) *dataset.Geometry {
	if shape == nil {
		return nil
	}
	if g := toOrb(shape); g != nil {
		return geometryOf(g)
	}
	box := shape.BBox()
	return &dataset.Geometry{
		Type: shapeTypeName(fileType),
		Bounds: dataset.Envelope{
			MinX: box.MinX, MinY: box.MinY,
			MaxX: box.MaxX, MaxY: box.MaxY,
		},
	}
}

func toOrb(shape shp.Shape) orb.Geometry {
	switch v := shape.(type) {
	case *shp.Point:
		return orb.Point{v.X, v.Y}
	case *shp.PointZ:
		return orb.Point{v.X, v.Y}
	case *shp.PointM:
		return orb.Point{v.X, v.Y}
	case *shp.MultiPoint:
		mp := make(orb.MultiPoint, len(v.Points))
		for i, p := range v.Points {
			mp[i] = orb.Point{p.X, p.Y}
		}
		return mp
	case *shp.PolyLine:
		parts := splitParts(v.Parts, v.Points)
		if len(parts) == 1 {
			return orb.LineString(parts[0])
		}
		mls := make(orb.MultiLineString, len(parts))
		for i, p := range parts {
			mls[i] = orb.LineString(p)
		}
		return mls
	case *shp.Polygon:
		parts := splitParts(v.Parts, v.Points)
		poly := make(orb.Polygon, len(parts))
		for i, p := range parts {
			poly[i] = orb.Ring(p)
		}
		return poly
	}
	return nil
}

func splitParts(parts []int32, points []shp.Point) [][]orb.Point {
	if len(parts) == 0 {
		parts = []int32{0}
	}
	out := make([][]orb.Point, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		part := make([]orb.Point, 0, end-int(start))
		for _, p := range points[start:end] {
			part = append(part, orb.Point{p.X, p.Y})
		}
		out = append(out, part)
	}
	return out
}

func shapeTypeName(t shp.ShapeType) string {
	switch t {
	case shp.POINT, shp.POINTZ, shp.POINTM:
		return "Point"
	case shp.POLYLINE, shp.POLYLINEZ, shp.POLYLINEM:
		return "LineString"
	case shp.POLYGON, shp.POLYGONZ, shp.POLYGONM:
		return "Polygon"
	case shp.MULTIPOINT, shp.MULTIPOINTZ, shp.MULTIPOINTM:
		return "MultiPoint"
	case shp.MULTIPATCH:
		return "MultiPatch"
	}
	return "Unknown"
}

// sidecarCRS reads the .prj file next to the shapefile and extracts the
// coordinate system name (the first quoted token of the WKT).
func sidecarCRS(path string) string {
	prj := strings.TrimSuffix(path, filepath.Ext(path)) + ".prj"
	data, err := os.ReadFile(prj)
	if err != nil {
		return ""
	}
	wkt := string(data)
	open := strings.IndexByte(wkt, '"')
	if open < 0 {
		return ""
	}
	rest := wkt[open+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return ""
	}
	return rest[:end]
}
