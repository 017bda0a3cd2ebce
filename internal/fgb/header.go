// Package fgb decodes the header table of FlatGeobuf files. Only the
// magic prologue and the length-prefixed header are read; the feature
// payload that follows is never touched, so arbitrarily large files and
// range-fetched remote objects work the same way.
package fgb

import (
	"fmt"
	"strconv"
)

// ColumnType is the closed set of property column types the FlatGeobuf
// schema defines. Anything outside this set fails decoding with
// ErrUnknownColumnType instead of being coerced.
type ColumnType uint8

const (
	ColumnByte ColumnType = iota
	ColumnUByte
	ColumnBool
	ColumnShort
	ColumnUShort
	ColumnInt
	ColumnUInt
	ColumnLong
	ColumnULong
	ColumnFloat
	ColumnDouble
	ColumnString
	ColumnJSON
	ColumnDateTime
	ColumnBinary
)

var columnTypeNames = [...]string{
	"Byte", "UByte", "Bool", "Short", "UShort", "Int", "UInt",
	"Long", "ULong", "Float", "Double", "String", "Json",
	"DateTime", "Binary",
}

func (t ColumnType) String() string {
	if int(t) < len(columnTypeNames) {
		return columnTypeNames[t]
	}
	return "Unknown(" + strconv.Itoa(int(t)) + ")"
}

// GeometryType mirrors the FlatGeobuf geometry type enumeration.
type GeometryType uint8

const (
	GeometryUnknown GeometryType = iota
	GeometryPoint
	GeometryLineString
	GeometryPolygon
	GeometryMultiPoint
	GeometryMultiLineString
	GeometryMultiPolygon
	GeometryCollection
	GeometryCircularString
	GeometryCompoundCurve
	GeometryCurvePolygon
	GeometryMultiCurve
	GeometryMultiSurface
	GeometryCurve
	GeometrySurface
	GeometryPolyhedralSurface
	GeometryTIN
	GeometryTriangle
)

var geometryTypeNames = [...]string{
	"Unknown", "Point", "LineString", "Polygon", "MultiPoint",
	"MultiLineString", "MultiPolygon", "GeometryCollection",
	"CircularString", "CompoundCurve", "CurvePolygon", "MultiCurve",
	"MultiSurface", "Curve", "Surface", "PolyhedralSurface", "TIN",
	"Triangle",
}

func (t GeometryType) String() string {
	if int(t) < len(geometryTypeNames) {
		return geometryTypeNames[t]
	}
	return "Unknown(" + strconv.Itoa(int(t)) + ")"
}

// Column describes one property column from the header schema. Column
// names are not guaranteed unique by the format.
type Column struct {
	Name        string
	Type        ColumnType
	Title       string
	Description string
	Width       int32
	Precision   int32
	Scale       int32
	Nullable    bool
	Unique      bool
	PrimaryKey  bool
}

// Crs identifies the coordinate reference system of a dataset by
// authority and numeric code, e.g. EPSG:4326.
type Crs struct {
	Org         string
	Code        int32
	Name        string
	Description string
	WKT         string
	CodeString  string
}

// String returns the authority:code form, or "Undefined" when neither
// is set.
func (c *Crs) String() string {
	if c == nil || (c.Org == "" && c.Code == 0) {
		return "Undefined"
	}
	if c.Org == "" {
		return strconv.Itoa(int(c.Code))
	}
	return fmt.Sprintf("%s:%d", c.Org, c.Code)
}

// IsGeographicWGS84 reports whether the CRS is the geographic reference
// system the map preview understands. An absent or empty CRS counts:
// the format defines WGS84 as the default.
func (c *Crs) IsGeographicWGS84() bool {
	if c == nil || (c.Org == "" && c.Code == 0) {
		return true
	}
	switch c.Org {
	case "EPSG":
		return c.Code == 4326
	case "OGC":
		return c.Code == 84 // CRS84, lon/lat axis order
	}
	return false
}

// Header is the decoded FlatGeobuf header: everything the format stores
// ahead of the feature payload. Immutable once decoded.
type Header struct {
	Version       uint8
	Name          string
	Title         string
	Description   string
	Metadata      string
	GeometryType  GeometryType
	HasZ          bool
	HasM          bool
	HasT          bool
	HasTM         bool
	Columns       []Column
	FeaturesCount uint64 // 0 means unknown
	IndexNodeSize uint16 // 0 means no spatial index
	Crs           *Crs

	// Envelope is the raw bounding box [minX, minY, maxX, maxY] in CRS
	// units, or nil when the header carries none.
	Envelope []float64
}

// HasEnvelope reports whether the header carried a bounding box.
func (h *Header) HasEnvelope() bool {
	return len(h.Envelope) == 4
}
