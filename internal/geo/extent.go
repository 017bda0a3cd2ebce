// Package geo turns a decoded FlatGeobuf envelope into something the
// map preview can draw: a normalized geographic extent and its
// projection onto a character grid of the whole world.
package geo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/geostack-labs/fgbscope/internal/fgb"
)

// World bounds of the equirectangular preview grid.
const (
	MinLon = -180.0
	MaxLon = 180.0
	MinLat = -90.0
	MaxLat = 90.0
)

// Extent is a canonical bounding rectangle in degrees: MinX <= MaxX and
// MinY <= MaxY always hold after normalization. Notes record non-fatal
// data quality findings made along the way.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64

	// Empty means the header carried no envelope at all.
	Empty bool

	// UnsupportedProjection means the dataset CRS is not geographic
	// WGS84; the coordinates are not degrees and must not be drawn as a
	// rectangle on the world grid.
	UnsupportedProjection bool

	// CrsLabel is the authority:code form for display.
	CrsLabel string

	Notes []string
}

// ExtentFromHeader normalizes the raw envelope and CRS of a decoded
// header. It never fails: swapped bounds are repaired, out-of-range
// coordinates clamped, and an unusable CRS merely flags the extent.
// Findings are logged and kept as notes for the UI.
func ExtentFromHeader(hdr *fgb.Header, logger *slog.Logger) Extent {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := Extent{CrsLabel: hdr.Crs.String()}

	if !hdr.HasEnvelope() {
		e.Empty = true
		e.note(logger, "header carries no bounding envelope; map shows the world only")
		return e
	}

	e.MinX, e.MinY, e.MaxX, e.MaxY = hdr.Envelope[0], hdr.Envelope[1], hdr.Envelope[2], hdr.Envelope[3]

	if e.MinX > e.MaxX {
		e.MinX, e.MaxX = e.MaxX, e.MinX
		e.note(logger, "envelope min-x/max-x were swapped in the file")
	}
	if e.MinY > e.MaxY {
		e.MinY, e.MaxY = e.MaxY, e.MinY
		e.note(logger, "envelope min-y/max-y were swapped in the file")
	}

	if !hdr.Crs.IsGeographicWGS84() {
		e.UnsupportedProjection = true
		e.note(logger, fmt.Sprintf("CRS %s is not supported for the map preview; extent not drawn", e.CrsLabel))
		return e
	}

	if e.MinX < MinLon || e.MaxX > MaxLon || e.MinY < MinLat || e.MaxY > MaxLat {
		e.MinX = clamp(e.MinX, MinLon, MaxLon)
		e.MaxX = clamp(e.MaxX, MinLon, MaxLon)
		e.MinY = clamp(e.MinY, MinLat, MaxLat)
		e.MaxY = clamp(e.MaxY, MinLat, MaxLat)
		e.note(logger, "envelope coordinates outside the valid lon/lat range were clamped")
	}

	return e
}

func (e *Extent) note(logger *slog.Logger, msg string) {
	logger.Warn(msg, "crs", e.CrsLabel)
	e.Notes = append(e.Notes, msg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
