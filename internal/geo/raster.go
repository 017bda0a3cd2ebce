package geo

import "math"

// CellRect is a rectangle of character cells, half-open on both axes:
// rows [RowStart, RowEnd), columns [ColStart, ColEnd). A drawable rect
// always has RowEnd > RowStart and ColEnd > ColStart.
type CellRect struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Contains reports whether the grid cell (row, col) lies inside the
// rectangle.
func (r CellRect) Contains(row, col int) bool {
	return row >= r.RowStart && row < r.RowEnd && col >= r.ColStart && col < r.ColEnd
}

// Rasterize maps the extent onto a rows x cols grid representing an
// equirectangular projection of the world: longitude -180..180 runs
// left to right, latitude 90..-90 top to bottom. Bounds are rounded
// outward (floor on the minimum, ceil on the maximum) so the highlight
// never under-represents the true extent; degenerate point extents
// still cover at least one cell. The second return is false when there
// is nothing to draw: empty extent, unsupported CRS, or a grid too
// small to mean anything.
func Rasterize(e Extent, rows, cols int) (CellRect, bool) {
	if rows <= 0 || cols <= 0 || e.Empty || e.UnsupportedProjection {
		return CellRect{}, false
	}

	fx := func(lon float64) float64 { return (lon - MinLon) / (MaxLon - MinLon) * float64(cols) }
	fy := func(lat float64) float64 { return (MaxLat - lat) / (MaxLat - MinLat) * float64(rows) }

	r := CellRect{
		ColStart: int(math.Floor(fx(e.MinX))),
		ColEnd:   int(math.Ceil(fx(e.MaxX))),
		RowStart: int(math.Floor(fy(e.MaxY))),
		RowEnd:   int(math.Ceil(fy(e.MinY))),
	}

	// A point extent that lands exactly on a cell boundary floors and
	// ceils to the same value; widen to one cell.
	if r.ColEnd == r.ColStart {
		r.ColEnd++
	}
	if r.RowEnd == r.RowStart {
		r.RowEnd++
	}

	r.ColStart = clampInt(r.ColStart, 0, cols-1)
	r.ColEnd = clampInt(r.ColEnd, r.ColStart+1, cols)
	r.RowStart = clampInt(r.RowStart, 0, rows-1)
	r.RowEnd = clampInt(r.RowEnd, r.RowStart+1, rows)

	return r, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
