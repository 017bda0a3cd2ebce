package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geostack-labs/fgbscope/internal/fgb"
	"github.com/geostack-labs/fgbscope/internal/testutil"
)

func TestExtentFromHeader(t *testing.T) {
	logger := testutil.NewTestLogger(t)

	t.Run("valid wgs84", func(t *testing.T) {
		e := ExtentFromHeader(&fgb.Header{
			Envelope: []float64{-10, -5, 10, 5},
			Crs:      &fgb.Crs{Org: "EPSG", Code: 4326},
		}, logger)

		assert.False(t, e.Empty)
		assert.False(t, e.UnsupportedProjection)
		assert.Equal(t, Extent{MinX: -10, MinY: -5, MaxX: 10, MaxY: 5, CrsLabel: "EPSG:4326"}, Extent{
			MinX: e.MinX, MinY: e.MinY, MaxX: e.MaxX, MaxY: e.MaxY, CrsLabel: e.CrsLabel,
		})
		assert.Empty(t, e.Notes)
	})

	t.Run("absent crs defaults to wgs84", func(t *testing.T) {
		e := ExtentFromHeader(&fgb.Header{Envelope: []float64{0, 0, 1, 1}}, logger)
		assert.False(t, e.UnsupportedProjection)
	})

	t.Run("swapped bounds are repaired", func(t *testing.T) {
		e := ExtentFromHeader(&fgb.Header{
			Envelope: []float64{10, 5, -10, -5},
		}, logger)

		assert.LessOrEqual(t, e.MinX, e.MaxX)
		assert.LessOrEqual(t, e.MinY, e.MaxY)
		assert.Equal(t, -10.0, e.MinX)
		assert.Equal(t, 5.0, e.MaxY)
		require.Len(t, e.Notes, 2)
		assert.Contains(t, e.Notes[0], "swapped")
	})

	t.Run("out of range coordinates are clamped", func(t *testing.T) {
		e := ExtentFromHeader(&fgb.Header{
			Envelope: []float64{-200, -100, 200, 100},
		}, logger)

		assert.Equal(t, MinLon, e.MinX)
		assert.Equal(t, MaxLon, e.MaxX)
		assert.Equal(t, MinLat, e.MinY)
		assert.Equal(t, MaxLat, e.MaxY)
		require.Len(t, e.Notes, 1)
		assert.Contains(t, e.Notes[0], "clamped")
	})

	t.Run("unsupported projection is flagged, not projected", func(t *testing.T) {
		e := ExtentFromHeader(&fgb.Header{
			Envelope: []float64{500000, 6600000, 510000, 6610000},
			Crs:      &fgb.Crs{Org: "EPSG", Code: 3857},
		}, logger)

		assert.True(t, e.UnsupportedProjection)
		assert.Equal(t, "EPSG:3857", e.CrsLabel)
		// Native units stay untouched; the rasterizer refuses them.
		assert.Equal(t, 500000.0, e.MinX)
		require.NotEmpty(t, e.Notes)
	})

	t.Run("missing envelope", func(t *testing.T) {
		e := ExtentFromHeader(&fgb.Header{}, logger)
		assert.True(t, e.Empty)
		require.NotEmpty(t, e.Notes)
	})

	t.Run("degenerate point extent stays valid", func(t *testing.T) {
		e := ExtentFromHeader(&fgb.Header{
			Envelope: []float64{2.35, 48.85, 2.35, 48.85},
		}, logger)
		assert.False(t, e.Empty)
		assert.Equal(t, e.MinX, e.MaxX)
		assert.Empty(t, e.Notes)
	})
}
