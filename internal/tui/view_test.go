package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geostack-labs/fgbscope/internal/geo"
)

func TestViewShowsTabs(t *testing.T) {
	m := newTestModel(t)
	frame := m.View()
	assert.Contains(t, frame, "Metadata")
	assert.Contains(t, frame, "Columns")
	assert.Contains(t, frame, "Map")
}

func TestViewMetadataTab(t *testing.T) {
	m := newTestModel(t)
	frame := m.View()
	assert.Contains(t, frame, "cities")
	assert.Contains(t, frame, "Features")
	assert.Contains(t, frame, "Geometry Type")
	assert.Contains(t, frame, "EPSG:4326")
	assert.Contains(t, frame, "4.1 kB", "byte size is humanized")
}

func TestViewColumnsTab(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	frame := m.View()
	assert.Contains(t, frame, "population")
	assert.Contains(t, frame, "ULong")
	assert.Contains(t, frame, "Columns (1 of 3)")
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := New(testHeader(), testExtent(), Options{})
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestRenderMapGridHighlightsExtent(t *testing.T) {
	m := newTestModel(t)
	grid := m.renderMapGrid(36, 72)

	require.True(t, strings.Contains(grid, "█"), "supported extent must be highlighted")
	assert.Equal(t, 35, strings.Count(grid, "\n"))

	// Exactly the rasterized cells carry the highlight rune: 4x2 for
	// this extent on a 36x72 grid.
	assert.Equal(t, 8, strings.Count(grid, "█"))
}

func TestRenderMapGridUnsupportedProjection(t *testing.T) {
	ext := geo.Extent{
		MinX: 500000, MinY: 6600000, MaxX: 510000, MaxY: 6610000,
		UnsupportedProjection: true,
		CrsLabel:              "EPSG:3857",
	}
	m := New(testHeader(), ext, Options{})
	m = resize(t, m, 80, 24)

	grid := m.renderMapGrid(36, 72)
	assert.NotContains(t, grid, "█", "unsupported CRS must render the basemap only")

	assert.Contains(t, m.mapTitle(), "EPSG:3857")
	assert.Contains(t, m.mapTitle(), "not supported")
}

func TestRenderMapGridEmptyExtent(t *testing.T) {
	m := New(testHeader(), geo.Extent{Empty: true}, Options{})
	m = resize(t, m, 80, 24)

	grid := m.renderMapGrid(20, 60)
	assert.NotContains(t, grid, "█")
	assert.Contains(t, grid, "▒", "land must still be drawn")
	assert.Contains(t, m.mapTitle(), "no envelope")
}

func TestViewStatusLineShowsNotes(t *testing.T) {
	ext := testExtent()
	ext.Notes = []string{"envelope coordinates outside the valid lon/lat range were clamped"}
	m := New(testHeader(), ext, Options{})
	m = resize(t, m, 80, 24)

	assert.Contains(t, m.View(), "clamped")
}

func TestMetadataWrapsLongValues(t *testing.T) {
	hdr := testHeader()
	hdr.Crs.WKT = strings.Repeat("GEOGCS ", 30) + "TAILMARK"
	m := New(hdr, testExtent(), Options{SourceName: "cities.fgb"})
	m = resize(t, m, 40, 48)

	assert.Contains(t, m.View(), "TAILMARK", "a long value must wrap, not clip at the panel edge")
}

func TestPanelTitleTruncatesByRune(t *testing.T) {
	m := New(testHeader(), testExtent(), Options{})
	m = resize(t, m, 12, 6)

	// A title of multibyte runes must be cut on a rune boundary, never
	// mid-sequence.
	out := m.renderPanel(strings.Repeat("é", 12), "x")
	assert.True(t, utf8.ValidString(out))
}

func TestViewTinyTerminal(t *testing.T) {
	m := New(testHeader(), testExtent(), Options{})
	m = resize(t, m, 12, 4)
	assert.NotPanics(t, func() { _ = m.View() })

	m.tab = TabMap
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestLandAt(t *testing.T) {
	assert.False(t, landAt(0, -140), "mid-Pacific is water")
	assert.True(t, landAt(-14, -52), "central Brazil is land")
	assert.True(t, landAt(55, 37), "Moscow region is land")
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "Metadata", TabMetadata.String())
	assert.Equal(t, "Columns", TabColumns.String())
	assert.Equal(t, "Map", TabMap.String())
	assert.Equal(t, "Tab(9)", Tab(9).String())
}
