package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/geostack-labs/fgbscope/internal/geo"
)

// View renders the full frame for the current state. It is a pure
// function of the model; a terminal smaller than the layout minimum
// degrades to a cramped but valid frame.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteByte('\n')

	switch m.tab {
	case TabMetadata:
		b.WriteString(m.renderPanel("Metadata", m.meta.View()))
	case TabColumns:
		b.WriteString(m.renderPanel(m.ColumnsTitle(), m.cols.View()))
	case TabMap:
		b.WriteString(m.renderPanel(m.mapTitle(), m.renderMap()))
	}
	b.WriteByte('\n')

	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		if t == m.tab {
			parts[t] = m.styles.tabActive.Render(t.String())
		} else {
			parts[t] = m.styles.tab.Render(t.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderPanel(title, content string) string {
	w := m.contentWidth()
	panel := m.styles.panel.Width(w)
	label := " " + title + " "
	if utf8.RuneCountInString(label) > w {
		label = string([]rune(label)[:w])
	}
	return panel.Render(lipgloss.PlaceHorizontal(w, lipgloss.Left, m.styles.label.Render(label)) + "\n" + content)
}

func (m Model) statusLine() string {
	if m.status != "" {
		return m.styles.status.Render(m.status)
	}
	if len(m.ext.Notes) > 0 {
		return m.styles.note.Render("note: " + m.ext.Notes[0])
	}
	return ""
}

// metadataContent builds the scrollable metadata text: one labeled
// line per header field, CRS block, custom metadata last.
func (m Model) metadataContent() string {
	h := m.hdr
	line := func(label, value string) string {
		return m.styles.label.Render(label+": ") + value
	}

	size := "Unknown"
	if m.opts.ByteSize > 0 {
		size = humanize.Bytes(uint64(m.opts.ByteSize))
	}
	bounds := "Undefined"
	if h.HasEnvelope() {
		bounds = fmt.Sprintf("[%g, %g, %g, %g]", h.Envelope[0], h.Envelope[1], h.Envelope[2], h.Envelope[3])
	}
	index := "No Spatial Index"
	if h.IndexNodeSize != 0 {
		index = fmt.Sprintf("%d", h.IndexNodeSize)
	}
	features := "Unknown"
	if h.FeaturesCount != 0 {
		features = fmt.Sprintf("%d", h.FeaturesCount)
	}

	lines := []string{
		line("Name", h.Name),
		line("Source", m.opts.SourceName),
		line("File Size", size),
		line("Description", h.Description),
		line("Features", features),
		line("Bounds", bounds),
		line("Geometry Type", h.GeometryType.String()),
		line("Columns", fmt.Sprintf("%d", len(h.Columns))),
		line("Spatial Index R-Tree Node Size", index),
		"",
		line("Has Z Dimension", fmt.Sprintf("%t", h.HasZ)),
		line("Has M Dimension", fmt.Sprintf("%t", h.HasM)),
		line("Has T Dimension", fmt.Sprintf("%t", h.HasT)),
		line("Has TM Dimension", fmt.Sprintf("%t", h.HasTM)),
		"",
	}

	if c := h.Crs; c != nil {
		lines = append(lines,
			line("CRS", c.String()),
			line("CRS Name", c.Name),
			line("CRS Code String", c.CodeString),
			line("CRS Description", c.Description),
			line("CRS WKT", c.WKT),
		)
	} else {
		lines = append(lines, line("CRS", "Undefined (WGS84 assumed)"))
	}

	lines = append(lines, "", line("Custom Metadata", orDash(h.Metadata)))
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (m Model) mapTitle() string {
	if m.ext.UnsupportedProjection {
		return fmt.Sprintf("Map — CRS %s not supported, extent not drawn", m.ext.CrsLabel)
	}
	if m.ext.Empty {
		return "Map — no envelope in header"
	}
	return fmt.Sprintf("Map — extent of data in %s", m.ext.CrsLabel)
}

// renderMap draws the world grid with the rasterized extent overlaid.
// Grid size follows the panel interior, optionally capped by config.
func (m Model) renderMap() string {
	rows := m.contentHeight() - 1 // title line inside the panel
	cols := m.contentWidth()
	if m.opts.MapRows > 0 && m.opts.MapRows < rows {
		rows = m.opts.MapRows
	}
	if m.opts.MapCols > 0 && m.opts.MapCols < cols {
		cols = m.opts.MapCols
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return m.renderMapGrid(rows, cols)
}

// renderMapGrid rasterizes the extent onto a rows x cols grid and
// paints it over the land mask. Runs of equal style are batched to
// keep the frame small.
func (m Model) renderMapGrid(rows, cols int) string {
	rect, drawRect := geo.Rasterize(m.ext, rows, cols)

	const (
		cellWater  = 0
		cellLand   = 1
		cellExtent = 2
	)
	chars := [...]string{"·", "▒", "█"}
	cellStyles := [...]lipgloss.Style{m.styles.water, m.styles.land, m.styles.extent}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		lat := geo.MaxLat - (float64(row)+0.5)/float64(rows)*(geo.MaxLat-geo.MinLat)
		run := -1
		var runBuf strings.Builder
		flush := func() {
			if run >= 0 {
				b.WriteString(cellStyles[run].Render(runBuf.String()))
				runBuf.Reset()
			}
		}
		for col := 0; col < cols; col++ {
			lon := geo.MinLon + (float64(col)+0.5)/float64(cols)*(geo.MaxLon-geo.MinLon)
			cell := cellWater
			switch {
			case drawRect && rect.Contains(row, col):
				cell = cellExtent
			case landAt(lat, lon):
				cell = cellLand
			}
			if cell != run {
				flush()
				run = cell
			}
			runBuf.WriteString(chars[cell])
		}
		flush()
	}
	return b.String()
}
