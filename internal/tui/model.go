// Package tui is the interactive header browser: three tabs (Metadata,
// Columns, Map) over one decoded header. All state transitions happen
// in Update, which makes navigation testable without a terminal.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/geostack-labs/fgbscope/internal/fgb"
	"github.com/geostack-labs/fgbscope/internal/geo"
)

// Tab identifies one of the three views.
type Tab int

const (
	TabMetadata Tab = iota
	TabColumns
	TabMap

	tabCount = 3
)

func (t Tab) String() string {
	switch t {
	case TabMetadata:
		return "Metadata"
	case TabColumns:
		return "Columns"
	case TabMap:
		return "Map"
	}
	return "Tab(" + strconv.Itoa(int(t)) + ")"
}

// Options configures a session.
type Options struct {
	SourceName string
	ByteSize   int64 // 0 when unknown

	// Accent and Highlight override the default tab and extent colors.
	Accent    string
	Highlight string

	// MapRows and MapCols cap the map grid; 0 fits the window.
	MapRows int
	MapCols int
}

// reloadMsg carries the result of re-decoding a watched file.
type reloadMsg struct {
	hdr *fgb.Header
	ext geo.Extent
	err error
}

// Model holds one session: the decoded header, the derived extent, and
// the view state the key handlers mutate.
type Model struct {
	hdr  *fgb.Header
	ext  geo.Extent
	opts Options

	styles styles
	keys   keyMap
	help   help.Model

	tab    Tab
	meta   viewport.Model
	cols   table.Model
	status string

	width  int
	height int
	ready  bool
}

// New builds the initial model: Metadata tab active, all offsets zero.
func New(hdr *fgb.Header, ext geo.Extent, opts Options) Model {
	m := Model{
		hdr:    hdr,
		ext:    ext,
		opts:   opts,
		styles: newStyles(opts.Accent, opts.Highlight),
		keys:   defaultKeyMap(),
		help:   help.New(),
		meta:   viewport.New(0, 0),
	}
	m.cols = newColumnsTable(hdr, 0)
	return m
}

func newColumnsTable(hdr *fgb.Header, height int) table.Model {
	cols := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Type", Width: 10},
		{Title: "Description", Width: 24},
		{Title: "Nullable", Width: 8},
		{Title: "Unique", Width: 6},
		{Title: "Primary Key", Width: 11},
	}
	rows := make([]table.Row, len(hdr.Columns))
	for i, c := range hdr.Columns {
		desc := c.Description
		if desc == "" {
			desc = "—"
		}
		rows[i] = table.Row{
			c.Name,
			c.Type.String(),
			desc,
			strconv.FormatBool(c.Nullable),
			strconv.FormatBool(c.Unique),
			strconv.FormatBool(c.PrimaryKey),
		}
	}
	st := table.DefaultStyles()
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("3")).
		Bold(true)
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithStyles(st),
	)
	if height > 0 {
		t.SetHeight(height)
	}
	return t
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update is the state transition function. Transitions are total:
// unknown keys and events are no-ops.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.ready = true

	case reloadMsg:
		if msg.err != nil {
			m.status = "reload failed: " + msg.err.Error()
			break
		}
		cursor := m.cols.Cursor()
		m.hdr, m.ext = msg.hdr, msg.ext
		// Status first: contentHeight reserves a row for it, and the
		// rebuilt table and viewport must already account for that.
		m.status = "file changed on disk, header reloaded"
		m.cols = newColumnsTable(m.hdr, m.contentHeight())
		if cursor < len(m.cols.Rows()) {
			m.cols.SetCursor(cursor)
		}
		m.layout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
		case key.Matches(msg, m.keys.Down):
			m.scroll(1)
		case key.Matches(msg, m.keys.Up):
			m.scroll(-1)
		}
	}
	return m, nil
}

// scroll moves the active tab's content by delta lines. The metadata
// viewport clamps at both ends; the columns cursor wraps around.
func (m *Model) scroll(delta int) {
	switch m.tab {
	case TabMetadata:
		if delta > 0 {
			m.meta.LineDown(delta)
		} else {
			m.meta.LineUp(-delta)
		}
	case TabColumns:
		n := len(m.cols.Rows())
		if n == 0 {
			return
		}
		switch {
		case delta > 0 && m.cols.Cursor() >= n-1:
			m.cols.SetCursor(0)
		case delta < 0 && m.cols.Cursor() == 0:
			m.cols.SetCursor(n - 1)
		case delta > 0:
			m.cols.MoveDown(delta)
		default:
			m.cols.MoveUp(-delta)
		}
	}
}

// contentHeight is the panel interior height: window minus tab bar,
// panel border, panel title, and help line.
func (m *Model) contentHeight() int {
	h := m.height - 1 - 2 - 1 - 1
	if m.status != "" || len(m.ext.Notes) > 0 {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) contentWidth() int {
	w := m.width - 2
	if w < 10 {
		w = 10
	}
	return w
}

func (m *Model) layout() {
	w := m.contentWidth()
	m.meta.Width = w
	m.meta.Height = m.contentHeight()
	// Long values (CRS WKT, metadata JSON) wrap to the panel width
	// instead of vanishing past the viewport's right edge.
	m.meta.SetContent(lipgloss.NewStyle().Width(w).Render(m.metadataContent()))
	m.cols.SetWidth(w)
	m.cols.SetHeight(m.contentHeight())
	m.help.Width = m.width
}

// ActiveTab exposes the current tab for tests and the frame renderer.
func (m Model) ActiveTab() Tab { return m.tab }

// ColumnsTitle is the columns panel title, mirroring the cursor
// position.
func (m Model) ColumnsTitle() string {
	n := len(m.cols.Rows())
	if n == 0 {
		return "Columns (none)"
	}
	return fmt.Sprintf("Columns (%d of %d)", m.cols.Cursor()+1, n)
}
