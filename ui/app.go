package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"unitmap/engine"
	"unitmap/model"
	"unitmap/nav"
	"unitmap/util"
)

const (
	// headerLines (title + filter input) sit above the content box,
	// statusLines below it.
	headerLines = 2
	statusLines = 1
)

// Model is the bubbletea model for one treemap instance. All
// interaction state lives here: hover, modality latch, dirty-tracked
// render pipeline, and the addressable location. A navigation replaces
// the whole instance, which is the terminal analog of a full page
// load.
type Model struct {
	report *model.Report
	units  []model.Unit
	loc    nav.Location

	// clickable is fixed at construction: true for the overview
	// instance, false for a unit-scoped detail instance.
	clickable bool
	scoped    string // unit name when this is a detail instance

	filterInput textinput.Model
	lastFilter  string
	terms       []engine.Term

	index *engine.Index
	pipe  *pipeline

	hovered  *model.Unit
	modality engine.Modality
	kbIndex  int

	width, height int
	ready         bool
}

// NewModel builds the overview instance. Any filter carried by the
// location is applied before the first paint.
func NewModel(report *model.Report, loc nav.Location) Model {
	m := newModel(report, report.Units, loc)
	m.clickable = true
	return m
}

// NewDetailModel builds a unit-scoped instance: one unit filling the
// whole content box, not clickable.
func NewDetailModel(report *model.Report, loc nav.Location, unit *model.Unit) Model {
	scoped := *unit
	scoped.X, scoped.Y, scoped.W, scoped.H = 0, 0, 1, 1
	scoped.Filtered = false
	m := newModel(report, []model.Unit{scoped}, loc)
	m.scoped = unit.Name
	return m
}

func newModel(report *model.Report, units []model.Unit, loc nav.Location) Model {
	ti := textinput.New()
	ti.Placeholder = `name, >50%, <10kB ...`
	ti.CharLimit = 120
	ti.Width = 48
	ti.Prompt = ""

	m := Model{
		report:      report,
		units:       units,
		loc:         loc,
		filterInput: ti,
		index:       engine.NewIndex(units, 0, 0),
		pipe:        newPipeline(),
		kbIndex:     -1,
	}
	if filter := loc.Get("filter"); filter != "" {
		m.filterInput.SetValue(filter)
		m.lastFilter = filter
		m.terms = engine.ParseFilter(filter)
	}
	// Always evaluate: the unit slice is shared across instances, so a
	// location without a filter must clear flags left by the previous
	// instance.
	engine.Evaluate(m.terms, m.units)
	return m
}

// Location returns the current addressable state, so the caller can
// print a shareable view string on exit.
func (m Model) Location() nav.Location { return m.loc }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		rows := m.contentRows()
		m.pipe.setSize(m.width, rows)
		m.index.Resize(float64(m.width), float64(rows*2))
		m.ready = true
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.filterInput.Focused() {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.syncFilter()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterInput.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.filterInput.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.syncFilter()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		return m, m.filterInput.Focus()
	case "esc":
		if m.scoped != "" {
			// Back out of the detail view: a fresh overview instance
			// with the unit selector dropped.
			loc := m.loc
			loc.Del("unit")
			next := NewModel(m.report, loc)
			next.width, next.height = m.width, m.height
			next.ready = m.ready
			next.pipe.setSize(next.width, next.contentRows())
			next.index.Resize(float64(next.width), float64(next.contentRows()*2))
			return next, nil
		}
	case "left", "h", "shift+tab":
		m.moveSelection(-1)
	case "right", "l", "tab":
		m.moveSelection(1)
	case "enter":
		if m.hovered != nil {
			return m.navigate(m.hovered)
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	px, py, inside := m.deviceCoords(msg.X, msg.Y)

	// Motion with no button held updates the hover state and latches
	// pointer modality.
	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		var target *model.Unit
		if inside {
			target = m.index.HitTest(px, py)
		}
		if target != m.hovered || m.modality != engine.ModalityPointer {
			m.hovered = target
			m.modality = engine.ModalityPointer
			m.kbIndex = -1
			m.pipe.markOverlay()
		}
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside {
		if target := m.index.HitTest(px, py); target != nil {
			return m.navigate(target)
		}
	}
	return m, nil
}

// navigate performs the full-navigation click action: a fresh
// unit-scoped instance with the filter cleared and the unit selector
// set. Non-clickable instances and unnamed units ignore clicks.
func (m Model) navigate(target *model.Unit) (tea.Model, tea.Cmd) {
	if !m.clickable || target.Name == "" || target.Filtered {
		return m, nil
	}
	next := NewDetailModel(m.report, m.loc.Navigate(target.Name), target)
	next.width, next.height = m.width, m.height
	next.ready = m.ready
	next.pipe.setSize(next.width, next.contentRows())
	next.index.Resize(float64(next.width), float64(next.contentRows()*2))
	return next, nil
}

// moveSelection cycles keyboard selection over non-filtered units in
// supplied order and latches keyboard modality.
func (m *Model) moveSelection(step int) {
	if len(m.units) == 0 {
		return
	}
	idx := m.kbIndex
	for range m.units {
		idx += step
		if idx < 0 {
			idx = len(m.units) - 1
		}
		if idx >= len(m.units) {
			idx = 0
		}
		if !m.units[idx].Filtered {
			m.kbIndex = idx
			m.hovered = &m.units[idx]
			m.modality = engine.ModalityKeyboard
			m.pipe.markOverlay()
			return
		}
	}
	// Everything is filtered out.
	m.kbIndex = -1
	m.hovered = nil
	m.pipe.markOverlay()
}

// syncFilter applies the filter input to the units and mirrors it into
// the location on every input event; the only coalescing is the
// renderer's once-per-frame rule.
func (m *Model) syncFilter() {
	text := m.filterInput.Value()
	if text == m.lastFilter {
		return
	}
	m.lastFilter = text
	m.terms = engine.ParseFilter(text)
	if engine.Evaluate(m.terms, m.units) {
		m.pipe.markBase()
	}
	m.loc.Set("filter", text)
	if m.hovered != nil && m.hovered.Filtered {
		m.hovered = nil
		m.kbIndex = -1
	}
	m.pipe.markOverlay()
}

func (m Model) contentRows() int {
	rows := m.height - headerLines - statusLines
	if rows < 0 {
		rows = 0
	}
	return rows
}

// deviceCoords translates terminal mouse coordinates into device-pixel
// coordinates inside the content box, sampling the cell center.
func (m Model) deviceCoords(cellX, cellY int) (px, py float64, inside bool) {
	row := cellY - headerLines
	if cellX < 0 || cellX >= m.width || row < 0 || row >= m.contentRows() {
		return 0, 0, false
	}
	return float64(cellX) + 0.5, float64(row*2) + 1, true
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteByte('\n')
	b.WriteString(m.filterView())
	b.WriteByte('\n')
	b.WriteString(m.pipe.Frame(m.units, m.overlay()))
	b.WriteByte('\n')
	b.WriteString(m.statusView())
	return b.String()
}

// overlay assembles the per-frame overlay: hover ring plus tooltip,
// with placement and the directional indicator depending on the
// current input modality.
func (m Model) overlay() overlayState {
	var ov overlayState
	if m.hovered == nil {
		return ov
	}

	ux, uy, uw, uh := m.index.DeviceRect(m.hovered)
	ov.ring = &ring{
		x0: int(ux) - 1, y0: int(uy) - 1,
		x1: int(ux+uw) + 1, y1: int(uy+uh) + 1,
	}

	lines := renderTooltip(m.hovered)
	tipW := 0
	if len(lines) > 0 {
		tipW = lipgloss.Width(lines[0])
	}
	boxW := float64(m.width)
	boxH := float64(m.contentRows() * 2)
	// Placement runs in device pixels; tooltip rows are whole cells,
	// two pixels tall each.
	x, y, place := engine.PlaceTooltip(ux, uy, uw, uh,
		boxW, boxH, float64(tipW), float64(len(lines)*2), m.modality)

	ov.tooltip = lines
	ov.tipX = int(x)
	ov.tipY = int(y) / 2

	if m.modality == engine.ModalityPointer {
		if arrow := tooltipArrow(place); arrow != "" {
			ov.arrow = arrow
			ov.arrowX = clampInt(int(ux+uw/2), 0, m.width-1)
			switch place {
			case engine.PlaceAbove:
				ov.arrowY = ov.tipY + len(lines)
			case engine.PlaceBelow:
				ov.arrowY = ov.tipY - 1
			}
		}
	}
	return ov
}

func (m Model) headerView() string {
	title := m.report.Name
	if title == "" {
		title = "progress report"
	}
	if m.scoped != "" {
		title += " › " + m.scoped
	}

	var measure string
	if m.scoped != "" {
		if u := m.report.FindUnit(m.scoped); u != nil {
			measure = fmt.Sprintf("%s fuzzy match · %s",
				util.FormatPercent(u.FuzzyMatchPercent), util.FormatSize(u.TotalCode))
		}
	} else {
		measure = fmt.Sprintf("%s fuzzy match · %s",
			util.FormatPercent(m.report.FuzzyMatchPercent), util.FormatSize(m.report.TotalCode))
	}

	left := titleStyle.Render(title) + "  " + valueStyle.Render(measure)
	right := ""
	if q := m.loc.String(); q != "" {
		right = labelStyle.Render("?" + q)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) filterView() string {
	return promptStyle.Render("filter ") + m.filterInput.View()
}

// statusView is the cursor-attribute analog: it reflects hover and
// clickability so the user knows a click will navigate.
func (m Model) statusView() string {
	if m.hovered != nil && m.clickable && m.hovered.Name != "" {
		return linkStyle.Render("↵ open "+m.hovered.Name) +
			helpStyle.Render("   / filter · ←/→ select · q quit")
	}
	if m.scoped != "" {
		return helpStyle.Render("esc back · / filter · q quit")
	}
	return helpStyle.Render("/ filter · ←/→ select · ↵ open · q quit")
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
