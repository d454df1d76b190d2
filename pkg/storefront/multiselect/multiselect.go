package multiselect

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

const (
	defaultWidth      = 40
	defaultMaxVisible = 5

	removeGlyph = "×"
)

// Option is one pickable entry in the catalog.
type Option struct {
	Value string // stable identifier carried in the selection
	Label string // display text
	Icon  string // optional glyph shown before the label
	Data  any    // caller metadata, passed through to render hooks
}

// RenderFunc produces the text body for an option. The control adds
// selection marks, cursor and badge styling around whatever the hook
// returns.
type RenderFunc func(Option) string

// ChangedMsg carries the next selection after a toggle. It is a full
// replacement: the host stores it (or whatever it decides to own) and
// pushes the result back with SetValue. ID tells instances apart when a
// view hosts several controls.
type ChangedMsg struct {
	ID    string
	Value []string
}

// Model is a controlled multi-select picker. It renders the current
// selection as removable badges on a trigger line and, while open, a
// dropdown overlay listing the catalog. The model never owns the
// selection: every toggle is emitted as a ChangedMsg and applied only
// when the host calls SetValue.
type Model struct {
	id      string
	options []Option
	value   []string

	open       bool
	focused    bool
	cursor     int // index into the visible (filtered) rows
	scroll     int
	badgeFocus int // index into the rendered badges, -1 = none
	filter     string

	placeholder  string
	maxVisible   int
	width        int
	renderOption RenderFunc
	renderBadge  RenderFunc
}

// Opt is a functional option for New.
type Opt func(*Model)

// WithPlaceholder sets the muted text shown while the selection is
// empty.
func WithPlaceholder(s string) Opt {
	return func(m *Model) { m.placeholder = s }
}

// WithMaxVisible sets how many option rows the overlay shows at once.
func WithMaxVisible(n int) Opt {
	return func(m *Model) {
		if n > 0 {
			m.maxVisible = n
		}
	}
}

// WithWidth sets the outer width of the trigger and overlay boxes.
func WithWidth(w int) Opt {
	return func(m *Model) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithRenderOption overrides how overlay rows present an option.
func WithRenderOption(f RenderFunc) Opt {
	return func(m *Model) {
		if f != nil {
			m.renderOption = f
		}
	}
}

// WithRenderBadge overrides how trigger badges present an option.
func WithRenderBadge(f RenderFunc) Opt {
	return func(m *Model) {
		if f != nil {
			m.renderBadge = f
		}
	}
}

// New creates a picker. The overlay starts closed and the control
// blurred; the host pushes the catalog and selection in with SetOptions
// and SetValue.
func New(id string, opts ...Opt) Model {
	m := Model{
		id:           id,
		maxVisible:   defaultMaxVisible,
		width:        defaultWidth,
		badgeFocus:   -1,
		renderOption: defaultRender,
		renderBadge:  defaultRender,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// defaultRender is the badge and row body used when no hook is set.
func defaultRender(opt Option) string {
	if opt.Icon != "" {
		return opt.Icon + " " + opt.Label
	}
	return opt.Label
}

// Toggle returns the selection with value removed if present (every
// occurrence, relative order of the rest preserved) or appended at the
// end if absent. The input slice is never mutated.
func Toggle(selection []string, value string) []string {
	out := make([]string, 0, len(selection)+1)
	removed := false
	for _, v := range selection {
		if v == value {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, value)
	}
	return out
}

// ID returns the instance identifier carried in emitted ChangedMsgs.
func (m Model) ID() string { return m.id }

// Open reports whether the overlay is showing.
func (m Model) Open() bool { return m.open }

// Focused reports whether the control accepts key input.
func (m Model) Focused() bool { return m.focused }

// Focus marks the control as the active key target.
func (m *Model) Focus() { m.focused = true }

// Blur releases key focus, closing the overlay and clearing any badge
// focus so the control is left in its resting state.
func (m *Model) Blur() {
	m.focused = false
	m.open = false
	m.filter = ""
	m.badgeFocus = -1
}

// Value returns a copy of the last selection pushed in by the host.
func (m Model) Value() []string {
	return append([]string(nil), m.value...)
}

// SetValue replaces the displayed selection. The slice is copied; badge
// focus is clamped to the badges that remain resolvable.
func (m *Model) SetValue(value []string) {
	m.value = append([]string(nil), value...)
	if n := len(m.badges()); m.badgeFocus >= n {
		m.badgeFocus = n - 1
	}
}

// SetOptions replaces the catalog. Cursor, scroll and badge focus are
// clamped against the new rows.
func (m *Model) SetOptions(options []Option) {
	m.options = append([]Option(nil), options...)
	if n := len(m.badges()); m.badgeFocus >= n {
		m.badgeFocus = n - 1
	}
	rows := m.visibleRows()
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll(len(rows))
}

// SetWidth changes the outer width of the trigger and overlay boxes.
func (m *Model) SetWidth(w int) {
	if w > 0 {
		m.width = w
	}
}

// lookup finds the catalog option for a selection value.
func (m Model) lookup(value string) (Option, bool) {
	for _, opt := range m.options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// badges resolves the selection against the catalog, in selection
// order. Values missing from the catalog are skipped without error.
func (m Model) badges() []Option {
	var out []Option
	for _, v := range m.value {
		if opt, ok := m.lookup(v); ok {
			out = append(out, opt)
		}
	}
	return out
}

// selected reports whether value is part of the current selection.
func (m Model) selected(value string) bool {
	for _, v := range m.value {
		if v == value {
			return true
		}
	}
	return false
}

// optionSource adapts the catalog for fuzzy matching over labels.
type optionSource []Option

func (s optionSource) String(i int) string { return s[i].Label }
func (s optionSource) Len() int            { return len(s) }

// visibleRows returns the catalog indexes shown in the overlay. With an
// active filter only fuzzy matches survive; catalog order defines row
// order either way.
func (m Model) visibleRows() []int {
	if m.filter == "" {
		rows := make([]int, len(m.options))
		for i := range m.options {
			rows[i] = i
		}
		return rows
	}
	matches := fuzzy.FindFrom(m.filter, optionSource(m.options))
	rows := make([]int, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, match.Index)
	}
	sort.Ints(rows)
	return rows
}

// Update handles key input. Value receiver: the updated model is
// returned alongside an optional command carrying a ChangedMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}
	if m.open {
		return m.updateOpen(key)
	}
	return m.updateClosed(key)
}

// updateClosed handles keys while only the trigger is showing: opening
// the overlay, and badge focus plus removal without ever opening it.
func (m Model) updateClosed(key tea.KeyMsg) (Model, tea.Cmd) {
	badges := m.badges()

	switch key.String() {
	case "enter", " ":
		// Trigger activation.
		m.open = true
		m.cursor = 0
		m.scroll = 0
		m.filter = ""
		m.badgeFocus = -1
		return m, nil

	case "left":
		if len(badges) == 0 {
			return m, nil
		}
		if m.badgeFocus < 0 {
			m.badgeFocus = len(badges) - 1
		} else if m.badgeFocus > 0 {
			m.badgeFocus--
		}
		return m, nil

	case "right":
		if m.badgeFocus < 0 {
			return m, nil
		}
		if m.badgeFocus >= len(badges)-1 {
			m.badgeFocus = -1
		} else {
			m.badgeFocus++
		}
		return m, nil

	case "backspace", "delete", "x":
		// Badge removal stays closed: it must not double as trigger
		// activation.
		if len(badges) == 0 {
			return m, nil
		}
		idx := m.badgeFocus
		if idx < 0 || idx >= len(badges) {
			idx = len(badges) - 1
		}
		return m, m.emit(Toggle(m.value, badges[idx].Value))
	}

	return m, nil
}

// updateOpen handles keys while the overlay is showing: cursor
// movement, toggling, dismissal, and type-to-filter.
func (m Model) updateOpen(key tea.KeyMsg) (Model, tea.Cmd) {
	rows := m.visibleRows()

	switch key.String() {
	case "esc":
		// Dismiss without a toggle.
		m.open = false
		m.filter = ""
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible(len(rows))
		}
		return m, nil

	case "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
			m.ensureCursorVisible(len(rows))
		}
		return m, nil

	case "enter", " ":
		if len(rows) == 0 || m.cursor >= len(rows) {
			return m, nil
		}
		next := Toggle(m.value, m.options[rows[m.cursor]].Value)
		// Every toggle closes the overlay, selecting and deselecting
		// alike.
		m.open = false
		m.filter = ""
		return m, m.emit(next)

	case "backspace":
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.cursor = 0
			m.scroll = 0
		}
		return m, nil
	}

	if key.Type == tea.KeyRunes {
		m.filter += string(key.Runes)
		m.cursor = 0
		m.scroll = 0
	}
	return m, nil
}

// emit wraps the next selection in a ChangedMsg command. The model's
// own value stays untouched until the host pushes it back.
func (m Model) emit(next []string) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{ID: m.id, Value: next}
	}
}

// ensureCursorVisible adjusts the scroll offset so the cursor row stays
// within the visible window.
func (m *Model) ensureCursorVisible(total int) {
	visible := min(m.maxVisible, total)
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	} else if visible > 0 && m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	m.clampScroll(total)
}

// clampScroll keeps the scroll offset within valid bounds.
func (m *Model) clampScroll(total int) {
	maxScroll := total - min(m.maxVisible, total)
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View renders the trigger line and, while open, the overlay below it.
func (m Model) View() string {
	trigger := m.renderTrigger()
	if !m.open {
		return trigger
	}
	return trigger + "\n" + m.renderOverlay()
}

// renderTrigger renders the badge line, or the placeholder when the
// selection is empty. A selection holding only values the catalog
// cannot resolve renders zero badges and no placeholder.
func (m Model) renderTrigger() string {
	inner := m.width - 4

	var content string
	if len(m.value) == 0 {
		content = PlaceholderStyle.Render(m.placeholder)
	} else {
		badges := m.badges()
		parts := make([]string, 0, len(badges))
		for i, opt := range badges {
			parts = append(parts, m.renderBadgeChip(opt, i == m.badgeFocus))
		}
		content = strings.Join(parts, " ")
	}

	if lipgloss.Width(content) > inner {
		content = ansi.Truncate(content, inner, "…")
	}

	style := TriggerStyle
	if m.focused || m.open {
		style = TriggerActiveStyle
	}
	return style.Width(m.width - 2).Render(content)
}

// renderBadgeChip renders one selected value with its removal
// affordance.
func (m Model) renderBadgeChip(opt Option, focused bool) string {
	style := BadgeStyle
	if focused {
		style = BadgeFocusedStyle
	}
	return style.Render(" " + m.renderBadge(opt) + " " + removeGlyph)
}

// renderOverlay renders the dropdown option list with scroll
// indicators and the active filter, if any.
func (m Model) renderOverlay() string {
	rows := m.visibleRows()
	inner := m.width - 4

	visible := min(m.maxVisible, len(rows))
	start := m.scroll
	if start > len(rows)-visible {
		start = len(rows) - visible
	}
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	if m.filter != "" {
		b.WriteString(FilterStyle.Render("/" + m.filter))
		b.WriteString("\n")
	}

	switch {
	case len(m.options) == 0:
		b.WriteString(MutedTextStyle.Render("(no options)"))
	case len(rows) == 0:
		b.WriteString(MutedTextStyle.Render("(no matches)"))
	default:
		if start > 0 {
			b.WriteString(MutedTextStyle.Render("↑ more above"))
			b.WriteString("\n")
		}
		for i := 0; i < visible; i++ {
			rowIdx := start + i
			if rowIdx >= len(rows) {
				break
			}
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.renderRow(m.options[rows[rowIdx]], rowIdx == m.cursor, inner))
		}
		if start+visible < len(rows) {
			b.WriteString("\n")
			b.WriteString(MutedTextStyle.Render("↓ more below"))
		}
	}

	return OverlayStyle.Width(m.width - 2).Render(b.String())
}

// renderRow renders one catalog option row: cursor and selection marks
// stay with the control, the body comes from the render hook.
func (m Model) renderRow(opt Option, underCursor bool, width int) string {
	cursor := "  "
	if underCursor {
		cursor = CursorStyle.Render("> ")
	}

	mark := "  "
	isSelected := m.selected(opt.Value)
	if isSelected {
		mark = CheckStyle.Render("✓ ")
	}

	style := RowNormalStyle
	if underCursor {
		style = RowCursorStyle
	} else if isSelected {
		style = RowSelectedStyle
	}

	line := cursor + mark + style.Render(m.renderOption(opt))
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
