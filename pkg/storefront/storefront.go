// Package storefront is the polka terminal client: a bubbletea program
// over the marketplace backend with views for product discovery,
// favorite brand and style preferences, order history, and the admin
// brand broadcast.
package storefront

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/i18n"
	"github.com/polkashop/polka/internal/money"
	"github.com/polkashop/polka/internal/version"
	"github.com/polkashop/polka/pkg/storefront/multiselect"
)

// View identifies one of the storefront's screens.
type View int

const (
	ViewDiscover View = iota
	ViewPreferences
	ViewOrders
	ViewBroadcast

	viewCount = 4
)

// ParseView maps a CLI flag value to a starting view. Unrecognized
// values fall back to the discover feed.
func ParseView(s string) View {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preferences", "favorites":
		return ViewPreferences
	case "orders":
		return ViewOrders
	case "broadcast", "notify":
		return ViewBroadcast
	default:
		return ViewDiscover
	}
}

// statusClearDelay is how long transient status-line feedback stays up.
const statusClearDelay = 2 * time.Second

// Options configures a storefront program.
type Options struct {
	Client    *api.Client
	Localizer *i18n.Localizer
	Locale    string
	Version   string
	StartView View
}

// Model is the root bubbletea model hosting the four views.
type Model struct {
	client   *api.Client
	loc      *i18n.Localizer
	moneyTag language.Tag
	version  string

	width  int
	height int

	view    View
	loading bool
	loadErr error
	spinner spinner.Model

	statusMessage string
	statusIsError bool
	updateNotice  string

	discover    discoverState
	preferences preferencesState
	orders      ordersState
	broadcast   broadcastState
}

// New builds the root model. Data arrives asynchronously after Init.
func New(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	m := Model{
		client:   opts.Client,
		loc:      opts.Localizer,
		moneyTag: money.Tag(opts.Locale),
		version:  opts.Version,
		view:     opts.StartView,
		loading:  true,
		spinner:  sp,
	}
	m.discover = newDiscover(opts.Localizer)
	m.preferences = newPreferences(opts.Localizer)
	m.broadcast = newBroadcast(opts.Localizer)
	return m
}

// Init starts the spinner, the concurrent startup fetch, and the
// background release check.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCatalog(),
		version.CheckAsync(m.version),
	)
}

// Update is the root dispatcher: global keys, async results, then the
// active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturingInput() {
			if next, cmd, handled := m.handleGlobalKey(msg); handled {
				return next, cmd
			}
		}

	case spinner.TickMsg:
		if m.loading || m.broadcast.phase == broadcastSending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err
			return m, nil
		}
		m.applyCatalog(msg.Data)
		return m, nil

	case favoritesSavedMsg:
		if msg.Err != nil {
			return m.setStatus(m.loc.T("favorites_save_failed"), true)
		}
		return m.setStatus(m.loc.T("favorites_saved"), false)

	case searchResultsMsg:
		return m.updateDiscover(msg)

	case broadcastResultMsg:
		return m.updateBroadcast(msg)

	case multiselect.ChangedMsg:
		switch msg.ID {
		case pickerBrands, pickerStyles:
			return m.updatePreferences(msg)
		case pickerCategories:
			return m.updateDiscover(msg)
		}
		return m, nil

	case version.UpdateAvailableMsg:
		m.updateNotice = m.loc.TData("update_available", map[string]any{
			"Version": msg.LatestVersion,
		})
		return m, nil

	case ClearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil
	}

	return m.updateActiveView(msg)
}

// handleGlobalKey processes view switching and quitting. It only runs
// while no view is capturing text input.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "tab":
		return m.switchView((m.view + 1) % viewCount)
	case "shift+tab":
		return m.switchView((m.view + viewCount - 1) % viewCount)
	case "1":
		return m.switchView(ViewDiscover)
	case "2":
		return m.switchView(ViewPreferences)
	case "3":
		return m.switchView(ViewOrders)
	case "4":
		return m.switchView(ViewBroadcast)
	}
	return m, nil, false
}

// switchView activates a view; the broadcast form needs its Init
// command when it comes into view.
func (m Model) switchView(v View) (Model, tea.Cmd, bool) {
	prev := m.view
	m.view = v
	if v == ViewBroadcast && prev != ViewBroadcast {
		return m, m.broadcast.initCmd(), true
	}
	return m, nil, true
}

// updateActiveView forwards a message to the view on screen.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewDiscover:
		return m.updateDiscover(msg)
	case ViewPreferences:
		return m.updatePreferences(msg)
	case ViewOrders:
		return m.updateOrders(msg)
	case ViewBroadcast:
		return m.updateBroadcast(msg)
	}
	return m, nil
}

// capturingInput reports whether the active view owns the keyboard:
// a focused search box, an open picker overlay, or the broadcast form.
func (m Model) capturingInput() bool {
	switch m.view {
	case ViewDiscover:
		return m.discover.capturing()
	case ViewPreferences:
		return m.preferences.capturing()
	case ViewBroadcast:
		return true
	}
	return false
}

// applyCatalog seeds every view from the startup fetch.
func (m *Model) applyCatalog(data catalogData) {
	m.preferences.setCatalog(data.Brands, data.Styles)
	if data.Profile != nil {
		m.preferences.seed(*data.Profile)
	}
	m.discover.setCatalog(data.Categories)
	m.discover.setFeed(data.Recommendations)
	m.orders.setOrders(data.Orders)
	m.resize()
}

// setStatus shows transient feedback on the status line and schedules
// its reset.
func (m Model) setStatus(text string, isError bool) (Model, tea.Cmd) {
	m.statusMessage = text
	m.statusIsError = isError
	return m, clearStatusAfter(statusClearDelay)
}

// resize re-derives child widths from the current terminal size.
func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	m.preferences.setWidth(m.width)
	m.discover.setWidth(m.width)
	m.broadcast.setWidth(m.width)
}

// View renders the chrome around the active view: title bar with tabs
// and the update notice, the content, and the status line.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtleStyle.Render(m.loc.T("loading")))
	case m.loadErr != nil:
		b.WriteString(errorBannerStyle.Render(m.loc.T("load_failed")))
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(m.loadErr.Error()))
	default:
		b.WriteString(m.renderActiveView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderActiveView() string {
	switch m.view {
	case ViewDiscover:
		return m.renderDiscover()
	case ViewPreferences:
		return m.renderPreferences()
	case ViewOrders:
		return m.renderOrders()
	case ViewBroadcast:
		return m.renderBroadcast()
	}
	return ""
}

// renderHeader draws the title and the numbered view tabs.
func (m Model) renderHeader() string {
	tabs := []struct {
		view  View
		label string
	}{
		{ViewDiscover, "1 " + m.loc.T("tab_discover")},
		{ViewPreferences, "2 " + m.loc.T("tab_preferences")},
		{ViewOrders, "3 " + m.loc.T("tab_orders")},
		{ViewBroadcast, "4 " + m.loc.T("tab_broadcast")},
	}

	parts := make([]string, 0, len(tabs)+2)
	parts = append(parts, titleStyle.Render(" polka "))
	for _, tab := range tabs {
		style := tabStyle
		if tab.view == m.view {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(tab.label))
	}
	if m.updateNotice != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(warningColor).Render(m.updateNotice))
	}
	return strings.Join(parts, " ")
}

// renderStatusLine draws transient feedback, or the key hints when
// there is none.
func (m Model) renderStatusLine() string {
	if m.statusMessage != "" {
		if m.statusIsError {
			return statusErrorStyle.Render(m.statusMessage)
		}
		return statusStyle.Render(m.statusMessage)
	}

	hint := m.loc.T("tab_hint") + "  ·  " + m.loc.T("quit_hint")
	if m.view == ViewBroadcast {
		hint = m.loc.T("back_hint")
	}
	return subtleStyle.Render(hint)
}
