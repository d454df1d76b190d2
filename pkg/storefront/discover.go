package storefront

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/i18n"
	"github.com/polkashop/polka/internal/money"
	"github.com/polkashop/polka/pkg/storefront/multiselect"
)

const pickerCategories = "discover.categories"

type discoverFocus int

const (
	focusSearch discoverFocus = iota
	focusCategories
	focusList
)

// discoverState is the product feed: recommendations by default, search
// results after a query, both narrowed by the category picker.
type discoverState struct {
	search     textinput.Model
	categories multiselect.Model

	categorySelection []string

	feed     []api.Product
	results  []api.Product
	searched bool
	query    string

	cursor int
	scroll int
	focus  discoverFocus

	width    int
	renderer *glamour.TermRenderer
}

func newDiscover(loc *i18n.Localizer) discoverState {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = loc.T("search_placeholder")
	search.CharLimit = 80

	categories := multiselect.New(pickerCategories,
		multiselect.WithPlaceholder(loc.T("categories_placeholder")),
		multiselect.WithMaxVisible(6),
	)

	return discoverState{
		search:     search,
		categories: categories,
		focus:      focusList,
	}
}

func (s *discoverState) setCatalog(categories []api.Category) {
	opts := make([]multiselect.Option, 0, len(categories))
	for _, c := range categories {
		opts = append(opts, multiselect.Option{
			Value: c.ID,
			Label: c.Name,
			Data:  c,
		})
	}
	s.categories.SetOptions(opts)
}

func (s *discoverState) setFeed(products []api.Product) {
	s.feed = products
	s.cursor = 0
	s.scroll = 0
}

func (s *discoverState) setWidth(w int) {
	s.width = w
	s.categories.SetWidth(min(w-4, pickerMaxWidth))
	s.search.Width = min(w-10, 56)
	if r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(w-8, 72)),
	); err == nil {
		s.renderer = r
	}
}

// capturing reports whether the search box or the category overlay owns
// the keyboard.
func (s discoverState) capturing() bool {
	return s.search.Focused() || s.categories.Open()
}

func (s *discoverState) ensureVisible(total, visible int) {
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	} else if s.cursor >= s.scroll+visible {
		s.scroll = s.cursor - visible + 1
	}
	maxScroll := max(0, total-visible)
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
}

func (m Model) updateDiscover(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		if msg.Err != nil {
			return m.setStatus(m.loc.T("search_failed"), true)
		}
		m.discover.results = msg.Products
		m.discover.searched = true
		m.discover.query = msg.Query
		m.discover.cursor = 0
		m.discover.scroll = 0
		return m, nil

	case multiselect.ChangedMsg:
		if msg.ID == pickerCategories {
			m.discover.categorySelection = msg.Value
			m.discover.categories.SetValue(msg.Value)
			m.discover.cursor = 0
			m.discover.scroll = 0
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleDiscoverKey(msg)
	}
	return m, nil
}

func (m Model) handleDiscoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.discover

	// An open overlay owns every key.
	if d.categories.Open() {
		var cmd tea.Cmd
		d.categories, cmd = d.categories.Update(msg)
		return m, cmd
	}

	switch d.focus {
	case focusSearch:
		switch msg.String() {
		case "enter":
			return m.runSearch()
		case "esc":
			// First esc clears the query, second leaves the box.
			if d.search.Value() != "" {
				d.search.SetValue("")
				d.searched = false
				d.results = nil
				d.query = ""
				d.cursor, d.scroll = 0, 0
				return m, nil
			}
			d.search.Blur()
			d.focus = focusList
			return m, nil
		case "down":
			d.search.Blur()
			d.focus = focusCategories
			d.categories.Focus()
			return m, nil
		}
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		d.cursor, d.scroll = 0, 0
		return m, cmd

	case focusCategories:
		switch msg.String() {
		case "up", "k":
			d.categories.Blur()
			d.focus = focusSearch
			return m, d.search.Focus()
		case "down", "j":
			d.categories.Blur()
			d.focus = focusList
			return m, nil
		case "/":
			d.categories.Blur()
			d.focus = focusSearch
			return m, d.search.Focus()
		}
		var cmd tea.Cmd
		d.categories, cmd = d.categories.Update(msg)
		return m, cmd

	default:
		rows := m.discoverRows()
		switch msg.String() {
		case "/":
			d.focus = focusSearch
			return m, d.search.Focus()
		case "c":
			d.focus = focusCategories
			d.categories.Focus()
			return m, nil
		case "up", "k":
			if d.cursor == 0 {
				d.focus = focusCategories
				d.categories.Focus()
				return m, nil
			}
			d.cursor--
			d.ensureVisible(len(rows), m.listVisible())
			return m, nil
		case "down", "j":
			if d.cursor < len(rows)-1 {
				d.cursor++
				d.ensureVisible(len(rows), m.listVisible())
			}
			return m, nil
		case "g", "home":
			d.cursor, d.scroll = 0, 0
			return m, nil
		case "G", "end":
			if len(rows) > 0 {
				d.cursor = len(rows) - 1
				d.ensureVisible(len(rows), m.listVisible())
			}
			return m, nil
		}
		return m, nil
	}
}

// runSearch fires the backend query and drops focus onto the list. An
// empty query reverts to the recommendation feed without a request.
func (m Model) runSearch() (tea.Model, tea.Cmd) {
	d := &m.discover
	query := strings.TrimSpace(d.search.Value())
	d.search.Blur()
	d.focus = focusList
	d.cursor, d.scroll = 0, 0
	if query == "" {
		d.searched = false
		d.results = nil
		d.query = ""
		return m, nil
	}
	category := ""
	if len(d.categorySelection) > 0 {
		category = d.categorySelection[0]
	}
	return m, m.searchProducts(query, category)
}

// discoverRows is the list on screen: search results or the feed,
// filtered by the selected categories, and narrowed live against the
// search box while no server search is active.
func (m Model) discoverRows() []api.Product {
	d := m.discover
	base := d.feed
	if d.searched {
		base = d.results
	}
	rows := filterByCategory(base, d.categorySelection)
	if !d.searched {
		if q := strings.TrimSpace(d.search.Value()); q != "" {
			rows = narrowProducts(rows, q)
		}
	}
	return rows
}

func filterByCategory(products []api.Product, selection []string) []api.Product {
	if len(selection) == 0 {
		return products
	}
	want := make(map[string]bool, len(selection))
	for _, id := range selection {
		want[id] = true
	}
	out := make([]api.Product, 0, len(products))
	for _, p := range products {
		if want[p.CategoryID] {
			out = append(out, p)
		}
	}
	return out
}

type productSource []api.Product

func (s productSource) String(i int) string { return s[i].Name + " " + s[i].BrandName }
func (s productSource) Len() int            { return len(s) }

// narrowProducts fuzzy-matches name and brand. Matches keep their feed
// order rather than the match score order.
func narrowProducts(products []api.Product, query string) []api.Product {
	matches := fuzzy.FindFrom(query, productSource(products))
	indexes := make([]int, 0, len(matches))
	for _, match := range matches {
		indexes = append(indexes, match.Index)
	}
	sort.Ints(indexes)
	out := make([]api.Product, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, products[i])
	}
	return out
}

func (m Model) listVisible() int {
	visible := m.height - 18
	if visible < 4 {
		visible = 4
	}
	if visible > 10 {
		visible = 10
	}
	return visible
}

func (m Model) renderDiscover() string {
	d := m.discover
	rows := m.discoverRows()

	var b strings.Builder
	b.WriteString(d.search.View())
	b.WriteString("\n")
	b.WriteString(d.categories.View())
	b.WriteString("\n\n")

	title := m.loc.T("recommendations_title")
	if d.searched {
		title = m.loc.T("results_title")
	}
	b.WriteString(sectionTitleStyle.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		empty := m.loc.T("feed_empty")
		if d.searched || strings.TrimSpace(d.search.Value()) != "" {
			empty = m.loc.T("search_empty")
		}
		b.WriteString(subtleStyle.Render(empty))
		return b.String()
	}

	visible := m.listVisible()
	cursor := min(d.cursor, len(rows)-1)
	start := d.scroll
	if start > len(rows)-1 {
		start = max(0, len(rows)-visible)
	}
	end := min(start+visible, len(rows))
	for i := start; i < end; i++ {
		b.WriteString(m.renderProductRow(rows[i], i == cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderProductDetail(rows[cursor]))
	return b.String()
}

func (m Model) renderProductRow(p api.Product, selected bool) string {
	name := ansi.Truncate(p.Name, 34, "…")
	liked := ""
	if p.IsLiked {
		liked = " ♥"
	}
	price := money.Format(p.Price, "RUB", m.moneyTag)
	if selected {
		plain := fmt.Sprintf("> %s%s  %s  %s", name, liked, p.BrandName, price)
		return highlightRow(plain, m.width-2)
	}
	return fmt.Sprintf("  %s%s  %s  %s",
		name,
		lipgloss.NewStyle().Foreground(primaryColor).Render(liked),
		brandStyle.Render(p.BrandName),
		priceStyle.Render(price),
	)
}

func (m Model) renderProductDetail(p api.Product) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Name))
	b.WriteString("\n")
	b.WriteString(brandStyle.Render(p.BrandName))
	if p.ArticleNumber != "" {
		b.WriteString(subtleStyle.Render("  " + p.ArticleNumber))
	}
	b.WriteString("\n")
	b.WriteString(priceStyle.Render(money.Format(p.Price, "RUB", m.moneyTag)))

	attrs := make([]string, 0, 2)
	if p.Color != "" {
		attrs = append(attrs, p.Color)
	}
	if p.Material != "" {
		attrs = append(attrs, p.Material)
	}
	if len(attrs) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(strings.Join(attrs, " / ")))
	}

	sizes := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		if v.StockQuantity > 0 {
			sizes = append(sizes, v.Size)
		}
	}
	if len(sizes) > 0 {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(strings.Join(sizes, " ")))
	}

	if p.Description != "" {
		desc := p.Description
		if m.discover.renderer != nil {
			if out, err := m.discover.renderer.Render(p.Description); err == nil {
				desc = strings.TrimRight(out, "\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(desc)
	}

	return detailBoxStyle.Width(m.width - 4).Render(b.String())
}
