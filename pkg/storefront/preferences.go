package storefront

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/i18n"
	"github.com/polkashop/polka/pkg/storefront/multiselect"
)

// Picker instance IDs. ChangedMsg routing in the root Update keys off
// these.
const (
	pickerBrands = "preferences.brands"
	pickerStyles = "preferences.styles"
)

const pickerMaxWidth = 60

// preferencesState hosts the favorite-brand and favorite-style pickers.
// The selections live here, not inside the pickers: every toggle comes
// back as a ChangedMsg carrying the full replacement slice, which is
// stored, pushed back down with SetValue, and sent to the backend.
type preferencesState struct {
	brands multiselect.Model
	styles multiselect.Model

	brandSelection []string
	styleSelection []string
}

func newPreferences(loc *i18n.Localizer) preferencesState {
	brands := multiselect.New(pickerBrands,
		multiselect.WithPlaceholder(loc.T("brands_placeholder")),
		multiselect.WithMaxVisible(8),
	)
	styles := multiselect.New(pickerStyles,
		multiselect.WithPlaceholder(loc.T("styles_placeholder")),
		multiselect.WithMaxVisible(8),
	)
	brands.Focus()
	return preferencesState{brands: brands, styles: styles}
}

// setCatalog fills both pickers from the reference data. Brand IDs are
// integers on the wire and travel through the pickers as strings.
func (s *preferencesState) setCatalog(brands []api.Brand, styles []api.Style) {
	brandOpts := make([]multiselect.Option, 0, len(brands))
	for _, b := range brands {
		brandOpts = append(brandOpts, multiselect.Option{
			Value: strconv.Itoa(b.ID),
			Label: b.Name,
			Data:  b,
		})
	}
	s.brands.SetOptions(brandOpts)

	styleOpts := make([]multiselect.Option, 0, len(styles))
	for _, st := range styles {
		styleOpts = append(styleOpts, multiselect.Option{
			Value: st.ID,
			Label: st.Name,
			Data:  st,
		})
	}
	s.styles.SetOptions(styleOpts)
}

// seed loads the saved favorites from the profile into both pickers.
func (s *preferencesState) seed(profile api.Profile) {
	brandValues := make([]string, 0, len(profile.FavoriteBrands))
	for _, b := range profile.FavoriteBrands {
		brandValues = append(brandValues, strconv.Itoa(b.ID))
	}
	s.brandSelection = brandValues
	s.brands.SetValue(brandValues)

	styleValues := make([]string, 0, len(profile.FavoriteStyles))
	for _, st := range profile.FavoriteStyles {
		styleValues = append(styleValues, st.ID)
	}
	s.styleSelection = styleValues
	s.styles.SetValue(styleValues)
}

func (s *preferencesState) setWidth(w int) {
	pw := min(w-4, pickerMaxWidth)
	s.brands.SetWidth(pw)
	s.styles.SetWidth(pw)
}

// capturing reports whether a picker overlay is open and owns the
// keyboard.
func (s preferencesState) capturing() bool {
	return s.brands.Open() || s.styles.Open()
}

// updatePreferences routes picker changes and keys for the view.
func (m Model) updatePreferences(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case multiselect.ChangedMsg:
		switch msg.ID {
		case pickerBrands:
			m.preferences.brandSelection = msg.Value
			m.preferences.brands.SetValue(msg.Value)
			return m, m.saveFavoriteBrands(brandIDValues(msg.Value))
		case pickerStyles:
			m.preferences.styleSelection = msg.Value
			m.preferences.styles.SetValue(msg.Value)
			return m, m.saveFavoriteStyles(msg.Value)
		}
		return m, nil

	case tea.KeyMsg:
		// up/down move between the stacked pickers while both
		// overlays are closed.
		if !m.preferences.capturing() {
			switch msg.String() {
			case "down", "j":
				if m.preferences.brands.Focused() {
					m.preferences.brands.Blur()
					m.preferences.styles.Focus()
					return m, nil
				}
			case "up", "k":
				if m.preferences.styles.Focused() {
					m.preferences.styles.Blur()
					m.preferences.brands.Focus()
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	if m.preferences.styles.Focused() {
		m.preferences.styles, cmd = m.preferences.styles.Update(msg)
	} else {
		m.preferences.brands, cmd = m.preferences.brands.Update(msg)
	}
	return m, cmd
}

// brandIDValues converts picker selection values back to the integer
// IDs the backend expects. Non-numeric values are skipped.
func brandIDValues(values []string) []int {
	ids := make([]int, 0, len(values))
	for _, v := range values {
		id, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (m Model) renderPreferences() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(m.loc.T("brands_title")))
	b.WriteString("\n")
	b.WriteString(m.preferences.brands.View())
	b.WriteString("\n\n")
	b.WriteString(sectionTitleStyle.Render(m.loc.T("styles_title")))
	b.WriteString("\n")
	b.WriteString(m.preferences.styles.View())
	return b.String()
}
