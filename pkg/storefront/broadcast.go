package storefront

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/polkashop/polka/internal/i18n"
)

const broadcastCharLimit = 500

type broadcastPhase int

const (
	broadcastIdle broadcastPhase = iota
	broadcastSending
	broadcastSent
	broadcastFailed
)

// broadcastState drives the admin notification to brands. The submit
// is the only mutating call that leaves the client: one POST per form
// completion, no retry. A rejected send keeps the typed message so it
// can be submitted again as is.
type broadcastState struct {
	form    *huh.Form
	draft   *string
	phase   broadcastPhase
	message string
	failure string
	width   int
}

func newBroadcast(loc *i18n.Localizer) broadcastState {
	form, draft := newBroadcastForm(loc, 0, "")
	return broadcastState{form: form, draft: draft}
}

// newBroadcastForm builds a one-field form seeded with initial text.
// The returned pointer is the field's bound value; it holds the final
// text once the form completes.
func newBroadcastForm(loc *i18n.Localizer, width int, initial string) (*huh.Form, *string) {
	value := initial
	text := huh.NewText().
		Key("message").
		Title(loc.T("broadcast_message_label")).
		CharLimit(broadcastCharLimit).
		Value(&value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New(loc.T("broadcast_empty"))
			}
			return nil
		})
	form := huh.NewForm(huh.NewGroup(text))
	if width > 0 {
		form = form.WithWidth(width)
	}
	return form, &value
}

func (s broadcastState) initCmd() tea.Cmd {
	return s.form.Init()
}

func (s *broadcastState) setWidth(w int) {
	s.width = w
	if fw := s.formWidth(); fw > 0 {
		s.form = s.form.WithWidth(fw)
	}
}

func (s broadcastState) formWidth() int {
	if s.width == 0 {
		return 0
	}
	return min(s.width-4, 64)
}

func (m Model) updateBroadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	b := &m.broadcast

	switch msg := msg.(type) {
	case broadcastResultMsg:
		if b.phase != broadcastSending {
			return m, nil
		}
		if msg.Err != nil {
			b.phase = broadcastFailed
			b.failure = m.loc.T("broadcast_failed")
			b.form, b.draft = newBroadcastForm(m.loc, b.formWidth(), b.message)
			return m, b.form.Init()
		}
		b.phase = broadcastSent
		b.message = ""
		b.form, b.draft = newBroadcastForm(m.loc, b.formWidth(), "")
		return m, b.form.Init()

	case tea.KeyMsg:
		if msg.String() == "esc" {
			m.view = ViewDiscover
			return m, nil
		}
	}

	// An in-flight send owns the screen until its result lands.
	if b.phase == broadcastSending {
		return m, nil
	}

	f, cmd := b.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		b.form = form
	}

	if b.form.State == huh.StateCompleted {
		message := strings.TrimSpace(*b.draft)
		b.message = message
		b.phase = broadcastSending
		b.failure = ""
		return m, tea.Batch(m.sendBroadcast(message), m.spinner.Tick, cmd)
	}
	return m, cmd
}

func (m Model) renderBroadcast() string {
	b := m.broadcast

	var out strings.Builder
	out.WriteString(sectionTitleStyle.Render(m.loc.T("broadcast_title")))
	out.WriteString("\n")
	out.WriteString(subtleStyle.Render(m.loc.T("broadcast_confirm")))
	out.WriteString("\n\n")

	switch b.phase {
	case broadcastSent:
		out.WriteString(successBannerStyle.Render(m.loc.T("broadcast_sent")))
		out.WriteString("\n\n")
	case broadcastFailed:
		out.WriteString(errorBannerStyle.Render(b.failure))
		out.WriteString("\n\n")
	}

	if b.phase == broadcastSending {
		out.WriteString(m.spinner.View())
		out.WriteString(" ")
		out.WriteString(subtleStyle.Render(m.loc.T("broadcast_sending")))
		return out.String()
	}

	out.WriteString(b.form.View())
	return out.String()
}
