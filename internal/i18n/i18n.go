// Package i18n provides the user-facing message catalog. Russian is the
// product language; English is available for development setups. Message
// files are TOML, embedded at build time.
package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locale/*.toml
var localeFS embed.FS

var bundle = loadBundle()

func loadBundle() *goi18n.Bundle {
	b := goi18n.NewBundle(language.Russian)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// Embedded catalogs are part of the build; a parse failure is a
	// programming error, not a runtime condition.
	for _, name := range []string{"locale/active.ru.toml", "locale/active.en.toml"} {
		data, err := localeFS.ReadFile(name)
		if err != nil {
			panic(err)
		}
		b.MustParseMessageFileBytes(data, name)
	}
	return b
}

// Localizer resolves message IDs for one language, falling back to Russian.
type Localizer struct {
	loc *goi18n.Localizer
}

// New returns a Localizer for the given language tag ("ru", "en").
func New(lang string) *Localizer {
	return &Localizer{loc: goi18n.NewLocalizer(bundle, lang)}
}

// T resolves a message ID. Unknown IDs come back unchanged so a missing
// translation shows up in the UI instead of crashing it.
func (l *Localizer) T(id string) string {
	msg, err := l.loc.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// TData resolves a message ID with template data.
func (l *Localizer) TData(id string, data map[string]any) string {
	msg, err := l.loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
