// Package money formats order and product amounts for display. Amounts are
// kept in minor units (kopecks for RUB) so arithmetic stays exact; rendering
// goes through x/text so digit grouping and decimal separators follow the
// user's locale.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amount is a monetary value in minor units (1/100 of the currency unit).
type Amount int64

// FromFloat converts a major-unit value (as the backend serializes prices)
// to minor units, rounding half away from zero.
func FromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// Float returns the major-unit value.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// UnmarshalJSON accepts both JSON numbers and numeric strings; the backend
// emits Decimal fields either way depending on the endpoint.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", s, err)
	}
	*a = FromFloat(f)
	return nil
}

// MarshalJSON emits the major-unit value as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(a.Float(), 'f', 2, 64)), nil
}

// symbols maps the currency codes the marketplace actually uses. Anything
// else falls back to the raw code as a suffix.
var symbols = map[string]string{
	"RUB": "₽",
	"USD": "$",
	"EUR": "€",
}

// Tag resolves a config locale ("ru", "en") to a language tag, defaulting
// to Russian for anything unrecognized.
func Tag(locale string) language.Tag {
	switch strings.ToLower(locale) {
	case "en":
		return language.English
	case "", "ru":
		return language.Russian
	default:
		tag, err := language.Parse(locale)
		if err != nil {
			return language.Russian
		}
		return tag
	}
}

// Format renders an amount with its currency for the given locale.
// Whole amounts drop the fraction: 350 ₽ rather than 350,00 ₽.
// Russian output puts the symbol after the number, English before.
func Format(a Amount, code string, tag language.Tag) string {
	p := message.NewPrinter(tag)

	var num string
	if a%100 == 0 {
		num = p.Sprintf("%v", number.Decimal(int64(a/100)))
	} else {
		num = p.Sprintf("%v", number.Decimal(a.Float(),
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	sym, known := symbols[code]
	if !known {
		if code == "" {
			return num
		}
		return num + "\u00a0" + code // no-break space
	}

	base, _ := tag.Base()
	if base.String() == "en" {
		return sym + num
	}
	return num + "\u00a0" + sym
}
