package tosec

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pariz/gountries"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Description is one populated field of a record with a readable gloss.
type Description struct {
	Field Field
	Value string
	// Meaning is a readable expansion of coded values, empty when the value
	// speaks for itself.
	Meaning string
}

var (
	countryQuery     *gountries.Query
	countryQueryOnce sync.Once
)

func countries() *gountries.Query {
	countryQueryOnce.Do(func() {
		countryQuery = gountries.New()
	})
	return countryQuery
}

// regionNames covers codes of the convention that are not ISO countries.
var regionNames = map[string]string{
	"EU": "Europe",
	"AS": "Asia",
	"CS": "Serbia and Montenegro",
	"YU": "Yugoslavia",
}

// CountryName resolves a two-letter region code, falling back to the code.
func CountryName(code string) string {
	if name, ok := regionNames[code]; ok {
		return name
	}
	c, err := countries().FindCountryByAlpha(code)
	if err != nil {
		return code
	}
	return c.Name.Common
}

// LanguageName resolves a two-letter language code or an M<n> marker.
func LanguageName(code string) string {
	if multiLangPattern.MatchString(code) {
		return fmt.Sprintf("%s languages", code[1:])
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return name
}

func glossPair(value string, name func(string) string) string {
	parts := strings.Split(value, "-")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, name(p))
	}
	return strings.Join(names, ", ")
}

// Describe lists the populated fields of r in column order.
func Describe(r Record) []Description {
	var out []Description
	for f := Field(0); f < numFields; f++ {
		v := r.Get(f)
		if v == "" {
			continue
		}
		d := Description{Field: f, Value: v}
		switch f {
		case FieldCountry:
			d.Meaning = glossPair(v, CountryName)
		case FieldLanguage:
			d.Meaning = glossPair(v, LanguageName)
		case FieldVerified:
			d.Meaning = "verified good dump"
		}
		out = append(out, d)
	}
	return out
}
