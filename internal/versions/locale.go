package versions

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// English is the language code the MyAndEnglish facet pairs with.
const English = "en"

// UserLocale is the language the user reads in.
type UserLocale struct {
	Code string
	Name string
}

// IsEnglish reports whether the locale is English.
func (l UserLocale) IsEnglish() bool {
	return l.Code == "" || l.Code == English
}

// NewLocale builds a locale from a tag such as "en", "zh-TW" or "pt_BR".
// Unparseable tags fall back to English.
func NewLocale(tag string) UserLocale {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		tag = English
	}

	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	base, _ := t.Base()
	bt := language.Make(base.String())

	return UserLocale{
		Code: base.String(),
		Name: capitaliseFirst(display.Self.Name(bt), bt),
	}
}

func capitaliseFirst(name string, t language.Tag) string {
	if name == "" {
		return name
	}
	for i := range name {
		if i == 0 {
			continue
		}
		return cases.Title(t).String(name[:i]) + name[i:]
	}
	return cases.Title(t).String(name)
}
