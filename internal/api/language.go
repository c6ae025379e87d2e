package api

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var (
	namesOnce  sync.Once
	codeByName map[string]string
)

// ancientCodes are named explicitly since no display dictionary is
// written in them.
var ancientCodes = []string{"grc", "la", "he", "hbo", "syc", "cop"}

// LanguageCode maps a language name as bolls prints it ("English",
// "Ancient Greek") or a tag ("uk") to a base language code. Unknown names
// map to "und".
func LanguageCode(name string) string {
	name = strings.TrimSpace(name)
	if t, err := language.Parse(name); err == nil && len(name) <= 3 {
		base, _ := t.Base()
		return base.String()
	}

	namesOnce.Do(loadLanguageNames)
	if code, ok := codeByName[strings.ToLower(name)]; ok {
		return code
	}
	return "und"
}

func loadLanguageNames() {
	english := display.English.Languages()
	codeByName = make(map[string]string)
	bases := display.Supported.BaseLanguages()
	for _, code := range ancientCodes {
		if b, err := language.ParseBase(code); err == nil {
			bases = append(bases, b)
		}
	}

	for _, b := range bases {
		code := b.String()
		tag := language.Make(code)
		if n := english.Name(tag); n != "" {
			codeByName[strings.ToLower(n)] = code
		}
		if n := display.Self.Name(tag); n != "" {
			if _, ok := codeByName[strings.ToLower(n)]; !ok {
				codeByName[strings.ToLower(n)] = code
			}
		}
	}
}
