package versions

import (
	"log/slog"
	"strings"
)

var ancientLanguages = map[string]bool{"grc": true, "la": true, "he": true}

// VisibleSet maps every catalog key to whether it should be shown.
type VisibleSet map[string]bool

// Keys returns the visible keys in catalog order.
func (v VisibleSet) Keys(c *Catalog) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, r := range c.Versions {
		if v[r.Initials] && !seen[r.Initials] {
			seen[r.Initials] = true
			keys = append(keys, r.Initials)
		}
	}
	return keys
}

// SearchToken is the last comma-separated segment of raw, trimmed.
func SearchToken(raw string) string {
	if i := strings.LastIndexByte(raw, ','); i >= 0 {
		raw = raw[i+1:]
	}
	return strings.TrimSpace(raw)
}

// WasFullToken returns the search token of raw, or "" when the token is
// already a complete catalog key so the full list is offered again. It is
// meant for focusing a field, not for keystrokes.
func WasFullToken(raw string, c *Catalog) string {
	token := SearchToken(raw)
	if token == "" {
		return ""
	}
	if _, ok := c.Lookup(token); ok {
		return ""
	}
	return token
}

// Filter decides which catalog keys are visible for the typed input and
// facets. Text search on the last token ignores the facets entirely.
func Filter(raw string, facets FacetState, c *Catalog, locale UserLocale) VisibleSet {
	token := strings.ToLower(SearchToken(raw))
	visible := make(VisibleSet, c.Len())

	for _, r := range c.Versions {
		var keep bool
		if token != "" {
			keep = strings.Contains(strings.ToLower(r.Initials), token) ||
				strings.Contains(strings.ToLower(r.Name), token)
		} else {
			keep = facetsKeep(r, facets, locale)
		}
		visible[r.Initials] = visible[r.Initials] || keep
	}

	slog.Debug("filtered catalog", "token", token, "resource", facets.Resource.String(),
		"language", facets.Language.String(), "versions", c.Len())
	return visible
}

func facetsKeep(r Record, facets FacetState, locale UserLocale) bool {
	switch facets.Resource {
	case ResourceCommentaries:
		if r.Category != CategoryCommentary {
			return false
		}
	default:
		if r.Category == CategoryCommentary {
			return false
		}
	}

	lang := r.LanguageCode
	switch facets.Language {
	case LanguageAncient:
		return ancientLanguages[lang]
	case LanguageMyAndEnglish:
		if !locale.IsEnglish() {
			return lang == locale.Code || lang == English
		}
		return true
	case LanguageMy, LanguageUnset:
		return lang == userCode(locale)
	}
	return true
}

func userCode(l UserLocale) string {
	if l.Code == "" {
		return English
	}
	return l.Code
}

// Visible walks the menu order and returns the rows to render. In ancient
// mode a key already shown earlier is hidden.
func Visible(raw string, facets FacetState, c *Catalog, locale UserLocale) []Record {
	return Apply(Filter(raw, facets, c, locale), facets, c)
}

// Apply lays a computed VisibleSet over the menu order.
func Apply(visible VisibleSet, facets FacetState, c *Catalog) []Record {
	return applyOrder(c.MenuOrder(), visible, facets)
}

// FeaturedRows is how many of the rows Apply returns come from the featured
// block at the top of the menu.
func FeaturedRows(visible VisibleSet, facets FacetState, c *Catalog) int {
	return len(applyOrder(c.MenuOrder()[:c.FeaturedCount()], visible, facets))
}

func applyOrder(order []Record, visible VisibleSet, facets FacetState) []Record {
	var rows []Record
	kept := make(map[string]bool)
	for _, r := range order {
		if !visible[r.Initials] {
			continue
		}
		if facets.Language == LanguageAncient && kept[r.Initials] {
			continue
		}
		kept[r.Initials] = true
		rows = append(rows, r)
	}
	return rows
}
