package versions

// ResourceType narrows the catalog by category. The zero value is unset.
type ResourceType int

const (
	ResourceUnset ResourceType = iota
	ResourceBibles
	ResourceCommentaries
)

func (r ResourceType) String() string {
	switch r {
	case ResourceBibles:
		return "bibles"
	case ResourceCommentaries:
		return "commentaries"
	}
	return ""
}

// LanguageMode narrows the catalog by language. The zero value is unset.
type LanguageMode int

const (
	LanguageUnset LanguageMode = iota
	LanguageAll
	LanguageMy
	LanguageMyAndEnglish
	LanguageAncient
)

func (l LanguageMode) String() string {
	switch l {
	case LanguageAll:
		return "langAll"
	case LanguageMy:
		return "langMy"
	case LanguageMyAndEnglish:
		return "langMyAndEnglish"
	case LanguageAncient:
		return "langAncient"
	}
	return ""
}

// FacetState is the checked option of each toggle group.
type FacetState struct {
	Resource ResourceType
	Language LanguageMode
}

// DefaultFacets is the initial toggle state for a locale: bibles, and the
// user's language, paired with English when the user doesn't read English.
func DefaultFacets(locale UserLocale) FacetState {
	f := FacetState{Resource: ResourceBibles, Language: LanguageMy}
	if !locale.IsEnglish() {
		f.Language = LanguageMyAndEnglish
	}
	return f
}

// ParseFacets reads the String forms back, falling back to defaults for
// anything unknown.
func ParseFacets(resource, lang string, locale UserLocale) FacetState {
	f := DefaultFacets(locale)
	for _, r := range []ResourceType{ResourceBibles, ResourceCommentaries} {
		if r.String() == resource {
			f.Resource = r
		}
	}
	for _, m := range LanguageModes(locale) {
		if m.String() == lang {
			f.Language = m
		}
	}
	return f
}

// LanguageModes lists the language toggles offered to the locale.
func LanguageModes(locale UserLocale) []LanguageMode {
	if locale.IsEnglish() {
		return []LanguageMode{LanguageAll, LanguageMy, LanguageAncient}
	}
	return []LanguageMode{LanguageAll, LanguageMy, LanguageMyAndEnglish, LanguageAncient}
}

// FacetOption names one toggle. Exactly one of its fields is set.
type FacetOption struct {
	Resource ResourceType
	Language LanguageMode
}

// Toggle clicks opt. Checking an option clears the rest of its group; clicking
// the option that is already the only one checked leaves it checked.
func (f FacetState) Toggle(opt FacetOption) FacetState {
	if opt.Resource != ResourceUnset {
		f.Resource = opt.Resource
	}
	if opt.Language != LanguageUnset {
		f.Language = opt.Language
	}
	return f
}
