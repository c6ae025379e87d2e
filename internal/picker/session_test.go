package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sword-picker/internal/versions"
)

func newTestSession(opts ...Option) *Session {
	c := versions.NewCatalog([]versions.Record{
		{Initials: "KJV", Name: "King James Version", LanguageCode: "en", Category: versions.CategoryBible},
		{Initials: "ESV", Name: "English Standard Version", LanguageCode: "en", Category: versions.CategoryBible},
		{Initials: "LXX", Name: "Septuagint", LanguageCode: "grc", Category: versions.CategoryBible},
		{Initials: "MHC", Name: "Matthew Henry Concise", LanguageCode: "en", Category: versions.CategoryCommentary},
	}, nil, "")
	return NewSession(c, versions.NewLocale("en"), opts...)
}

func rowKeys(rows []versions.Record) []string {
	var out []string
	for _, r := range rows {
		out = append(out, r.Initials)
	}
	return out
}

func TestFocusOpensAndFilters(t *testing.T) {
	s := newTestSession()
	require.Equal(t, Closed, s.State())

	eff := s.Focus(Field{ID: "primary", Value: "KJV"})
	assert.Equal(t, Open, s.State())
	assert.True(t, eff.Opened)
	assert.Equal(t, FieldID("primary"), eff.Anchor)
	assert.Equal(t, FieldID("primary"), s.Current())
	assert.Equal(t, []string{"KJV", "ESV"}, rowKeys(eff.Rows), "full key shows facet list")

	eff = s.Focus(Field{ID: "compare", Value: "sept"})
	assert.False(t, eff.Opened, "already open")
	assert.Equal(t, FieldID("compare"), s.Current(), "last focused field wins")
	assert.Equal(t, []string{"LXX"}, rowKeys(eff.Rows))
}

func TestKeyRefilters(t *testing.T) {
	s := newTestSession()
	s.Focus(Field{ID: "primary"})

	eff := s.Key(Field{ID: "primary", Value: "henry"}, "y")
	assert.Equal(t, []string{"MHC"}, rowKeys(eff.Rows), "text search ignores facets")

	eff = s.Key(Field{ID: "primary", Value: "henry"}, "up")
	assert.Nil(t, eff.Rows)
	assert.Equal(t, Open, s.State())
}

func TestKeyReopensClosedDropdown(t *testing.T) {
	s := newTestSession()
	eff := s.Key(Field{ID: "primary", Value: "k"}, "k")
	assert.True(t, eff.Opened)
	assert.Equal(t, Open, s.State())

	s.Escape()
	eff = s.Key(Field{ID: "primary", Value: "LXX"}, "X")
	assert.True(t, eff.Opened)
	assert.Equal(t, []string{"LXX"}, rowKeys(eff.Rows), "typed key is searched, not reset")
}

func TestKeyTypedFullKeyStaysSearch(t *testing.T) {
	s := newTestSession()
	s.Focus(Field{ID: "compare", Value: "KJV", Multi: true})

	eff := s.Key(Field{ID: "compare", Value: "KJV,LXX", Multi: true}, "X")
	assert.Equal(t, []string{"LXX"}, rowKeys(eff.Rows))

	eff = s.Key(Field{ID: "primary", Value: "ESV"}, "V")
	assert.Equal(t, []string{"ESV"}, rowKeys(eff.Rows))

	eff = s.Focus(Field{ID: "primary", Value: "ESV"})
	assert.Equal(t, []string{"KJV", "ESV"}, rowKeys(eff.Rows), "focus on a complete key offers the facet list")
}

func TestEscapeCloses(t *testing.T) {
	for _, facets := range []versions.FacetState{
		{Resource: versions.ResourceCommentaries, Language: versions.LanguageAncient},
		{Resource: versions.ResourceBibles, Language: versions.LanguageAll},
	} {
		s := newTestSession(WithFacets(facets))
		s.Focus(Field{ID: "primary", Value: "some text"})
		eff := s.Key(Field{ID: "primary", Value: "some text"}, "esc")
		assert.True(t, eff.Closed)
		assert.Equal(t, Closed, s.State())
	}
}

func TestActivate(t *testing.T) {
	s := newTestSession()
	s.Focus(Field{ID: "compare", Value: "KJV", Multi: true})

	eff := s.Activate(Field{ID: "compare", Value: "KJV", Multi: true}, "ESV")
	assert.True(t, eff.Changed)
	assert.Equal(t, "KJV,ESV", eff.Value)
	assert.True(t, eff.Closed)
	assert.Equal(t, Closed, s.State())

	s.Focus(Field{ID: "compare", Value: "KJV,ESV", Multi: true})
	eff = s.Activate(Field{ID: "compare", Value: "KJV,ESV", Multi: true}, "ESV")
	assert.False(t, eff.Changed)
	assert.Equal(t, "KJV,ESV", eff.Value)

	s.Focus(Field{ID: "primary", Value: "KJV"})
	eff = s.Activate(Field{ID: "primary", Value: "KJV"}, "LXX")
	assert.Equal(t, FieldID("primary"), eff.Field)
	assert.Equal(t, "LXX", eff.Value)
	assert.True(t, eff.Closed)
}

func TestToggleFacetKeepsText(t *testing.T) {
	s := newTestSession()
	s.Focus(Field{ID: "primary"})

	eff := s.ToggleFacet(versions.FacetOption{Resource: versions.ResourceCommentaries})
	assert.Equal(t, []string{"MHC"}, rowKeys(eff.Rows))

	s.Key(Field{ID: "primary", Value: "kin"}, "n")
	eff = s.ToggleFacet(versions.FacetOption{Language: versions.LanguageAncient})
	assert.Equal(t, []string{"KJV"}, rowKeys(eff.Rows), "typed text still overrides facets")
	assert.Equal(t, versions.LanguageAncient, s.Facets().Language)
}

func TestHoverIntentClose(t *testing.T) {
	s := newTestSession(WithCloseDelay(50 * time.Millisecond))
	s.Focus(Field{ID: "primary"})

	eff := s.Leave(RegionField)
	require.NotNil(t, eff.Timer)
	assert.Equal(t, 50*time.Millisecond, eff.Timer.Delay)
	assert.Equal(t, s.ID(), eff.Timer.Session)

	eff = s.Fire(*eff.Timer)
	assert.True(t, eff.Closed)
	assert.Equal(t, Closed, s.State())
}

func TestHoverIntentCancelledByReentry(t *testing.T) {
	s := newTestSession()
	s.Focus(Field{ID: "primary"})

	timer := s.Leave(RegionField).Timer
	require.NotNil(t, timer)
	assert.Equal(t, DefaultCloseDelay, timer.Delay)
	s.Enter(RegionDropdown)

	eff := s.Fire(*timer)
	assert.False(t, eff.Closed)
	assert.Equal(t, Open, s.State())
}

func TestHoverIntentRearmCancelsPrevious(t *testing.T) {
	s := newTestSession()
	s.Focus(Field{ID: "primary"})

	first := s.Leave(RegionField).Timer
	s.Enter(RegionDropdown)
	second := s.Leave(RegionDropdown).Timer

	assert.False(t, s.Fire(*first).Closed, "stale timer")
	assert.True(t, s.Fire(*second).Closed)
}

func TestFireIgnoresOtherSession(t *testing.T) {
	a := newTestSession()
	b := newTestSession()
	a.Focus(Field{ID: "primary"})

	timer := a.Leave(RegionField).Timer
	timer.Session = b.ID()
	assert.False(t, a.Fire(*timer).Closed)
}

func TestLeaveWhileClosed(t *testing.T) {
	s := newTestSession()
	assert.Nil(t, s.Leave(RegionField).Timer)
}

func TestFilterable(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "a", want: true},
		{key: "Z", want: true},
		{key: "7", want: true},
		{key: ",", want: true},
		{key: "'", want: true},
		{key: "<", want: true},
		{key: "_", want: true},
		{key: "?", want: true},
		{key: "~", want: true},
		{key: "|", want: true},
		{key: "}", want: true},
		{key: "\"", want: true},
		{key: "!", want: true},
		{key: ";", want: false},
		{key: "backspace", want: true},
		{key: "esc", want: false},
		{key: "up", want: false},
		{key: "enter", want: false},
		{key: "tab", want: false},
		{key: "é", want: false},
		{key: "", want: false},
	}

	for _, tc := range tests {
		if got := Filterable(tc.key); got != tc.want {
			t.Fatalf("Filterable(%q): expected %v, got %v", tc.key, tc.want, got)
		}
	}
}
