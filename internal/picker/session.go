package picker

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"sword-picker/internal/versions"
)

// DefaultCloseDelay is how long the dropdown lingers after the pointer or
// focus leaves the field and the dropdown.
const DefaultCloseDelay = 400 * time.Millisecond

// State is the dropdown visibility.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Region is an area whose hover or focus keeps the dropdown alive.
type Region int

const (
	RegionField Region = iota
	RegionDropdown
)

// FieldID identifies a selector input.
type FieldID string

// Field is the snapshot of a selector input passed with every event.
type Field struct {
	ID    FieldID
	Value string
	Multi bool
}

// CloseTimer is an armed delayed close. Only the most recently armed timer
// of a session can close it.
type CloseTimer struct {
	Session string
	Gen     int
	Delay   time.Duration
}

// Effect is what a transition asks the caller to do.
type Effect struct {
	// Rows is the render list, set whenever the filter ran.
	Rows    []versions.Record
	Visible versions.VisibleSet

	// Field and Value carry an updated input value when Changed is set.
	Field   FieldID
	Value   string
	Changed bool

	Opened bool
	Closed bool

	// Anchor asks the renderer to position the dropdown at this field.
	Anchor FieldID

	Timer *CloseTimer
}

// Session is the one dropdown shared by every selector field.
type Session struct {
	id      string
	catalog *versions.Catalog
	locale  versions.UserLocale

	state   State
	current FieldID
	query   string
	facets  versions.FacetState
	visible versions.VisibleSet

	intentToHide bool
	gen          int
	closeDelay   time.Duration
}

// Option configures a Session.
type Option func(*Session)

// WithCloseDelay overrides DefaultCloseDelay.
func WithCloseDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.closeDelay = d
		}
	}
}

// WithFacets sets the starting toggles instead of the locale defaults.
func WithFacets(f versions.FacetState) Option {
	return func(s *Session) {
		s.facets = f
	}
}

func NewSession(catalog *versions.Catalog, locale versions.UserLocale, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		catalog:    catalog,
		locale:     locale,
		facets:     versions.DefaultFacets(locale),
		closeDelay: DefaultCloseDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.visible = versions.Filter("", s.facets, s.catalog, s.locale)
	return s
}

func (s *Session) ID() string { return s.id }
func (s *Session) State() State { return s.state }
func (s *Session) Current() FieldID { return s.current }
func (s *Session) Facets() versions.FacetState { return s.facets }
func (s *Session) Catalog() *versions.Catalog { return s.catalog }
func (s *Session) Locale() versions.UserLocale { return s.locale }
func (s *Session) Visible() versions.VisibleSet { return s.visible }

// Rows is the current render list.
func (s *Session) Rows() []versions.Record {
	return versions.Apply(s.visible, s.facets, s.catalog)
}

// SetCatalog swaps the catalog, e.g. after a reload, and re-filters.
func (s *Session) SetCatalog(c *versions.Catalog) Effect {
	s.catalog = c
	return s.refilter(s.query)
}

// Focus opens the dropdown for f. A value whose last token is already a
// complete key shows the whole facet-narrowed list.
func (s *Session) Focus(f Field) Effect {
	eff := s.open(f, versions.WasFullToken(f.Value, s.catalog))
	slog.Debug("dropdown focus", "session", s.id, "field", f.ID)
	return eff
}

func (s *Session) open(f Field, query string) Effect {
	wasOpen := s.state == Open
	s.state = Open
	s.current = f.ID
	s.intentToHide = false

	eff := s.refilter(query)
	eff.Opened = !wasOpen
	eff.Anchor = f.ID
	return eff
}

// Key handles a key released in field f after its value changed. Typed text
// is always searched as is, even when it spells a complete key.
func (s *Session) Key(f Field, key string) Effect {
	if key == "esc" {
		return s.Escape()
	}
	s.current = f.ID
	if !Filterable(key) {
		return Effect{}
	}
	if s.state == Closed {
		return s.open(f, f.Value)
	}
	return s.refilter(f.Value)
}

// Escape closes the dropdown whatever the text or facets.
func (s *Session) Escape() Effect {
	return s.close("escape")
}

// Activate picks key for field f.
func (s *Session) Activate(f Field, key string) Effect {
	s.current = f.ID
	value, closeMenu := versions.ApplySelection(f.Value, key, f.Multi)

	eff := Effect{Field: f.ID, Value: value, Changed: value != f.Value}
	if closeMenu {
		c := s.close("activate")
		eff.Closed = c.Closed
	}
	slog.Debug("version picked", "session", s.id, "field", f.ID, "key", key, "value", value)
	return eff
}

// ToggleFacet clicks a filter toggle and re-filters with the text the list
// was last filtered with.
func (s *Session) ToggleFacet(opt versions.FacetOption) Effect {
	s.facets = s.facets.Toggle(opt)
	return s.refilter(s.query)
}

// Enter records the pointer or focus moving into r.
func (s *Session) Enter(r Region) {
	s.intentToHide = false
}

// Leave records the pointer or focus leaving r and arms a close timer,
// replacing any timer armed before.
func (s *Session) Leave(r Region) Effect {
	if s.state == Closed {
		return Effect{}
	}
	s.intentToHide = true
	s.gen++
	return Effect{Timer: &CloseTimer{Session: s.id, Gen: s.gen, Delay: s.closeDelay}}
}

// Fire runs an armed timer. Stale timers and timers whose intent was
// cancelled by re-entering do nothing.
func (s *Session) Fire(t CloseTimer) Effect {
	if t.Session != s.id || t.Gen != s.gen || !s.intentToHide {
		return Effect{}
	}
	return s.close("hover intent")
}

func (s *Session) refilter(query string) Effect {
	s.query = query
	s.visible = versions.Filter(query, s.facets, s.catalog, s.locale)
	return Effect{
		Visible: s.visible,
		Rows:    versions.Apply(s.visible, s.facets, s.catalog),
	}
}

func (s *Session) close(reason string) Effect {
	if s.state == Closed {
		return Effect{}
	}
	s.state = Closed
	s.intentToHide = false
	s.gen++
	slog.Debug("dropdown closed", "session", s.id, "reason", reason)
	return Effect{Closed: true}
}
