package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sword-picker/internal/api"
	"sword-picker/internal/cache"
	"sword-picker/internal/catalogwatch"
	"sword-picker/internal/picker"
	"sword-picker/internal/settings"
	"sword-picker/internal/theme"
	"sword-picker/internal/versions"
)

const (
	fieldPrimary picker.FieldID = "primary"
	fieldCompare picker.FieldID = "compare"
)

// Config wires the model to its collaborators. Nil collaborators are
// skipped: no client means offline, no cache means nothing is stored.
type Config struct {
	Client   *api.Client
	Cache    *cache.Cache
	Watcher  *catalogwatch.Watcher
	Settings settings.Settings

	// Catalog, when set, is used as is and nothing is fetched.
	Catalog *versions.Catalog

	// Save persists settings on confirm. Defaults to settings.Save.
	Save func(settings.Settings) error
}

type selector struct {
	id    picker.FieldID
	label string
	multi bool
	input textinput.Model
}

func (s selector) field() picker.Field {
	return picker.Field{ID: s.id, Value: s.input.Value(), Multi: s.multi}
}

type Model struct {
	cfg     Config
	session *picker.Session
	keys    keyMap
	styles  theme.Styles

	fields []selector
	focus  int

	rows     []versions.Record
	featured int
	cursor   int
	anchor   picker.FieldID
	hover    hoverRegion

	list    viewport.Model
	preview viewport.Model
	spinner spinner.Model
	help    help.Model

	width   int
	height  int
	ready   bool
	loading bool
	status  string
	err     error
}

type errMsg struct{ err error }
type watchErrMsg struct{ err error }
type catalogLoadedMsg struct {
	catalog *versions.Catalog
	source  string
}
type previewLoadedMsg struct {
	order  []string
	verses map[string][]api.Verse
}
type savedMsg struct{}
type closeTimerMsg struct{ timer picker.CloseTimer }

func (e errMsg) Error() string { return e.err.Error() }

func NewModel(cfg Config) Model {
	s := cfg.Settings
	if cfg.Save == nil {
		cfg.Save = settings.Save
	}

	locale := versions.NewLocale(s.Language)
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = versions.NewCatalog(nil, nil, "")
	}
	session := picker.NewSession(catalog, locale,
		picker.WithCloseDelay(time.Duration(s.CloseDelayMS)*time.Millisecond),
		picker.WithFacets(versions.ParseFacets(s.Resource, s.LanguageMode, locale)),
	)

	primary := newInput("Version, e.g. ESV", s.Primary)
	primary.Focus()
	compare := newInput("Versions to compare, e.g. KJV,LXX", s.Compare)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return Model{
		cfg:     cfg,
		session: session,
		keys:    defaultKeyMap(),
		styles:  theme.NewStyles(theme.GetTheme(s.Theme)),
		fields: []selector{
			{id: fieldPrimary, label: "Version", input: primary},
			{id: fieldCompare, label: "Compare", multi: true, input: compare},
		},
		anchor:  fieldPrimary,
		hover:   hoverNone,
		spinner: sp,
		help:    help.New(),
		loading: cfg.Catalog == nil,
	}
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(value)
	return ti
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.cfg.Catalog == nil {
		cmds = append(cmds, m.spinner.Tick, loadCatalog(m.cfg))
	}
	if m.cfg.Watcher != nil {
		cmds = append(cmds, waitForCatalog(m.cfg.Watcher))
	}
	return tea.Batch(cmds...)
}

// Session exposes the shared dropdown for callers embedding the model.
func (m Model) Session() *picker.Session { return m.session }

// Value returns the current text of a selector field.
func (m Model) Value(id picker.FieldID) string {
	for _, f := range m.fields {
		if f.id == id {
			return f.input.Value()
		}
	}
	return ""
}

func (m Model) current() selector {
	return m.fields[m.focus]
}
