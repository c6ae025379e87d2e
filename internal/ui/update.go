package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sword-picker/internal/picker"
	"sword-picker/internal/versions"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.FocusMsg:
		m.session.Enter(picker.RegionField)
		return m, nil

	case tea.BlurMsg:
		return m.applyEffect(m.session.Leave(picker.RegionField))

	case closeTimerMsg:
		return m.applyEffect(m.session.Fire(msg.timer))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.list = viewport.New(msg.Width, 1)
			m.preview = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.list.Width = max(msg.Width-4, 10)
		m.preview.Width = msg.Width
		m.help.Width = msg.Width
		m.syncList()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		m.loading = false
		m.status = "catalog: " + msg.source
		slog.Info("catalog loaded", "source", msg.source, "versions", msg.catalog.Len())
		next, cmd := m.applyEffect(m.session.SetCatalog(msg.catalog))
		if msg.source == "reload" && m.cfg.Watcher != nil {
			return next, tea.Batch(cmd, waitForCatalog(m.cfg.Watcher))
		}
		return next, cmd

	case previewLoadedMsg:
		m.loading = false
		m.preview.SetContent(m.formatPreview(msg.order, msg.verses))
		m.preview.GotoTop()
		return m, nil

	case savedMsg:
		m.status = "saved"
		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false
		slog.Warn("ui error", "error", msg.err)
		return m, nil

	case watchErrMsg:
		m.err = msg.err
		return m, waitForCatalog(m.cfg.Watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m.focusField((m.focus + 1) % len(m.fields))

	case key.Matches(msg, m.keys.PrevField):
		return m.focusField((m.focus + len(m.fields) - 1) % len(m.fields))

	case key.Matches(msg, m.keys.Bibles):
		return m.toggle(versions.FacetOption{Resource: versions.ResourceBibles})
	case key.Matches(msg, m.keys.Commentaries):
		return m.toggle(versions.FacetOption{Resource: versions.ResourceCommentaries})
	case key.Matches(msg, m.keys.LangAll):
		return m.toggle(versions.FacetOption{Language: versions.LanguageAll})
	case key.Matches(msg, m.keys.LangMy):
		return m.toggle(versions.FacetOption{Language: versions.LanguageMy})
	case key.Matches(msg, m.keys.LangMyEn):
		if m.session.Locale().IsEnglish() {
			return m, nil
		}
		return m.toggle(versions.FacetOption{Language: versions.LanguageMyAndEnglish})
	case key.Matches(msg, m.keys.LangAncient):
		return m.toggle(versions.FacetOption{Language: versions.LanguageAncient})

	case key.Matches(msg, m.keys.Up):
		if m.session.State() == picker.Closed {
			return m.applyEffect(m.session.Focus(m.current().field()))
		}
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.session.State() == picker.Closed {
			return m.applyEffect(m.session.Focus(m.current().field()))
		}
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Pick):
		if m.session.State() == picker.Open && m.cursor < len(m.rows) {
			return m.activate(m.rows[m.cursor].Initials)
		}
		return m.confirm()

	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()

	case key.Matches(msg, m.keys.Close):
		return m.applyEffect(m.session.Key(m.current().field(), "esc"))
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	next, effCmd := m.applyEffect(m.session.Key(m.current().field(), msg.String()))
	return next, tea.Batch(cmd, effCmd)
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.fields[m.focus].input.Blur()
	m.focus = i
	cmd := m.fields[m.focus].input.Focus()
	next, effCmd := m.applyEffect(m.session.Focus(m.current().field()))
	return next, tea.Batch(cmd, effCmd)
}

func (m Model) toggle(opt versions.FacetOption) (tea.Model, tea.Cmd) {
	if m.session.State() == picker.Closed {
		m.anchor = m.session.Focus(m.current().field()).Anchor
	}
	return m.applyEffect(m.session.ToggleFacet(opt))
}

func (m Model) activate(initials string) (tea.Model, tea.Cmd) {
	return m.applyEffect(m.session.Activate(m.current().field(), initials))
}

// confirm saves the picks and fetches the preview verse in each of them.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	primary := versions.JoinSelection(versions.ParseSelection(m.Value(fieldPrimary)))
	compare := versions.JoinSelection(versions.ParseSelection(m.Value(fieldCompare)))
	keys := pickedKeys(primary, compare)
	if len(keys) == 0 {
		return m, nil
	}

	s := m.cfg.Settings
	s.Primary = primary
	s.Compare = compare
	s.Resource = m.session.Facets().Resource.String()
	s.LanguageMode = m.session.Facets().Language.String()
	m.cfg.Settings = s

	m.loading = true
	m.err = nil
	return m, tea.Batch(
		m.spinner.Tick,
		saveSettings(m.cfg.Save, s),
		loadPreview(m.cfg.Client, keys),
	)
}

// applyEffect carries a session transition into the view.
func (m Model) applyEffect(eff picker.Effect) (tea.Model, tea.Cmd) {
	if eff.Visible != nil {
		m.rows = eff.Rows
		m.featured = versions.FeaturedRows(eff.Visible, m.session.Facets(), m.session.Catalog())
		m.cursor = 0
	}
	if eff.Changed {
		for i := range m.fields {
			if m.fields[i].id == eff.Field {
				m.fields[i].input.SetValue(eff.Value)
				m.fields[i].input.CursorEnd()
			}
		}
	}
	if eff.Anchor != "" {
		m.anchor = eff.Anchor
	}
	m.syncList()

	if eff.Timer != nil {
		return m, armCloseTimer(*eff.Timer)
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	m.syncList()
}
