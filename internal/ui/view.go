package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"sword-picker/internal/api"
	"sword-picker/internal/picker"
	"sword-picker/internal/versions"
)

// dropdownChrome is the border plus the two toggle rows and the tag line.
const dropdownChrome = 5

// fixedLines is everything but the list and the preview: title, two
// bordered fields, dropdown chrome, status and help.
const fixedLines = 2 + 3*2 + dropdownChrome + 2

type span struct{ top, bottom int }

func (s span) contains(y int) bool { return y >= s.top && y < s.bottom }

type layout struct {
	fields   []span
	dropdown span
	rowsTop  int
	open     bool
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	out, _ := m.render()
	return out
}

func (m Model) render() (string, layout) {
	var (
		parts []string
		lay   layout
		y     int
	)
	add := func(s string) span {
		parts = append(parts, s)
		sp := span{top: y, bottom: y + lipgloss.Height(s)}
		y = sp.bottom
		return sp
	}

	add(m.styles.Title.Render("Choose versions"))

	lay.open = m.session.State() == picker.Open
	for i, f := range m.fields {
		box := m.styles.Field
		if i == m.focus {
			box = m.styles.FieldActive
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.Label.Render(f.label),
			box.Render(f.input.View()),
		)
		lay.fields = append(lay.fields, add(row))

		if lay.open && f.id == m.anchor {
			lay.dropdown = add(m.renderDropdown())
			lay.rowsTop = lay.dropdown.top + dropdownChrome - 1
		}
	}

	if h := m.previewHeight(lay.open); h > 0 && m.preview.TotalLineCount() > 0 {
		p := m.preview
		p.Height = h
		add(p.View())
	}

	var status string
	switch {
	case m.loading:
		status = m.spinner.View() + " Loading..."
	case m.err != nil:
		status = m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	default:
		status = m.styles.Help.Render(m.status)
	}
	add(status)
	add(m.help.View(m.keys))

	return strings.Join(parts, "\n"), lay
}

func (m Model) renderDropdown() string {
	f := m.session.Facets()
	locale := m.session.Locale()

	chip := func(label string, on bool) string {
		if on {
			return m.styles.ChipOn.Render(label)
		}
		return m.styles.ChipOff.Render(label)
	}

	resource := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Label.Render("Type"),
		chip("Bibles", f.Resource == versions.ResourceBibles),
		chip("Commentaries", f.Resource == versions.ResourceCommentaries),
	)

	langChips := []string{m.styles.Label.Render("Language")}
	for _, mode := range versions.LanguageModes(locale) {
		langChips = append(langChips, chip(languageLabel(mode, locale), f.Language == mode))
	}
	language := lipgloss.JoinHorizontal(lipgloss.Top, langChips...)

	tag := m.styles.TagLine.Render(fmt.Sprintf("Filtering %d bibles and commentaries", m.session.Catalog().Len()))

	return m.styles.Dropdown.Render(lipgloss.JoinVertical(lipgloss.Left,
		resource, language, tag, m.list.View(),
	))
}

func languageLabel(mode versions.LanguageMode, locale versions.UserLocale) string {
	switch mode {
	case versions.LanguageAll:
		return "All"
	case versions.LanguageMy:
		return locale.Name
	case versions.LanguageMyAndEnglish:
		return locale.Name + " + English"
	case versions.LanguageAncient:
		return "Ancient"
	}
	return ""
}

func (m Model) renderRows() string {
	if len(m.rows) == 0 {
		return m.styles.Language.Render("No matching versions")
	}

	width := max(m.list.Width-2, 10)
	var sb strings.Builder
	for i, r := range m.rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		if i == m.featured && m.hasBreak() {
			sb.WriteString(m.styles.Break.Render(strings.Repeat("─", width)) + "\n")
		}

		line := fmt.Sprintf("%s %s %s",
			m.styles.Key.Render(r.Initials),
			"⇒",
			m.styles.Name.Render(r.Name),
		)
		if r.LanguageName != "" {
			line += " " + m.styles.Language.Render("("+r.LanguageName+")")
		}
		line = xansi.Truncate(line, width, "…")
		if i == m.cursor {
			line = m.styles.Selected.Render(line)
		}
		sb.WriteString(line)
	}
	return sb.String()
}

func (m Model) hasBreak() bool {
	return m.featured > 0 && m.featured < len(m.rows)
}

// lineOf is the list line a row is drawn on.
func (m Model) lineOf(row int) int {
	if m.hasBreak() && row >= m.featured {
		return row + 1
	}
	return row
}

// rowAt maps a list line back to a row, -1 for the break line.
func (m Model) rowAt(line int) int {
	if m.hasBreak() {
		switch {
		case line == m.featured:
			return -1
		case line > m.featured:
			line--
		}
	}
	if line < 0 || line >= len(m.rows) {
		return -1
	}
	return line
}

func (m Model) listHeight() int {
	lines := max(len(m.rows), 1)
	if m.hasBreak() {
		lines++
	}
	// Shrink to stay inside the window.
	return min(lines, max(m.height-fixedLines, 3))
}

func (m Model) previewHeight(open bool) int {
	used := fixedLines - dropdownChrome
	if open {
		used += dropdownChrome + m.list.Height
	}
	return m.height - used
}

// syncList refreshes the list viewport and keeps the cursor in view.
func (m *Model) syncList() {
	if !m.ready {
		return
	}
	h := m.listHeight()
	m.list.Height = h
	m.list.SetContent(m.renderRows())

	line := m.lineOf(m.cursor)
	switch {
	case line < m.list.YOffset:
		m.list.SetYOffset(line)
	case line >= m.list.YOffset+h:
		m.list.SetYOffset(line - h + 1)
	}
}

func (m Model) formatPreview(order []string, verses map[string][]api.Verse) string {
	var sb strings.Builder
	sb.WriteString(m.styles.TagLine.Render(fmt.Sprintf("John %d:%d", previewChapter, previewVerse)) + "\n")
	for _, key := range order {
		vs, ok := verses[key]
		if !ok || len(vs) == 0 {
			continue
		}
		text := stripHTMLTags(vs[0].Text)
		sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Key.Render("["+key+"]"), m.styles.Name.Render(text)))
	}
	return sb.String()
}
