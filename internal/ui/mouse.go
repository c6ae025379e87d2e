package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sword-picker/internal/picker"
)

type hoverRegion int

const (
	hoverNone hoverRegion = iota
	hoverField
	hoverDropdown
)

// regionAt reports whether y is over the field being edited or the open
// dropdown. Other fields don't keep the dropdown alive.
func (m Model) regionAt(lay layout, y int) hoverRegion {
	if lay.open && lay.dropdown.contains(y) {
		return hoverDropdown
	}
	if m.focus < len(lay.fields) && lay.fields[m.focus].contains(y) {
		return hoverField
	}
	return hoverNone
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	_, lay := m.render()

	region := m.regionAt(lay, msg.Y)
	prev := m.hover
	m.hover = region

	var eff picker.Effect
	switch {
	case prev == hoverNone && region != hoverNone:
		m.session.Enter(regionOf(region))
	case prev != hoverNone && region == hoverNone:
		eff = m.session.Leave(regionOf(prev))
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for i, f := range lay.fields {
			if f.contains(msg.Y) {
				m.hover = hoverField
				m.session.Enter(picker.RegionField)
				return m.focusField(i)
			}
		}
		if region == hoverDropdown && msg.Y >= lay.rowsTop {
			if row := m.rowAt(msg.Y - lay.rowsTop + m.list.YOffset); row >= 0 {
				m.cursor = row
				return m.activate(m.rows[row].Initials)
			}
		}
	}

	if msg.Action == tea.MouseActionPress && region == hoverDropdown {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		}
	}

	return m.applyEffect(eff)
}

func regionOf(h hoverRegion) picker.Region {
	if h == hoverDropdown {
		return picker.RegionDropdown
	}
	return picker.RegionField
}
