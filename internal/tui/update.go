package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatchkit/swatch/pkg/colors"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.entering {
			return m.updateEntry(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.entering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "l":
		m.setSelected(m.SelectedColor().Lighter(adjustStep))
	case "d":
		m.setSelected(m.SelectedColor().Darker(adjustStep))
	case "r":
		m.setSelected(colors.RandomFrom(m.rng))
	case "p":
		m.setSelected(colors.RandomPastelFrom(m.rng))
	case "b":
		m.background = m.SelectedColor()
	case "/":
		m.entering = true
		m.errMsg = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.entering = false
		m.errMsg = ""
		m.input.Blur()
		return m, nil
	case "enter":
		c, err := colors.ParseHex(m.input.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.setSelected(c)
		m.entering = false
		m.errMsg = ""
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
