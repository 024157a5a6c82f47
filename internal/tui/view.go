package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/pkg/colors"
)

// visibleRows caps the entry list when the terminal height is unknown.
const visibleRows = 12

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("swatch • %s", m.paletteName)))
	sections = append(sections, m.renderEntryList())
	sections = append(sections, sectionStyle.Render("Selected"), m.renderDetail())

	if m.entering {
		sections = append(sections, sectionStyle.Render("Enter hex"), m.input.View())
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}

	sections = append(sections, helpStyle.Render("↑/↓ move · l lighten · d darken · r random · p pastel · b set bg · / hex · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderEntryList() string {
	rows := visibleRows
	if m.height > 0 && m.height-12 > 0 {
		rows = m.height - 12
	}

	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.entries) {
		end = len(m.entries)
	}

	var lines []string
	if start > 0 {
		lines = append(lines, mutedStyle.Render("▲ more"))
	}

	for i := start; i < end; i++ {
		entry := m.entries[i]
		c := entry.Color()

		marker := "  "
		name := entry.Name
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
			name = selectedStyle.Render(name)
		}

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("████")
		lines = append(lines, fmt.Sprintf("%s%s %s %s", marker, swatch, mutedStyle.Render(c.Hex()), name))
	}

	if end < len(m.entries) {
		lines = append(lines, mutedStyle.Render("▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	c := m.SelectedColor()
	h, s, b := c.HSB()
	ratio := colors.ContrastRatio(c, m.background)

	tone := "light"
	if c.IsDark() {
		tone = "dark"
	}

	grade := colors.Grade(ratio)
	verdict := passStyle.Render(grade)
	if grade == "Fail" {
		verdict = failStyle.Render(grade)
	}

	nrgba := c.NRGBA()
	lines := []string{
		fmt.Sprintf(" %s  rgb %d,%d,%d  hsb %.2f/%.2f/%.2f", c.Hex(), nrgba.R, nrgba.G, nrgba.B, h, s, b),
		fmt.Sprintf(" luma %.3f (%s)  nearest %s", c.Luma(), tone, colors.NearestNamed(c)),
		fmt.Sprintf(" contrast %.2f:1 on %s  %s", ratio, m.background.Hex(), verdict),
	}

	return strings.Join(lines, "\n")
}
