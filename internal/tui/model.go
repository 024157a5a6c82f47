package tui

import (
	"math/rand"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/pkg/colors"
)

// adjustStep is how far one lighten or darken keypress moves brightness.
const adjustStep = 0.1

// Model contains the Bubbletea state for the interactive palette explorer.
// It works on a copy of the palette's entries; the file on disk is never
// touched.
type Model struct {
	paletteName string
	entries     []config.Entry
	background  colors.Color

	cursor   int
	entering bool
	input    textinput.Model
	errMsg   string

	rng      *rand.Rand
	quitting bool

	width  int
	height int
}

// NewModel constructs an explorer model. A nil palette starts a scratch
// session seeded with one random color. A nil rng falls back to the
// shared source; tests pass a seeded one.
func NewModel(pal *config.Palette, rng *rand.Rand) Model {
	input := textinput.New()
	input.Placeholder = "#RRGGBB"
	input.Prompt = "hex> "
	input.CharLimit = 16
	input.Width = 12

	m := Model{
		paletteName: "scratch",
		background:  colors.White,
		input:       input,
		rng:         rng,
	}

	if pal != nil {
		m.paletteName = pal.Name
		m.entries = append(m.entries, pal.Colors...)
		m.background = pal.BackgroundColor()
	}

	if len(m.entries) == 0 {
		m.entries = []config.Entry{{Name: "custom", Hex: colors.RandomFrom(rng).Hex()}}
	}

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the entry under the cursor.
func (m Model) Selected() config.Entry {
	if len(m.entries) == 0 {
		return config.Entry{}
	}
	return m.entries[m.cursor]
}

// SelectedColor returns the parsed color under the cursor.
func (m Model) SelectedColor() colors.Color {
	return m.Selected().Color()
}

// Background returns the color entries are contrasted against.
func (m Model) Background() colors.Color {
	return m.background
}

// EntryCount returns the number of entries in the working set.
func (m Model) EntryCount() int {
	return len(m.entries)
}

// IsQuitting reports whether the user has asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func (m *Model) setSelected(c colors.Color) {
	if len(m.entries) == 0 {
		return
	}
	m.entries[m.cursor].Hex = c.Hex()
}

func (m *Model) clampCursor() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if max := len(m.entries) - 1; m.cursor > max {
		m.cursor = max
	}
}
