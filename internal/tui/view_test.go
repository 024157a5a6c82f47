package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/swatchkit/swatch/internal/config"
)

func TestViewListsPaletteEntries(t *testing.T) {
	m := NewModel(testPalette(), nil)
	out := m.View()

	require.Contains(t, out, "Brand")
	require.Contains(t, out, "primary")
	require.Contains(t, out, "#FF5733")
	require.Contains(t, out, "ink")
	require.Contains(t, out, "mist")
	require.Contains(t, out, "Selected")
	require.Contains(t, out, "contrast")
	require.Contains(t, out, "q quit")
}

func TestViewShowsHexPromptWhileEntering(t *testing.T) {
	m := NewModel(testPalette(), nil)
	m = press(t, m, keyRunes("/"))

	out := m.View()
	require.Contains(t, out, "hex>")
}

func TestViewShowsEntryError(t *testing.T) {
	m := NewModel(testPalette(), nil)
	m = press(t, m, keyRunes("/"))
	m = press(t, m, keyRunes("nope"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	require.Contains(t, out, "invalid hex color")
}

func TestViewScrollsLongPalettes(t *testing.T) {
	entries := make([]config.Entry, 0, 20)
	for i := 0; i < 20; i++ {
		entries = append(entries, config.Entry{Name: fmt.Sprintf("shade-%02d", i), Hex: "#112233"})
	}
	pal := &config.Palette{Version: "1.0", Name: "Long", Colors: entries}

	m := NewModel(pal, nil)
	for i := 0; i < 15; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	out := m.View()
	require.Contains(t, out, "▲ more")
	require.Contains(t, out, "▼ more")
	require.Contains(t, out, "shade-15")
	require.NotContains(t, out, "shade-00")
}

func TestViewEmptyWhileQuitting(t *testing.T) {
	m := NewModel(testPalette(), nil)
	m = press(t, m, keyRunes("q"))
	require.Equal(t, "", m.View())
}
