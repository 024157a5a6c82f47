package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swatchkit/swatch/pkg/colors"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	pal := validPalette()

	entry, ok := pal.Lookup("PRIMARY")
	require.True(t, ok)
	assert.Equal(t, "primary", entry.Name)

	entry, ok = pal.Lookup("  ink ")
	require.True(t, ok)
	assert.Equal(t, "ink", entry.Name)

	_, ok = pal.Lookup("missing")
	assert.False(t, ok)
}

func TestLookupOnNilPalette(t *testing.T) {
	t.Parallel()

	var pal *Palette
	_, ok := pal.Lookup("primary")
	assert.False(t, ok)
}

func TestEntryColorParsesHex(t *testing.T) {
	t.Parallel()

	entry := Entry{Name: "primary", Hex: "#FF5733"}
	assert.Equal(t, "#FF5733", entry.Color().Hex())

	bare := Entry{Name: "ink", Hex: "1A2B3C"}
	assert.Equal(t, "#1A2B3C", bare.Color().Hex())
}

func TestBackgroundColorPrecedence(t *testing.T) {
	t.Parallel()

	t.Run("explicit background field wins", func(t *testing.T) {
		t.Parallel()

		pal := validPalette()
		pal.Background = "#101010"
		pal.Colors[0].Role = "background"
		assert.Equal(t, "#101010", pal.BackgroundColor().Hex())
	})

	t.Run("background role is next", func(t *testing.T) {
		t.Parallel()

		pal := validPalette()
		pal.Colors[1].Role = "background"
		assert.Equal(t, "#1A2B3C", pal.BackgroundColor().Hex())
	})

	t.Run("defaults to white", func(t *testing.T) {
		t.Parallel()

		pal := validPalette()
		assert.Equal(t, colors.White, pal.BackgroundColor())
	})

	t.Run("nil palette defaults to white", func(t *testing.T) {
		t.Parallel()

		var pal *Palette
		assert.Equal(t, colors.White, pal.BackgroundColor())
	})
}

func TestEntryNamesAreSorted(t *testing.T) {
	t.Parallel()

	pal := &Palette{
		Version: "1.0",
		Name:    "Sorting",
		Colors: []Entry{
			{Name: "zinc", Hex: "#71717A"},
			{Name: "amber", Hex: "#F59E0B"},
			{Name: "sky", Hex: "#0EA5E9"},
		},
	}

	assert.Equal(t, []string{"amber", "sky", "zinc"}, pal.EntryNames())
}

func TestEntryMapKeysAreLowercased(t *testing.T) {
	t.Parallel()

	m := EntryMap([]Entry{{Name: "primary", Hex: "#FF5733"}})
	_, ok := m["primary"]
	assert.True(t, ok)
	assert.Len(t, m, 1)
}
