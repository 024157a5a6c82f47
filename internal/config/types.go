package config

import (
	"sort"
	"strings"

	"github.com/swatchkit/swatch/pkg/colors"
)

// Palette represents a full palette document.
type Palette struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Name        string  `yaml:"name" validate:"required,min=1,max=100"`
	Description string  `yaml:"description,omitempty"`
	Background  string  `yaml:"background,omitempty" validate:"omitempty,hex6"`
	Colors      []Entry `yaml:"colors" validate:"required,min=1,max=256,dive"`
}

// Entry is a single named color in a palette.
type Entry struct {
	Name string `yaml:"name" validate:"required,color_name"`
	Hex  string `yaml:"hex" validate:"required,hex6"`
	Role string `yaml:"role,omitempty" validate:"omitempty,oneof=background foreground accent surface border"`
}

// Color returns the entry's parsed color. Entries in a validated palette
// always carry a well-formed hex string, so the lenient parser is safe
// here and keeps the accessor total.
func (e Entry) Color() colors.Color {
	return colors.ParseHexLenient(e.Hex)
}

// Lookup finds an entry by name, case-insensitively.
func (p *Palette) Lookup(name string) (Entry, bool) {
	if p == nil {
		return Entry{}, false
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range p.Colors {
		if strings.ToLower(entry.Name) == needle {
			return entry, true
		}
	}
	return Entry{}, false
}

// BackgroundColor returns the palette's background, preferring the
// top-level background field, then an entry with the background role,
// and finally white.
func (p *Palette) BackgroundColor() colors.Color {
	if p == nil {
		return colors.White
	}

	if p.Background != "" {
		return colors.ParseHexLenient(p.Background)
	}

	for _, entry := range p.Colors {
		if entry.Role == "background" {
			return entry.Color()
		}
	}

	return colors.White
}

// EntryNames returns the palette's color names in sorted order.
func (p *Palette) EntryNames() []string {
	if p == nil {
		return nil
	}

	out := make([]string, 0, len(p.Colors))
	for _, entry := range p.Colors {
		out = append(out, entry.Name)
	}
	sort.Strings(out)
	return out
}

// EntryMap builds a lookup table for entries by lowercased name.
func EntryMap(entries []Entry) map[string]Entry {
	out := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		out[strings.ToLower(entry.Name)] = entry
	}
	return out
}
