package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParsePalette loads a palette file from disk, validates it, and returns
// the resulting model.
func ParsePalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}

	var pal Palette
	if err := yaml.Unmarshal(data, &pal); err != nil {
		return nil, swatcherrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidatePalette(&pal); err != nil {
		return nil, err
	}

	return &pal, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
