// Package diff renders palette changes as unified diffs. Palettes are
// normalized to sorted "name: #RRGGBB" lines first, so reordering
// entries or changing hex case does not show up as a change.
package diff

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/swatchkit/swatch/internal/config"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// GeneratePaletteDiff compares two palettes and returns a unified diff of
// their normalized entries. Returns empty string if the palettes contain
// the same colors, regardless of entry order or hex casing.
func GeneratePaletteDiff(before, after *config.Palette, beforeLabel, afterLabel string) string {
	return GenerateUnifiedDiff(normalizePalette(before), normalizePalette(after), beforeLabel, afterLabel)
}

// GenerateUnifiedDiff generates a unified diff format output comparing
// before and after content. Returns empty string if content is identical.
// Truncates diffs exceeding 10,000 lines with a truncation marker.
func GenerateUnifiedDiff(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()

	beforeStr := string(before)
	afterStr := string(after)

	diffs := dmp.DiffMain(beforeStr, afterStr, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf bytes.Buffer

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(&buf, "--- %s\t%s\n", beforeLabel, timestamp)
	fmt.Fprintf(&buf, "+++ %s\t%s\n", afterLabel, timestamp)

	beforeLines := strings.Split(beforeStr, "\n")
	afterLines := strings.Split(afterStr, "\n")
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(beforeLines), len(afterLines))

	for _, diff := range diffs {
		text := diff.Text
		lines := strings.Split(text, "\n")

		// Remove empty trailing line from split
		if len(lines) > 0 && lines[len(lines)-1] == "" && text[len(text)-1] == '\n' {
			lines = lines[:len(lines)-1]
		}

		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			prefix = " "
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range lines {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

// normalizePalette flattens a palette into sorted canonical lines. The
// hex value round-trips through the color type so casing and missing
// hash prefixes normalize away.
func normalizePalette(pal *config.Palette) []byte {
	if pal == nil {
		return nil
	}

	lines := make([]string, 0, len(pal.Colors)+1)
	if pal.Background != "" {
		lines = append(lines, fmt.Sprintf("background: %s", config.Entry{Hex: pal.Background}.Color().Hex()))
	}
	for _, entry := range pal.Colors {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToLower(entry.Name), entry.Color().Hex()))
	}
	sort.Strings(lines)

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.Bytes()
}
