// Package render formats colors, contrast reports, and palette tables
// for terminal output. A Renderer carries its own lipgloss renderer so
// color degrades cleanly on dumb terminals and disappears entirely
// under --no-color.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/pkg/colors"
)

// Renderer binds styles to an output profile.
type Renderer struct {
	lip *lipgloss.Renderer

	title lipgloss.Style
	muted lipgloss.Style
	pass  lipgloss.Style
	fail  lipgloss.Style
}

// New creates a Renderer writing to w. The color profile is detected
// from the writer; noColor forces plain ASCII output.
func New(w io.Writer, noColor bool) *Renderer {
	lip := lipgloss.NewRenderer(w)
	if noColor {
		lip.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		lip:   lip,
		title: lip.NewStyle().Bold(true),
		muted: lip.NewStyle().Foreground(lipgloss.Color("245")),
		pass:  lip.NewStyle().Foreground(lipgloss.Color("42")),
		fail:  lip.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Swatch returns a block of cells drawn in the given color.
func (r *Renderer) Swatch(c colors.Color) string {
	return r.lip.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██████")
}

// Chip returns the text on a background of the given color, with the
// text flipped to black or white so it stays readable.
func (r *Renderer) Chip(c colors.Color, text string) string {
	fg := "#000000"
	if c.IsDark() {
		fg = "#FFFFFF"
	}

	return r.lip.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(text)
}

// Detail renders a multi-line description of a single color.
func (r *Renderer) Detail(c colors.Color) string {
	nrgba := c.NRGBA()
	h, s, b := c.HSB()

	tone := "light"
	if c.IsDark() {
		tone = "dark"
	}

	var out strings.Builder
	out.WriteString(r.Swatch(c))
	out.WriteString("  ")
	out.WriteString(r.title.Render(c.Hex()))
	out.WriteString("\n")

	writeField(&out, r, "rgb", fmt.Sprintf("%d, %d, %d", nrgba.R, nrgba.G, nrgba.B))
	writeField(&out, r, "alpha", fmt.Sprintf("%.2f", c.A))
	writeField(&out, r, "hsb", fmt.Sprintf("%.3f / %.3f / %.3f  (%d°)", h, s, b, int(h*360)))
	writeField(&out, r, "luma", fmt.Sprintf("%.3f (%s)", c.Luma(), tone))
	writeField(&out, r, "luminance", fmt.Sprintf("%.4f", c.RelativeLuminance()))
	writeField(&out, r, "nearest", colors.NearestNamed(c))

	return out.String()
}

// ContrastReport renders the WCAG contrast verdict for a pair of colors.
func (r *Renderer) ContrastReport(fg, bg colors.Color) string {
	ratio := colors.ContrastRatio(fg, bg)

	var out strings.Builder
	fmt.Fprintf(&out, "%s on %s  %s\n",
		r.title.Render(fg.Hex()),
		r.title.Render(bg.Hex()),
		r.Chip(bg, fg.Hex()),
	)
	writeField(&out, r, "ratio", fmt.Sprintf("%.2f:1", ratio))
	writeField(&out, r, "grade", colors.Grade(ratio))
	writeField(&out, r, "AA", fmt.Sprintf("normal %s  large %s",
		r.verdict(colors.PassesAA(fg, bg, false)),
		r.verdict(colors.PassesAA(fg, bg, true)),
	))
	writeField(&out, r, "AAA", fmt.Sprintf("normal %s  large %s",
		r.verdict(colors.PassesAAA(fg, bg, false)),
		r.verdict(colors.PassesAAA(fg, bg, true)),
	))

	return out.String()
}

// PaletteTable renders every entry of a palette with its contrast
// against the palette background.
func (r *Renderer) PaletteTable(pal *config.Palette) string {
	if pal == nil || len(pal.Colors) == 0 {
		return r.muted.Render("(empty palette)") + "\n"
	}

	bg := pal.BackgroundColor()
	nameWidth := len("name")
	for _, entry := range pal.Colors {
		if len(entry.Name) > nameWidth {
			nameWidth = len(entry.Name)
		}
	}

	var out strings.Builder
	out.WriteString(r.title.Render(pal.Name))
	fmt.Fprintf(&out, "  %s\n", r.muted.Render(fmt.Sprintf("(%d colors, background %s)", len(pal.Colors), bg.Hex())))

	header := fmt.Sprintf("%-8s %-*s %-8s %-12s %-9s %s", "", nameWidth, "name", "hex", "role", "contrast", "grade")
	out.WriteString(r.muted.Render(header))
	out.WriteString("\n")

	for _, entry := range pal.Colors {
		c := entry.Color()
		ratio := colors.ContrastRatio(c, bg)
		role := entry.Role
		if role == "" {
			role = "-"
		}

		fmt.Fprintf(&out, "%s   %-*s %-8s %-12s %8.2f:1 %s\n",
			r.Swatch(c),
			nameWidth, entry.Name,
			c.Hex(),
			role,
			ratio,
			colors.Grade(ratio),
		)
	}

	return out.String()
}

// CheckReport renders pass/fail lines for every palette entry against
// the background at the given minimum ratio, and reports whether the
// whole palette passed.
func (r *Renderer) CheckReport(pal *config.Palette, min float64) (string, bool) {
	if pal == nil || len(pal.Colors) == 0 {
		return r.muted.Render("(empty palette)") + "\n", true
	}

	bg := pal.BackgroundColor()
	passed := 0

	var out strings.Builder
	for _, entry := range pal.Colors {
		ratio := colors.ContrastRatio(entry.Color(), bg)
		ok := ratio >= min
		if ok {
			passed++
		}

		fmt.Fprintf(&out, "%s %-s %s %.2f:1\n",
			r.verdict(ok),
			entry.Name,
			entry.Color().Hex(),
			ratio,
		)
	}

	allPassed := passed == len(pal.Colors)
	fmt.Fprintf(&out, "\n%d of %d colors meet %.2f:1 against %s\n", passed, len(pal.Colors), min, bg.Hex())

	return out.String(), allPassed
}

// ContrastMatrix renders the pairwise contrast grid for a palette.
// Each cell is the ratio of the row entry on the column entry.
func (r *Renderer) ContrastMatrix(pal *config.Palette) string {
	if pal == nil || len(pal.Colors) == 0 {
		return r.muted.Render("(empty palette)") + "\n"
	}

	rowWidth := 0
	colWidth := 7
	for _, entry := range pal.Colors {
		if len(entry.Name) > rowWidth {
			rowWidth = len(entry.Name)
		}
		if len(entry.Name)+2 > colWidth {
			colWidth = len(entry.Name) + 2
		}
	}

	var out strings.Builder
	out.WriteString(r.title.Render(pal.Name))
	fmt.Fprintf(&out, "  %s\n", r.muted.Render("(pairwise contrast, row on column)"))

	header := fmt.Sprintf("%-*s", rowWidth, "")
	for _, entry := range pal.Colors {
		header += fmt.Sprintf("%*s", colWidth, entry.Name)
	}
	out.WriteString(r.muted.Render(header))
	out.WriteString("\n")

	for _, row := range pal.Colors {
		fmt.Fprintf(&out, "%-*s", rowWidth, row.Name)
		for _, col := range pal.Colors {
			fmt.Fprintf(&out, "%*.2f", colWidth, colors.ContrastRatio(row.Color(), col.Color()))
		}
		out.WriteString("\n")
	}

	return out.String()
}

func (r *Renderer) verdict(ok bool) string {
	if ok {
		return r.pass.Render("✓")
	}
	return r.fail.Render("✗")
}

func writeField(out *strings.Builder, r *Renderer, name, value string) {
	fmt.Fprintf(out, "%s %s\n", r.muted.Render(fmt.Sprintf("%-10s", name)), value)
}
