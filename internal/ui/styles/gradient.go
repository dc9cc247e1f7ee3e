package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders bold text with a horizontal color gradient, one
// color step per grapheme cluster.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return paint(clusters, true, from, to)
}

// GradientRun renders cell repeated n times, blending from -> to across the
// whole run. Used for bar fills.
func GradientRun(cell string, n int, from, to lipgloss.Color) string {
	if n <= 0 {
		return ""
	}
	cells := make([]string, n)
	for i := range cells {
		cells[i] = cell
	}
	return paint(cells, false, from, to)
}

func paint(cells []string, bold bool, from, to lipgloss.Color) string {
	if len(cells) == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Bold(bold)
	if len(cells) == 1 {
		return style.Foreground(from).Render(cells[0])
	}

	colors := blendColors(len(cells), from, to)

	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(style.Foreground(lipgloss.Color(colorToHex(colors[i]))).Render(cell))
	}
	return b.String()
}

// blendColors returns size colors blended between from and to in HCL space.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{lipglossToColor(from)}
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}
	return colors
}

// lipglossToColor converts a #rrggbb lipgloss.Color. ANSI palette colors
// fall back to a neutral gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
