package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
// Blending happens per grapheme cluster in HCL space.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	c1 := toColorful(from)
	c2 := toColorful(to)

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		blended := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(blended.Hex())).
			Bold(true).
			Render(cluster))
	}
	return b.String()
}

// toColorful converts a hex lipgloss.Color. ANSI palette colors fall back
// to a neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
