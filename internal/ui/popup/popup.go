package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tidy/internal/ui/styles"
)

// Style configures the notice appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default notice style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Error,
		TitleStyle:  t.S().Error.Bold(true),
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a simple centered box with title, content, and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
	Style   Style
}

// New creates a new dialog with default style.
func New() *Dialog {
	return &Dialog{
		Style: DefaultStyle(),
	}
}

// Render lays the dialog out centered on a termWidth x termHeight screen.
func (p *Dialog) Render(termWidth, termHeight int) Placement {
	style := p.Style

	contentWidth := p.Width
	if contentWidth == 0 {
		contentWidth = maxLineWidth(p.Content)
		if w := lipgloss.Width(p.Title); w > contentWidth {
			contentWidth = w
		}
		if w := lipgloss.Width(p.Footer); w > contentWidth {
			contentWidth = w
		}
		contentWidth += 2
	}
	if maxWidth := termWidth - 4; contentWidth > maxWidth {
		contentWidth = max(maxWidth, 1)
	}

	lines := make([]string, 0, strings.Count(p.Content, "\n")+5)
	if p.Title != "" {
		lines = append(lines, centerLine(style.TitleStyle.Render(p.Title), contentWidth), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		if lipgloss.Width(line) > contentWidth {
			line = ansi.Truncate(line, contentWidth, "…")
		}
		lines = append(lines, padLine(line, contentWidth))
	}
	if p.Footer != "" {
		lines = append(lines, "", centerLine(style.FooterStyle.Render(p.Footer), contentWidth))
	}

	box := lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Center anchors pre-rendered content in the middle of the screen.
func Center(content string, termWidth, termHeight int) Placement {
	boxWidth := maxLineWidth(content)
	boxHeight := lipgloss.Height(content)
	return Placement{
		Content: content,
		X:       max((termWidth-boxWidth)/2, 0),
		Y:       max((termHeight-boxHeight)/2, 0),
	}
}

// Dim strips styling from the base view and greys it out, padding it to
// height lines. It is the backdrop drawn under modal dialogs.
func Dim(base string, width, height int) string {
	dim := lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		plain := ansi.Truncate(ansi.Strip(line), width, "")
		if plain == "" {
			continue
		}
		lines[i] = dim.Render(plain)
	}
	return strings.Join(lines, "\n")
}

// Place composes the placement on top of base. Cells covered by the
// placement's lines are replaced; the rest of base is kept.
// This function is ANSI-aware and handles styled text correctly.
func Place(base string, p Placement, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(p.Content, "\n")

	for i, overlayLine := range overlayLines {
		row := p.Y + i
		if row < 0 {
			continue
		}
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}

		startCol := p.X
		endCol := startCol + ansi.StringWidth(overlayLine)

		baseLine := baseLines[row]
		if baseWidth := ansi.StringWidth(baseLine); baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		// When cutting through a wide character, ansi.Cut may return a
		// shorter prefix. Pad to keep the overlay aligned.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if prefixWidth := ansi.StringWidth(prefix); prefixWidth < startCol {
			prefix += strings.Repeat(" ", startCol-prefixWidth)
		}

		result := prefix + overlayLine
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			expected := width - endCol
			if w := ansi.StringWidth(suffix); w < expected {
				suffix += strings.Repeat(" ", expected-w)
			}
			result += suffix
		}

		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}
