package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/tidy/internal/icons"
	"github.com/llehouerou/tidy/internal/playlists"
	"github.com/llehouerou/tidy/internal/ui/render"
	"github.com/llehouerou/tidy/internal/ui/styles"
)

// listTop is the screen row of the first playlist (header + separator).
const listTop = 2

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	title := styles.ApplyBoldGradient("tidy", t.Primary, t.Warning) + s.Title.Render(" playlists")
	count := s.Subtle.Render(english.Plural(len(m.list), "playlist", ""))
	lines := []string{
		render.Row(title, count, m.width),
		s.Subtle.Render(render.Separator(m.width)),
	}

	footer := m.renderFooter()
	rows := m.listHeight(lipgloss.Height(footer))
	lines = append(lines, m.renderList(rows)...)
	lines = append(lines, footer)

	return m.overlay.RenderOverlay(strings.Join(lines, "\n"), m.layers()...)
}

func (m Model) listHeight(footerHeight int) int {
	return max(m.height-listTop-footerHeight, 1)
}

// offset is the index of the first visible playlist.
func (m Model) offset(rows int) int {
	return max(m.cursor-rows+1, 0)
}

func (m Model) renderList(rows int) []string {
	s := styles.T().S()
	out := make([]string, 0, rows)

	switch {
	case m.loading && len(m.list) == 0:
		out = append(out, s.Muted.Render(" Loading playlists…"))
	case len(m.list) == 0:
		out = append(out, s.Muted.Render(" No playlists. Run tidy-seed to create a few."))
	}

	start := m.offset(rows)
	for i := start; i < len(m.list) && len(out) < rows; i++ {
		out = append(out, m.renderRow(m.list[i], i == m.cursor))
	}
	for len(out) < rows {
		out = append(out, "")
	}
	return out
}

func (m Model) renderRow(p playlists.Summary, selected bool) string {
	s := styles.T().S()

	cursor := " "
	if selected {
		cursor = icons.Cursor()
	}
	right := describeUsage(p)
	nameWidth := m.width - lipgloss.Width(right) - 4
	left := cursor + " " + render.Truncate(icons.FormatPlaylist(p.Name), nameWidth)
	row := render.Row(left, right, m.width)

	if selected {
		return s.Cursor.Render(row)
	}
	return s.Base.Render(row)
}

func describeUsage(p playlists.Summary) string {
	tracks := english.Plural(p.TrackCount, "track", "")
	if p.LastUsedAt != nil {
		return fmt.Sprintf("%s · used %s ", tracks, humanize.Time(*p.LastUsedAt))
	}
	return fmt.Sprintf("%s · created %s ", tracks, humanize.Time(p.CreatedAt))
}

func (m Model) renderFooter() string {
	s := styles.T().S()

	var status string
	switch {
	case m.status != "":
		status = s.Success.Render(" " + m.status)
	case m.loading:
		status = s.Muted.Render(" Loading…")
	}
	return status + "\n" + m.help.View(m.keys)
}
