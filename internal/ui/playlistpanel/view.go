package playlistpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

// View renders the playlist panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderWidth
	st := styles.T().S()

	header := render.Row(
		st.Title.Render(headerText),
		st.Muted.Render(m.count),
		innerWidth,
	)
	content := header + "\n" + st.Subtle.Render(render.Separator(innerWidth)) + "\n" + m.renderList(innerWidth)

	return styles.T().Panel(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderList(width int) string {
	height := m.listHeight()
	if height <= 0 {
		return ""
	}

	lines := make([]string, 0, height)
	if len(m.tracks) == 0 {
		lines = append(lines, styles.T().S().Subtle.Render(render.Center(emptyText, width)))
	}
	for i := range height - len(lines) {
		idx := m.cursor.offset + i
		if len(m.tracks) == 0 || idx >= len(m.tracks) {
			lines = append(lines, render.EmptyLine(width))
			continue
		}
		lines = append(lines, m.renderItem(m.tracks[idx], idx, width))
	}
	return strings.Join(lines, "\n")
}

// renderItem renders "▶ Title · Artist          0:15".
func (m Model) renderItem(track playlist.Track, idx, width int) string {
	prefix := "  "
	if idx == m.active {
		prefix = activeSymbol + " "
	}

	duration := track.DisplayDuration
	durWidth := lipgloss.Width(duration)
	contentWidth := max(width-lipgloss.Width(prefix)-durWidth-1, 0)

	label := icons.FormatAudio(track.Title)
	if track.Artist != "" {
		label += " · " + track.Artist
	}
	line := prefix + render.TruncateAndPad(label, contentWidth) + " " + duration

	return m.itemStyle(idx).Render(render.TruncateAndPad(line, width))
}

func (m Model) itemStyle(idx int) lipgloss.Style {
	st := styles.T().S()
	isCursor := idx == m.cursor.pos && m.IsFocused()
	isActive := idx == m.active

	switch {
	case isCursor && isActive:
		return st.Cursor.Inherit(st.Playing)
	case isCursor:
		return st.Cursor
	case isActive:
		return st.Playing
	default:
		return st.Base
	}
}
