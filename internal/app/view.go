package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/ui/layout"
	"github.com/llehouerou/ripple/internal/ui/playerbar"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

const statusHeight = 1

func (m Model) layout() layout.Screen {
	artWidth := 0
	if m.art != nil {
		artWidth, _ = m.art.Size()
	}
	return layout.Calculate(layout.Opts{
		Width:           m.Width,
		Height:          m.Height,
		PlayerBarHeight: playerbar.Height(),
		StatusHeight:    statusHeight,
		ArtWidth:        artWidth,
	})
}

// resize propagates the window size to the components.
func (m *Model) resize() {
	l := m.layout()
	m.screen.playlist.SetSize(m.Width, l.PlaylistHeight)
	m.help.SetSize(m.Width, l.PlaylistHeight)
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	l := m.layout()

	var sections []string
	if l.PlaylistHeight > 0 {
		if m.ShowHelp {
			sections = append(sections, m.help.View())
		} else {
			sections = append(sections, m.screen.playlist.View())
		}
	}

	bar, _ := playerbar.Render(m.screen.bar, l.BarWidth)
	if l.ShowArt {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, m.art.View(m.screen.bar.Playing), bar)
	}
	sections = append(sections, bar, m.renderStatus(m.Width))

	view := enforceHeight(strings.Join(sections, "\n"), m.Height)

	// Image upload first, placement last so it lands over the cover box.
	if m.artTransmit != "" {
		view = m.artTransmit + view
	}
	if l.ShowArt {
		view += m.art.Placement(l.ArtRow(), 1)
	}
	return view
}

// renderStatus shows the newest notice, or a key hint when there is none.
func (m Model) renderStatus(width int) string {
	st := styles.T().S()
	hint := st.Subtle.Render(fmt.Sprintf("%s help  %s quit",
		m.keys.Describe(keymap.ActionHelp), m.keys.Describe(keymap.ActionQuit)))

	if len(m.notices) == 0 {
		return render.Row("", hint, width)
	}
	text := m.notices[len(m.notices)-1].Text
	avail := max(width-lipgloss.Width(hint)-1, 0)
	return render.Row(st.Error.Render(render.TruncateEllipsis(text, avail)), hint, width)
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	switch {
	case len(lines) < targetHeight:
		lines = append(lines, make([]string, targetHeight-len(lines))...)
	case len(lines) > targetHeight:
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
