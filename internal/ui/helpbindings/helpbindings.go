// Package helpbindings renders the scrollable key binding overlay.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

const title = "Key bindings"

// contextLabels maps binding contexts to section titles.
var contextLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"playlist": "Playlist",
}

// CloseMsg asks the owner to hide the overlay.
type CloseMsg struct{}

// Model holds the state for the help overlay.
type Model struct {
	ui.Base
	keys         *keymap.Resolver
	scrollOffset int
}

// New creates a help overlay describing the keys bound in keys.
func New(keys *keymap.Resolver) Model {
	return Model{keys: keys}
}

// Reset scrolls back to the top.
func (m *Model) Reset() {
	m.scrollOffset = 0
}

// Update scrolls on j/k and the arrow keys. Any other key closes the
// overlay.
func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	default:
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View renders the overlay filling the component size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	st := styles.T().S()
	innerWidth := max(m.Width()-ui.BorderWidth, 0)
	visible := m.visibleHeight()

	content := m.buildContent(innerWidth)
	start := min(m.scrollOffset, len(content))
	end := min(start+visible, len(content))

	header := st.Title.Render(render.TruncateAndPad(title, innerWidth))
	if footer := m.footer(); len(title)+1+lipgloss.Width(footer) <= innerWidth {
		header = render.Row(st.Title.Render(title), st.Subtle.Render(footer), innerWidth)
	}

	lines := make([]string, 0, visible+ui.HeaderHeight)
	lines = append(lines, header, st.Subtle.Render(render.Separator(innerWidth)))
	lines = append(lines, content[start:end]...)
	for len(lines) < visible+ui.HeaderHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	return styles.T().Panel(true).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m Model) buildContent(width int) []string {
	st := styles.T().S()

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, lipgloss.Width(m.keys.Describe(b.Action)))
	}
	descWidth := max(width-keyWidth-2, 0)

	var lines []string
	for _, ctx := range keymap.Contexts {
		if len(lines) > 0 {
			lines = append(lines, render.EmptyLine(width))
		}
		label := contextLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines, st.Muted.Render(render.TruncateAndPad(label, width)))
		for _, b := range keymap.ByContext(ctx) {
			// Cut before styling; truncating styled text would split escapes.
			keys := render.TruncateAndPad(m.keys.Describe(b.Action), min(keyWidth, width))
			desc := render.TruncateAndPad(b.Description, descWidth)
			line := st.Active.Render(keys)
			if descWidth > 0 {
				line += "  " + st.Base.Render(desc)
			}
			lines = append(lines, line)
		}
	}
	return lines
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "any key closes"
	}
	return "j/k scroll · any key closes"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-ui.PanelOverhead, 0)
}

func (m Model) totalLines() int {
	lines := 0
	for _, ctx := range keymap.Contexts {
		if lines > 0 {
			lines++
		}
		lines += 1 + len(keymap.ByContext(ctx))
	}
	return lines
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
