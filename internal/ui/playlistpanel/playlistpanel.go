// Package playlistpanel renders the playlist: one row per track, the active
// track marked, a keyboard cursor, and the item count in the header.
package playlistpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui"
)

// SelectTrackMsg is sent when the user picks a track from the list.
type SelectTrackMsg struct {
	Index int
}

// Model represents the playlist panel state.
type Model struct {
	ui.Base
	tracks []playlist.Track
	active int
	count  string
	cursor cursor
}

// New creates an empty playlist panel.
func New() Model {
	return Model{active: -1, cursor: cursor{margin: ui.ScrollMargin}}
}

// SetItems replaces the list and marks active. The cursor follows the
// active item.
func (m *Model) SetItems(tracks []playlist.Track, active int) {
	m.tracks = append([]playlist.Track(nil), tracks...)
	m.SetActive(active)
}

// SetActive marks the item at index as the current track.
func (m *Model) SetActive(index int) {
	m.active = index
	if index >= 0 && index < len(m.tracks) {
		m.cursor.jump(index, len(m.tracks), m.listHeight())
	} else {
		m.cursor.clamp(len(m.tracks))
	}
}

// SetCount sets the label shown next to the header, e.g. "(3 songs)".
func (m *Model) SetCount(label string) {
	m.count = label
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.ensureVisible(len(m.tracks), m.listHeight())
}

// Active returns the index of the marked item.
func (m Model) Active() int {
	return m.active
}

// Cursor returns the cursor position.
func (m Model) Cursor() int {
	return m.cursor.pos
}

// Len returns the number of items.
func (m Model) Len() int {
	return len(m.tracks)
}

// Update handles list navigation keys while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	n, h := len(m.tracks), m.listHeight()
	switch keyMsg.String() {
	case "j", "down":
		m.cursor.move(1, n, h)
	case "k", "up":
		m.cursor.move(-1, n, h)
	case "g", "home":
		m.cursor.jump(0, n, h)
	case "G", "end":
		m.cursor.jump(n-1, n, h)
	case "enter":
		if n > 0 {
			idx := m.cursor.pos
			return m, func() tea.Msg { return SelectTrackMsg{Index: idx} }
		}
	}
	return m, nil
}

// Scroll moves the cursor by delta rows, as for the mouse wheel.
func (m *Model) Scroll(delta int) {
	m.cursor.move(delta, len(m.tracks), m.listHeight())
}

// ItemAt returns the track index drawn on row y of the panel (0 is the top
// border).
func (m Model) ItemAt(y int) (int, bool) {
	row := y - 1 - ui.HeaderHeight
	if row < 0 || row >= m.listHeight() {
		return 0, false
	}
	idx := m.cursor.offset + row
	if idx >= len(m.tracks) {
		return 0, false
	}
	return idx, true
}

func (m Model) listHeight() int {
	return m.Height() - ui.PanelOverhead
}
