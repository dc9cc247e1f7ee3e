package playlistpanel

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/testutil"
)

func testTracks(n int) []playlist.Track {
	tracks := make([]playlist.Track, n)
	for i := range tracks {
		tracks[i] = playlist.Track{
			Title:           fmt.Sprintf("Song %02d", i),
			Artist:          "Artist",
			DisplayDuration: "0:15",
		}
	}
	return tracks
}

func newPanel(n, active, height int) Model {
	icons.Init("none")
	m := New()
	m.SetSize(50, height)
	m.SetItems(testTracks(n), active)
	m.SetCount(fmt.Sprintf("(%d songs)", n))
	return m
}

func TestView_Empty(t *testing.T) {
	m := newPanel(0, -1, 10)
	out := m.View()

	if !testutil.ContainsLine(out, "No tracks") {
		t.Errorf("empty panel should say so:\n%s", testutil.StripANSI(out))
	}
	if !testutil.ContainsLine(out, "(0 songs)") {
		t.Errorf("header should show count:\n%s", testutil.StripANSI(out))
	}
}

func TestView_ItemsAndActiveMarker(t *testing.T) {
	m := newPanel(3, 1, 10)
	out := m.View()

	for i := range 3 {
		if !testutil.ContainsLine(out, fmt.Sprintf("Song %02d · Artist", i)) {
			t.Errorf("missing Song %02d", i)
		}
	}
	if line := testutil.FindLine(out, "Song 01"); !strings.Contains(line, activeSymbol) {
		t.Errorf("active item should be marked: %q", line)
	}
	if line := testutil.FindLine(out, "Song 00"); strings.Contains(line, activeSymbol) {
		t.Errorf("inactive item should not be marked: %q", line)
	}
	if line := testutil.FindLine(out, "Song 02"); !strings.Contains(line, "0:15") {
		t.Errorf("item should show its duration: %q", line)
	}
}

func TestView_LinesFitWidth(t *testing.T) {
	m := newPanel(3, 0, 8)
	m.tracks[0].Title = strings.Repeat("very long title ", 10)

	lines := testutil.SplitLines(m.View())
	if len(lines) != 8 {
		t.Errorf("lines = %d, want 8", len(lines))
	}
	for i, line := range lines {
		if w := testutil.MeasureWidth(line); w != 50 {
			t.Errorf("line %d width = %d, want 50", i, w)
		}
	}
}

func TestView_ZeroSize(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("zero-size panel should render nothing")
	}
}

func TestSetActive_ScrollsIntoView(t *testing.T) {
	m := newPanel(30, 0, 10) // 6 visible rows
	m.SetActive(25)

	if !testutil.ContainsLine(m.View(), "Song 25") {
		t.Error("active item should be scrolled into view")
	}
	if m.Cursor() != 25 {
		t.Errorf("Cursor() = %d, want 25", m.Cursor())
	}
}

func TestUpdate_NavigationAndSelect(t *testing.T) {
	m := newPanel(5, 0, 10)
	m.SetFocused(true)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 2 {
		t.Fatalf("Cursor() = %d, want 2", m.Cursor())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}
	msg, ok := cmd().(SelectTrackMsg)
	if !ok || msg.Index != 2 {
		t.Errorf("cmd() = %#v, want SelectTrackMsg{Index: 2}", msg)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if m.Cursor() != 4 {
		t.Errorf("G: Cursor() = %d, want 4", m.Cursor())
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if m.Cursor() != 0 {
		t.Errorf("g: Cursor() = %d, want 0", m.Cursor())
	}
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := newPanel(5, 0, 10)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 0 || cmd != nil {
		t.Error("unfocused panel should ignore keys")
	}
}

func TestUpdate_EnterOnEmptyList(t *testing.T) {
	m := newPanel(0, -1, 10)
	m.SetFocused(true)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestItemAt(t *testing.T) {
	m := newPanel(3, 0, 10)
	out := m.View()

	for i := range 3 {
		y := testutil.LineIndex(out, fmt.Sprintf("Song %02d", i))
		idx, ok := m.ItemAt(y)
		if !ok || idx != i {
			t.Errorf("ItemAt(row of Song %02d) = %d, %v", i, idx, ok)
		}
	}
	for _, y := range []int{0, 1, 2, 7, 9, 20} {
		if _, ok := m.ItemAt(y); ok {
			t.Errorf("ItemAt(%d) should miss", y)
		}
	}
}

func TestCursor_EnsureVisible(t *testing.T) {
	c := cursor{margin: 2}
	for range 10 {
		c.move(1, 20, 6)
	}
	if c.pos != 10 {
		t.Fatalf("pos = %d, want 10", c.pos)
	}
	if c.pos-c.offset > 6-1-2 {
		t.Errorf("cursor %d too close to bottom with offset %d", c.pos, c.offset)
	}
	c.jump(19, 20, 6)
	if c.offset != 14 {
		t.Errorf("offset at end = %d, want 14", c.offset)
	}
	c.clamp(0)
	if c.pos != 0 || c.offset != 0 {
		t.Errorf("clamp(0) = %d,%d", c.pos, c.offset)
	}
}

func TestScroll(t *testing.T) {
	m := newPanel(10, 0, 20)
	m.Scroll(3)
	if got := m.Cursor(); got != 3 {
		t.Errorf("Cursor() after Scroll(3) = %d, want 3", got)
	}
	m.Scroll(-10)
	if got := m.Cursor(); got != 0 {
		t.Errorf("Cursor() after Scroll(-10) = %d, want 0", got)
	}
}
