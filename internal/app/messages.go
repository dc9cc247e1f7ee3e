package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/player"
)

// NoticeDuration is how long a notice stays on screen.
const NoticeDuration = 4 * time.Second

// artTransmitDuration is how long the image upload stays in the frame so
// the renderer gets to send it at least once.
const artTransmitDuration = time.Second

// MediaEventMsg wraps an event from the media surface.
type MediaEventMsg struct {
	Event player.Event
}

// MediaClosedMsg is sent when the media event channel closes.
type MediaClosedMsg struct{}

// CoverLoadedMsg carries a fetched cover, or the reason it could not be
// fetched.
type CoverLoadedMsg struct {
	Cover string
	Data  []byte
	Err   error
}

// AnnounceFailedMsg reports a desktop notification that could not be sent.
type AnnounceFailedMsg struct {
	Err error
}

// notice is a temporary message line.
type notice struct {
	ID   int64
	Text string
}

// NoticeClearMsg is sent to clear a specific notice after a delay.
type NoticeClearMsg struct {
	ID int64
}

// NoticeClearCmd returns a command that clears the notice after a delay.
func NoticeClearCmd(id int64) tea.Cmd {
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return NoticeClearMsg{ID: id}
	})
}

// artTransmitDoneMsg drops the image upload from the frame.
type artTransmitDoneMsg struct {
	ID int64
}
