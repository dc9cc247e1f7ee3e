// Package mpris exposes playback to desktop media controls over the MPRIS
// D-Bus interface.
//
// D-Bus calls arrive on their own goroutines. Commands are forwarded to the
// UI loop as Msg values; properties are answered from the last State the UI
// published with Update.
package mpris

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/playlist"
)

// Sender delivers messages to the UI loop. *tea.Program implements it.
type Sender interface {
	Send(msg tea.Msg)
}

// Action is a remote control command.
type Action int

const (
	ActionPlay Action = iota
	ActionPause
	ActionPlayPause
	ActionStop
	ActionNext
	ActionPrevious
	ActionSeek        // relative, by Offset
	ActionSetPosition // absolute, to Offset
	ActionSetVolume
	ActionSetRepeat
	ActionSetShuffle
)

// Msg carries a remote control command into the UI loop.
type Msg struct {
	Action  Action
	Offset  time.Duration // ActionSeek, ActionSetPosition
	Volume  float64       // ActionSetVolume
	Enabled bool          // ActionSetRepeat, ActionSetShuffle
}

// State is the playback snapshot answered to property reads.
type State struct {
	Track    playlist.Track
	HasTrack bool
	Index    int
	Count    int
	Playing  bool
	Position time.Duration
	Duration time.Duration // zero while unknown
	Volume   float64
	Repeat   bool
	Shuffle  bool
}
