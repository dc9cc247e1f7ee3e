package app

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/ui/helpbindings"
	"github.com/llehouerou/ripple/internal/ui/playerbar"
	"github.com/llehouerou/ripple/internal/ui/playlistpanel"
)

const (
	seekStep     = 5.0  // seconds
	seekStepLong = 30.0 // seconds
	volumeStep   = 0.05
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case MediaEventMsg:
		m.Controller.HandleEvent(msg.Event)
		return m, tea.Batch(m.applyEffects(), WatchMedia(m.Media.Events()))

	case MediaClosedMsg:
		m.log.Debug().Msg("media events closed")
		return m, nil

	case CoverLoadedMsg:
		return m, m.handleCoverLoaded(msg)

	case artTransmitDoneMsg:
		if msg.ID == m.artTransmitID {
			m.artTransmit = ""
		}
		return m, nil

	case AnnounceFailedMsg:
		return m, m.handleAnnounceFailed(msg.Err)

	case helpbindings.CloseMsg:
		m.ShowHelp = false
		return m, nil

	case NoticeClearMsg:
		m.clearNotice(msg.ID)
		return m, nil

	case playlistpanel.SelectTrackMsg:
		m.check(m.Controller.SelectTrack(msg.Index), "select track")
		return m, m.applyEffects()

	case mpris.Msg:
		return m.handleRemote(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

// check logs a controller error. The controller has already told the user
// through a notice where one was due.
func (m Model) check(err error, what string) {
	if err != nil {
		m.log.Debug().Err(err).Msg(what)
	}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())

	if m.ShowHelp && action != keymap.ActionQuit {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
		m.help.Reset()
		return m, nil
	case keymap.ActionSwitchFocus:
		m.setFocus(1 - m.Focus)
		return m, nil
	case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionJumpStart,
		keymap.ActionJumpEnd, keymap.ActionSelect:
		var cmd tea.Cmd
		m.screen.playlist, cmd = m.screen.playlist.Update(msg)
		return m, cmd
	}

	m.runAction(action)
	return m, m.applyEffects()
}

// runAction performs a playback action.
func (m Model) runAction(action keymap.Action) {
	c := m.Controller
	switch action {
	case keymap.ActionPlayPause:
		m.check(c.TogglePlay(), "toggle play")
	case keymap.ActionNextTrack:
		m.check(c.NextTrack(), "next track")
	case keymap.ActionPrevTrack:
		m.check(c.PreviousTrack(), "previous track")
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionSeekForwardLong:
		m.seekBy(seekStepLong)
	case keymap.ActionSeekBackLong:
		m.seekBy(-seekStepLong)
	case keymap.ActionVolumeUp:
		c.AdjustVolume(volumeStep)
	case keymap.ActionVolumeDown:
		c.AdjustVolume(-volumeStep)
	case keymap.ActionToggleShuffle:
		c.ToggleShuffle()
	case keymap.ActionToggleRepeat:
		c.ToggleRepeat()
	case keymap.ActionToggleAutoplay:
		c.ToggleAutoplay()
	}
}

func (m Model) seekBy(delta float64) {
	m.Controller.SeekBy(delta)
	m.seeked()
}

func (m Model) seekTo(fraction float64) {
	m.Controller.Seek(fraction)
	m.seeked()
}

func (m Model) seeked() {
	if m.remote != nil {
		m.remote.Seeked(seconds(m.Controller.Position()))
	}
}

func (m *Model) setFocus(f FocusTarget) {
	m.Focus = f
	m.screen.playlist.SetFocused(f == FocusPlaylist)
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		if msg.Action == tea.MouseActionPress {
			m.ShowHelp = false
		}
		return m, nil
	}

	l := m.layout()
	switch {
	case l.InPlaylist(msg.Y):
		return m.handlePlaylistMouse(msg)
	case l.InBar(msg.Y):
		if msg.X >= l.BarX {
			m.handleBarMouse(msg, msg.X-l.BarX, msg.Y-l.BarY)
		} else if isLeftPress(msg) {
			// Cover box
			m.check(m.Controller.TogglePlay(), "toggle play")
		}
		return m, m.applyEffects()
	}
	return m, nil
}

func (m Model) handlePlaylistMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.screen.playlist.Scroll(-1)
		return m, nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.screen.playlist.Scroll(1)
		return m, nil
	case isLeftPress(msg):
		m.setFocus(FocusPlaylist)
		if idx, ok := m.screen.playlist.ItemAt(msg.Y); ok {
			m.check(m.Controller.SelectTrack(idx), "select track")
			return m, m.applyEffects()
		}
	}
	return m, nil
}

// handleBarMouse handles a mouse event at (x, y) relative to the player
// bar's top-left corner.
func (m Model) handleBarMouse(msg tea.MouseMsg, x, y int) {
	c := m.Controller
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		c.AdjustVolume(volumeStep)
		return
	case tea.MouseButtonWheelDown:
		c.AdjustVolume(-volumeStep)
		return
	case tea.MouseButtonLeft:
	default:
		return
	}

	_, bar := playerbar.Render(m.screen.bar, m.layout().BarWidth)
	dragging := msg.Action == tea.MouseActionMotion

	if f, ok := bar.ProgressAt(x, y); ok {
		m.seekTo(f)
		return
	}
	if f, ok := bar.VolumeAt(x, y); ok {
		c.SetVolume(f)
		return
	}
	if !dragging && msg.Action == tea.MouseActionPress {
		m.runControl(bar.ButtonAt(x, y))
	}
}

func (m Model) runControl(control playerbar.Control) {
	c := m.Controller
	switch control {
	case playerbar.ControlPrev:
		m.check(c.PreviousTrack(), "previous track")
	case playerbar.ControlPlayPause:
		m.check(c.TogglePlay(), "toggle play")
	case playerbar.ControlNext:
		m.check(c.NextTrack(), "next track")
	case playerbar.ControlShuffle:
		c.ToggleShuffle()
	case playerbar.ControlRepeat:
		c.ToggleRepeat()
	case playerbar.ControlAutoplay:
		c.ToggleAutoplay()
	case playerbar.ControlNone:
	}
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// handleRemote applies a command from the desktop media controls.
func (m Model) handleRemote(msg mpris.Msg) (tea.Model, tea.Cmd) {
	c := m.Controller
	switch msg.Action {
	case mpris.ActionPlay:
		m.check(c.Play(), "remote play")
	case mpris.ActionPause:
		c.Pause()
	case mpris.ActionPlayPause:
		m.check(c.TogglePlay(), "remote play/pause")
	case mpris.ActionStop:
		c.Pause()
		m.seekTo(0)
	case mpris.ActionNext:
		m.check(c.NextTrack(), "remote next")
	case mpris.ActionPrevious:
		m.check(c.PreviousTrack(), "remote previous")
	case mpris.ActionSeek:
		m.seekBy(msg.Offset.Seconds())
	case mpris.ActionSetPosition:
		if d := c.Duration(); d > 0 && !math.IsNaN(d) {
			m.seekTo(msg.Offset.Seconds() / d)
		}
	case mpris.ActionSetVolume:
		c.SetVolume(msg.Volume)
	case mpris.ActionSetRepeat:
		c.SetRepeat(msg.Enabled)
	case mpris.ActionSetShuffle:
		c.SetShuffle(msg.Enabled)
	}
	return m, m.applyEffects()
}
