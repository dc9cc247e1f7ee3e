// Package app is the bubbletea program: it routes keys, mouse and media
// events into the playback controller and lays out the player screen.
package app

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/keymap"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/source"
	"github.com/llehouerou/ripple/internal/ui/albumart"
	"github.com/llehouerou/ripple/internal/ui/helpbindings"
)

// FocusTarget identifies which component receives navigation keys.
type FocusTarget int

const (
	FocusPlayer FocusTarget = iota
	FocusPlaylist
)

// Remote receives playback snapshots for desktop media controls.
// *mpris.Adapter implements it.
type Remote interface {
	Update(s mpris.State)
	Seeked(position time.Duration)
}

// Deps holds what New wires together. Only Media is required.
type Deps struct {
	Media  player.Interface
	Tracks []playlist.Track
	Config *config.Config
	Keys   *keymap.Resolver

	// Art draws covers; nil hides the cover box.
	Art      *albumart.Renderer
	ArtCache *albumart.Cache
	Opener   *source.Opener

	// Notifier raises desktop notifications on track change; nil disables.
	Notifier notify.Notifier

	Rand *rand.Rand
	Log  zerolog.Logger
}

// Model is the application state.
type Model struct {
	Controller *playback.Controller
	Media      player.Interface
	Focus      FocusTarget
	ShowHelp   bool
	Width      int
	Height     int

	screen    *screen
	help      helpbindings.Model
	keys      *keymap.Resolver
	art       *albumart.Renderer
	artCache  *albumart.Cache
	opener    *source.Opener
	announcer *notify.Announcer
	remote    Remote
	log       zerolog.Logger

	// artWant is the cover being fetched for the current track.
	artWant string
	// artTransmit is the pending image upload, sent with the next frames.
	artTransmit   string
	artTransmitID int64

	notices      []notice
	nextNoticeID int64

	startup tea.Cmd
}

// New wires the controller to a fresh screen, applies the startup settings
// and loads the first track.
func New(d Deps) Model {
	cfg := d.Config
	if cfg == nil {
		cfg = config.Default()
	}
	keys := d.Keys
	if keys == nil {
		keys = keymap.Default()
	}
	opener := d.Opener
	if opener == nil {
		opener = source.NewOpener(source.WithLogger(d.Log))
	}

	scr := newScreen()
	opts := []playback.Option{playback.WithLogger(d.Log)}
	if d.Rand != nil {
		opts = append(opts, playback.WithRand(d.Rand))
	}
	ctrl := playback.New(d.Media, scr, d.Tracks, opts...)

	m := Model{
		Controller: ctrl,
		Media:      d.Media,
		Focus:      FocusPlaylist,
		screen:     scr,
		help:       helpbindings.New(keys),
		keys:       keys,
		art:        d.Art,
		artCache:   d.ArtCache,
		opener:     opener,
		log:        d.Log,
	}
	if d.Notifier != nil {
		m.announcer = notify.NewAnnouncer(d.Notifier)
	}
	scr.playlist.SetFocused(true)

	ctrl.SetVolume(cfg.Volume)
	ctrl.SetRepeat(cfg.Repeat)
	ctrl.SetAutoplay(cfg.Autoplay)
	ctrl.SetShuffle(cfg.Shuffle)
	if err := ctrl.Init(); err != nil {
		m.log.Warn().Err(err).Msg("initial load")
	}

	// The first track is not announced; only changes are.
	ann := m.announcer
	m.announcer = nil
	m.startup = m.applyEffects()
	m.announcer = ann
	return m
}

// SetRemote attaches desktop media controls. The adapter needs the running
// program to send commands, so it is attached after New.
func (m *Model) SetRemote(r Remote) {
	m.remote = r
	m.syncRemote()
}

// Close takes down the desktop notification left by the last track change.
// Call it once the program has exited.
func (m Model) Close() {
	if m.announcer == nil {
		return
	}
	if err := m.announcer.Close(); err != nil {
		m.log.Debug().Err(err).Msg("close notification")
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(WatchMedia(m.Media.Events()), m.startup)
}
