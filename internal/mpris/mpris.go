//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"
)

// Adapter serves the MPRIS interface.
type Adapter struct {
	server *server.Server
	events *events.EventHandler
	player *playerAdapter
	log    zerolog.Logger
}

// New creates the adapter and starts listening on the session bus.
func New(send Sender, log zerolog.Logger) (*Adapter, error) {
	player := &playerAdapter{send: send}
	a := &Adapter{
		server: server.NewServer("ripple", &rootAdapter{}, player),
		player: player,
		log:    log,
	}
	a.events = events.NewEventHandler(a.server)

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Update publishes a new snapshot and signals the properties that changed.
func (a *Adapter) Update(s State) {
	prev := a.player.swap(s)

	signal := func(changed bool, emit func() error) {
		if !changed {
			return
		}
		if err := emit(); err != nil {
			a.log.Debug().Err(err).Msg("mpris signal")
		}
	}
	signal(prev.Track != s.Track || prev.HasTrack != s.HasTrack || prev.Duration != s.Duration,
		a.events.Player.OnTitle)
	signal(prev.Playing != s.Playing, a.events.Player.OnPlayPause)
	signal(prev.Volume != s.Volume, a.events.Player.OnVolume)
	signal(prev.Repeat != s.Repeat || prev.Shuffle != s.Shuffle, a.events.Player.OnOptions)
}

// Seeked signals a position jump.
func (a *Adapter) Seeked(position time.Duration) {
	if err := a.events.Player.OnSeek(types.Microseconds(position.Microseconds())); err != nil {
		a.log.Debug().Err(err).Msg("mpris seeked signal")
	}
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Ripple", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter plus the
// LoopStatus and Shuffle extensions.
type playerAdapter struct {
	send Sender

	mu    sync.RWMutex
	state State
}

func (p *playerAdapter) swap(s State) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	prev := p.state
	p.state = s
	return prev
}

func (p *playerAdapter) snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *playerAdapter) dispatch(msg Msg) error {
	p.send.Send(msg)
	return nil
}

func (p *playerAdapter) Next() error {
	return p.dispatch(Msg{Action: ActionNext})
}

func (p *playerAdapter) Previous() error {
	return p.dispatch(Msg{Action: ActionPrevious})
}

func (p *playerAdapter) Pause() error {
	return p.dispatch(Msg{Action: ActionPause})
}

func (p *playerAdapter) PlayPause() error {
	return p.dispatch(Msg{Action: ActionPlayPause})
}

func (p *playerAdapter) Stop() error {
	return p.dispatch(Msg{Action: ActionStop})
}

func (p *playerAdapter) Play() error {
	return p.dispatch(Msg{Action: ActionPlay})
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.dispatch(Msg{Action: ActionSeek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	s := p.snapshot()
	// Stale requests for a track that is no longer current are ignored.
	if !s.HasTrack || trackID != formatTrackID(s.Track.Source) {
		return nil
	}
	return p.dispatch(Msg{Action: ActionSetPosition, Offset: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.snapshot()
	switch {
	case !s.HasTrack:
		return types.PlaybackStatusStopped, nil
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.snapshot()
	if !s.HasTrack {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.Track.Source)),
		Length:  types.Microseconds(s.Duration.Microseconds()),
		Title:   s.Track.Title,
		Album:   s.Track.Album,
	}
	if s.Track.Artist != "" {
		meta.Artist = []string{s.Track.Artist}
	}
	meta.ArtUrl = ArtURL(s.Track)
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.dispatch(Msg{Action: ActionSetVolume, Volume: v})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Next and Previous wrap around, so both are available whenever the
// playlist has tracks.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.snapshot().Count > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.snapshot().Count > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.snapshot().HasTrack, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.snapshot().HasTrack, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.snapshot().Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Repeat loops the current track; there is no playlist loop mode.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.snapshot().Repeat {
		return types.LoopStatusTrack, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.dispatch(Msg{Action: ActionSetRepeat, Enabled: status != types.LoopStatusNone})
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	return p.dispatch(Msg{Action: ActionSetShuffle, Enabled: shuffle})
}

func formatTrackID(src string) string {
	h := fnv.New64a()
	h.Write([]byte(src))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
