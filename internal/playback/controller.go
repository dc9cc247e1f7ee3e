// Package playback keeps a playlist, a media surface and a set of on-screen
// controls in agreement.
//
// The Controller is not safe for concurrent use. Every method runs on the
// UI event loop; media events reach it through HandleEvent.
package playback

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
)

// Controller owns the player state: the active playlist, the current index
// and the shuffle snapshot. Whether it is playing or repeating is read from
// the media surface.
type Controller struct {
	media player.Interface
	view  View
	list  *playlist.Playlist

	current int
	// resume is the play intent. It stays set across the pause the media
	// surface enters at the end of a track, so the next one starts too.
	resume bool

	rng *rand.Rand
	log zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = r
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// New creates a Controller over a copy of tracks. Call Init to draw the
// controls and load the first track.
func New(media player.Interface, view View, tracks []playlist.Track, opts ...Option) *Controller {
	c := &Controller{
		media:   media,
		view:    view,
		list:    playlist.New(tracks...),
		current: -1,
		log:     zerolog.Nop(),
	}
	if !c.list.IsEmpty() {
		c.current = 0
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init draws every control from the current state and loads the first
// track. An empty playlist only draws the empty state.
func (c *Controller) Init() error {
	c.RenderPlaylist()
	c.syncTransport()
	c.view.SetProgress(0, FormatTime(0))
	c.view.SetDuration(FormatTime(math.NaN()))
	vol := c.media.Volume()
	c.view.SetVolume(vol, LevelFor(vol))
	c.view.SetShuffle(c.list.Shuffled())
	c.view.SetRepeat(c.media.Loop())
	c.view.SetAutoplay(c.media.Autoplay())

	if c.list.IsEmpty() {
		return nil
	}
	return c.LoadTrack(0)
}

// TogglePlay pauses when playing and plays when paused. A refused start
// leaves the controller paused and shows a notice.
func (c *Controller) TogglePlay() error {
	if c.list.IsEmpty() {
		return ErrEmptyPlaylist
	}
	if c.IsPlaying() {
		c.pause()
		return nil
	}
	return c.play()
}

// Play starts playback if paused.
func (c *Controller) Play() error {
	if c.list.IsEmpty() {
		return ErrEmptyPlaylist
	}
	if c.IsPlaying() {
		return nil
	}
	return c.play()
}

// Pause halts playback if playing.
func (c *Controller) Pause() {
	if c.IsPlaying() || c.resume {
		c.pause()
	}
}

func (c *Controller) play() error {
	if err := c.media.Play(); err != nil {
		c.resume = false
		c.syncTransport()
		c.view.ShowNotice(errmsg.Format(errmsg.OpPlaybackStart, err))
		c.log.Warn().Err(err).Int("index", c.current).Msg("playback rejected")
		return fmt.Errorf("%w: %w", ErrPlaybackRejected, err)
	}
	c.resume = true
	c.syncTransport()
	return nil
}

func (c *Controller) pause() {
	c.media.Pause()
	c.resume = false
	c.syncTransport()
}

func (c *Controller) syncTransport() {
	state := StatePaused
	if c.IsPlaying() {
		state = StatePlaying
	}
	c.view.SetTransport(state)
}

// LoadTrack makes index current and hands its source to the media surface.
// If playback was running it continues with the new track.
func (c *Controller) LoadTrack(index int) error {
	if c.list.IsEmpty() {
		return ErrEmptyPlaylist
	}
	track, ok := c.list.Track(index)
	if !ok {
		return fmt.Errorf("%w: %d (playlist has %d)", ErrIndexOutOfRange, index, c.list.Len())
	}

	wasPlaying := c.resume || c.IsPlaying()
	c.current = index

	c.view.SetNowPlaying(track)
	c.view.SetActiveItem(index)
	c.view.SetProgress(0, FormatTime(0))
	c.view.SetDuration(FormatTime(math.NaN()))

	c.log.Debug().Int("index", index).Str("title", track.Title).Msg("load track")
	if err := c.media.Load(track.Source); err != nil {
		c.resume = false
		c.syncTransport()
		c.view.ShowNotice(errmsg.FormatWith(errmsg.OpLoadTrack, track.Title, err))
		c.log.Warn().Err(err).Str("src", track.Source).Msg("load failed")
		return fmt.Errorf("load %q: %w", track.Title, err)
	}

	if wasPlaying && c.media.Paused() {
		return c.play()
	}
	// Autoplay may have started the new source on its own.
	c.resume = c.IsPlaying()
	c.syncTransport()
	return nil
}

// NextTrack loads the following track, wrapping to the first.
func (c *Controller) NextTrack() error {
	if c.list.IsEmpty() {
		return nil
	}
	return c.LoadTrack(c.list.Wrap(c.current + 1))
}

// PreviousTrack loads the preceding track, wrapping to the last.
func (c *Controller) PreviousTrack() error {
	if c.list.IsEmpty() {
		return nil
	}
	return c.LoadTrack(c.list.Wrap(c.current - 1))
}

// SelectTrack loads the track at index, as picked from the playlist.
func (c *Controller) SelectTrack(index int) error {
	return c.LoadTrack(index)
}

// ToggleShuffle shuffles the playlist, or puts back the order it had before.
// The current index follows the track that was playing, so playback is not
// interrupted.
func (c *Controller) ToggleShuffle() {
	if c.list.Shuffled() {
		c.current = c.list.Restore(c.current)
	} else {
		c.current = c.list.Shuffle(c.rng, c.current)
	}
	c.log.Debug().Bool("shuffled", c.list.Shuffled()).Int("index", c.current).Msg("toggle shuffle")
	c.view.SetShuffle(c.list.Shuffled())
	c.RenderPlaylist()
}

// SetShuffle turns shuffle on or off.
func (c *Controller) SetShuffle(on bool) {
	if on != c.list.Shuffled() {
		c.ToggleShuffle()
	}
}

// ToggleRepeat flips looping of the current track.
func (c *Controller) ToggleRepeat() {
	c.SetRepeat(!c.media.Loop())
}

// SetRepeat sets looping of the current track.
func (c *Controller) SetRepeat(on bool) {
	c.media.SetLoop(on)
	c.view.SetRepeat(c.media.Loop())
}

// SetAutoplay sets whether newly loaded tracks start on their own.
func (c *Controller) SetAutoplay(on bool) {
	c.media.SetAutoplay(on)
	c.view.SetAutoplay(c.media.Autoplay())
}

// ToggleAutoplay flips autoplay.
func (c *Controller) ToggleAutoplay() {
	c.SetAutoplay(!c.media.Autoplay())
}

// HandleEvent dispatches a media event.
func (c *Controller) HandleEvent(e player.Event) {
	switch e.Kind {
	case player.TimeUpdate:
		c.OnTimeUpdate()
	case player.Ended:
		if err := c.OnTrackEnded(); err != nil {
			c.log.Debug().Err(err).Msg("advance after end")
		}
	case player.LoadedMetadata:
		c.OnMetadataLoaded()
	case player.Error:
		c.onMediaError(e.Err)
	}
}

// OnTimeUpdate moves the progress bar and elapsed label. It is skipped
// while the duration is unknown.
func (c *Controller) OnTimeUpdate() {
	d := c.media.Duration()
	if !knownDuration(d) {
		return
	}
	pos := c.media.CurrentTime()
	c.view.SetProgress(clampUnit(pos/d), FormatTime(pos))
}

// OnTrackEnded advances to the next track unless repeating. The play state
// carries over.
func (c *Controller) OnTrackEnded() error {
	if c.list.IsEmpty() {
		return nil
	}
	if c.media.Loop() {
		c.syncTransport()
		return nil
	}
	return c.NextTrack()
}

// OnMetadataLoaded shows the total duration.
func (c *Controller) OnMetadataLoaded() {
	c.view.SetDuration(FormatTime(c.media.Duration()))
	c.OnTimeUpdate()
}

func (c *Controller) onMediaError(err error) {
	c.resume = false
	c.syncTransport()
	track, _ := c.list.Track(c.current)
	c.view.ShowNotice(errmsg.FormatWith(errmsg.OpLoadTrack, track.Title, err))
	c.log.Warn().Err(err).Str("src", track.Source).Msg("media error")
}

// Seek jumps to fraction of the track, clamped to [0, 1]. Nothing happens
// while the duration is unknown.
func (c *Controller) Seek(fraction float64) {
	if math.IsNaN(fraction) {
		return
	}
	d := c.media.Duration()
	if !knownDuration(d) {
		return
	}
	c.media.SetCurrentTime(clampUnit(fraction) * d)
	c.OnTimeUpdate()
}

// SeekBy moves the position by delta seconds.
func (c *Controller) SeekBy(delta float64) {
	d := c.media.Duration()
	if !knownDuration(d) {
		return
	}
	c.Seek((c.media.CurrentTime() + delta) / d)
}

// SetVolume sets the volume to fraction, clamped to [0, 1], and updates the
// volume bar and icon.
func (c *Controller) SetVolume(fraction float64) {
	if math.IsNaN(fraction) {
		return
	}
	v := clampUnit(fraction)
	c.media.SetVolume(v)
	c.view.SetVolume(v, LevelFor(v))
}

// AdjustVolume changes the volume by delta, rounded to whole percent.
func (c *Controller) AdjustVolume(delta float64) {
	v := math.Round((c.media.Volume()+delta)*100) / 100
	c.SetVolume(v)
}

// RenderPlaylist redraws the whole playlist and its count label.
func (c *Controller) RenderPlaylist() {
	c.view.RenderPlaylist(c.list.Tracks(), c.current)
	c.view.SetPlaylistCount(CountLabel(c.list.Len()))
}

// CountLabel renders the playlist size, e.g. "(3 songs)".
func CountLabel(n int) string {
	return "(" + english.Plural(n, "song", "") + ")"
}

// CurrentIndex returns the index of the current track, or -1 when the
// playlist is empty.
func (c *Controller) CurrentIndex() int {
	return c.current
}

// CurrentTrack returns the current track.
func (c *Controller) CurrentTrack() (playlist.Track, bool) {
	return c.list.Track(c.current)
}

// Tracks returns the playlist in active order.
func (c *Controller) Tracks() []playlist.Track {
	return c.list.Tracks()
}

// IsPlaying reports whether the media surface is playing.
func (c *Controller) IsPlaying() bool {
	return !c.media.Paused()
}

// IsShuffled reports whether the active order is shuffled.
func (c *Controller) IsShuffled() bool {
	return c.list.Shuffled()
}

// IsRepeating reports whether the current track loops.
func (c *Controller) IsRepeating() bool {
	return c.media.Loop()
}

// Autoplay reports whether loaded tracks start on their own.
func (c *Controller) Autoplay() bool {
	return c.media.Autoplay()
}

// Volume returns the volume in [0, 1].
func (c *Controller) Volume() float64 {
	return c.media.Volume()
}

// Position returns the playback position in seconds.
func (c *Controller) Position() float64 {
	return c.media.CurrentTime()
}

// Duration returns the track length in seconds, NaN while unknown.
func (c *Controller) Duration() float64 {
	return c.media.Duration()
}

func clampUnit(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
