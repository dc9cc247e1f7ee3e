package app

import (
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/ui/playerbar"
	"github.com/llehouerou/ripple/internal/ui/playlistpanel"
)

// screen is the controller's view. It holds what the player bar and the
// playlist panel draw, and queues the side effects (notices, track changes)
// that Update turns into commands.
type screen struct {
	bar      playerbar.State
	playlist playlistpanel.Model

	track    playlist.Track
	hasTrack bool

	trackChanged bool
	notices      []string
}

var _ playback.View = (*screen)(nil)

func newScreen() *screen {
	return &screen{playlist: playlistpanel.New()}
}

func (s *screen) SetNowPlaying(track playlist.Track) {
	s.bar.Title = track.Title
	s.bar.Artist = track.Artist
	s.bar.Album = track.Album
	s.track = track
	s.hasTrack = true
	s.trackChanged = true
}

func (s *screen) SetTransport(state playback.State) {
	s.bar.Playing = state == playback.StatePlaying
}

func (s *screen) SetProgress(fraction float64, elapsed string) {
	s.bar.Progress = fraction
	s.bar.Elapsed = elapsed
}

func (s *screen) SetDuration(label string) {
	s.bar.Duration = label
}

func (s *screen) SetVolume(fraction float64, level playback.VolumeLevel) {
	s.bar.Volume = fraction
	s.bar.Level = level
}

func (s *screen) SetShuffle(on bool) {
	s.bar.Shuffle = on
}

func (s *screen) SetRepeat(on bool) {
	s.bar.Repeat = on
}

func (s *screen) SetAutoplay(on bool) {
	s.bar.Autoplay = on
}

func (s *screen) RenderPlaylist(items []playlist.Track, active int) {
	s.playlist.SetItems(items, active)
}

func (s *screen) SetActiveItem(index int) {
	s.playlist.SetActive(index)
}

func (s *screen) SetPlaylistCount(label string) {
	s.playlist.SetCount(label)
}

func (s *screen) ShowNotice(msg string) {
	s.notices = append(s.notices, msg)
}

// takeEffects returns and clears the queued side effects.
func (s *screen) takeEffects() (notices []string, trackChanged bool) {
	notices, trackChanged = s.notices, s.trackChanged
	s.notices = nil
	s.trackChanged = false
	return notices, trackChanged
}
