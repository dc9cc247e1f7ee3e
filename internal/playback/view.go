package playback

import "github.com/llehouerou/ripple/internal/playlist"

// View is the set of controls the Controller keeps in sync. Implementations
// only draw; they never call back into the Controller from these methods.
type View interface {
	SetNowPlaying(track playlist.Track)
	// SetTransport switches the play/pause affordance. StatePlaying shows a
	// pause control and marks the cover art as playing.
	SetTransport(state State)
	SetProgress(fraction float64, elapsed string)
	SetDuration(label string)
	SetVolume(fraction float64, level VolumeLevel)
	SetShuffle(on bool)
	SetRepeat(on bool)
	SetAutoplay(on bool)
	RenderPlaylist(items []playlist.Track, active int)
	SetActiveItem(index int)
	SetPlaylistCount(label string)
	ShowNotice(msg string)
}
