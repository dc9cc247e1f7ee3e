package playback

import "github.com/llehouerou/ripple/internal/playlist"

// recorder is a View that remembers the last value of every control.
type recorder struct {
	nowPlaying playlist.Track
	transport  State
	fraction   float64
	elapsed    string
	duration   string
	volume     float64
	level      VolumeLevel
	shuffle    bool
	repeat     bool
	autoplay   bool
	items      []playlist.Track
	active     int
	count      string
	notices    []string
	renders    int
}

func (r *recorder) SetNowPlaying(t playlist.Track) { r.nowPlaying = t }
func (r *recorder) SetTransport(s State)           { r.transport = s }

func (r *recorder) SetProgress(fraction float64, elapsed string) {
	r.fraction = fraction
	r.elapsed = elapsed
}

func (r *recorder) SetDuration(label string) { r.duration = label }

func (r *recorder) SetVolume(fraction float64, level VolumeLevel) {
	r.volume = fraction
	r.level = level
}

func (r *recorder) SetShuffle(on bool)  { r.shuffle = on }
func (r *recorder) SetRepeat(on bool)   { r.repeat = on }
func (r *recorder) SetAutoplay(on bool) { r.autoplay = on }

func (r *recorder) RenderPlaylist(items []playlist.Track, active int) {
	r.items = items
	r.active = active
	r.renders++
}

func (r *recorder) SetActiveItem(i int)           { r.active = i }
func (r *recorder) SetPlaylistCount(label string) { r.count = label }
func (r *recorder) ShowNotice(msg string)         { r.notices = append(r.notices, msg) }
