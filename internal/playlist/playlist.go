package playlist

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// Track describes a single playable item. Tracks are values and are never
// mutated once the playlist is built.
type Track struct {
	Title           string
	Artist          string
	Album           string
	Source          string // file path or http(s) URL handed to the player
	DisplayDuration string // duration as shown in the list, e.g. "0:15"
	Cover           string // cover image path or URL
}

// Playlist holds the active track order and, while shuffled, the order it
// had right before shuffling.
type Playlist struct {
	tracks   []Track
	original []Track
	// order[i] is the position tracks[i] held in original. Only set while shuffled.
	order    []int
	shuffled bool
}

// New creates a playlist holding a copy of tracks.
func New(tracks ...Track) *Playlist {
	return &Playlist{
		tracks: append([]Track(nil), tracks...),
	}
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.tracks) == 0
}

// Tracks returns a copy of the tracks in active order.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at index. ok is false if index is out of bounds.
func (p *Playlist) Track(index int) (track Track, ok bool) {
	if index < 0 || index >= len(p.tracks) {
		return Track{}, false
	}
	return p.tracks[index], true
}

// Shuffled returns true while the active order is a shuffled permutation.
func (p *Playlist) Shuffled() bool {
	return p.shuffled
}

// Wrap maps any integer onto a valid index, wrapping in both directions.
// Returns -1 for an empty playlist.
func (p *Playlist) Wrap(index int) int {
	n := len(p.tracks)
	if n == 0 {
		return -1
	}
	return ((index % n) + n) % n
}

// Shuffle snapshots the current order and replaces it with a uniform random
// permutation (Fisher-Yates). follow is the index of the current track; the
// returned index is where that same track ended up. A nil r uses the global
// source.
func (p *Playlist) Shuffle(r *rand.Rand, follow int) int {
	p.original = p.Tracks()
	p.order = lo.Range(len(p.tracks))

	swap := func(i, j int) { p.order[i], p.order[j] = p.order[j], p.order[i] }
	if r != nil {
		r.Shuffle(len(p.order), swap)
	} else {
		rand.Shuffle(len(p.order), swap)
	}

	for i, from := range p.order {
		p.tracks[i] = p.original[from]
	}
	p.shuffled = true

	if follow < 0 || follow >= len(p.tracks) {
		return follow
	}
	return lo.IndexOf(p.order, follow)
}

// Restore puts back the order captured by the last Shuffle. follow is the
// index of the current track in the shuffled order; the returned index is
// its position in the restored order. Without a snapshot the order is left
// alone and follow is returned unchanged.
func (p *Playlist) Restore(follow int) int {
	p.shuffled = false
	if len(p.original) == 0 {
		p.order = nil
		return follow
	}

	next := follow
	if follow >= 0 && follow < len(p.order) {
		next = p.order[follow]
	}

	p.tracks = p.original
	p.original = nil
	p.order = nil
	return next
}
