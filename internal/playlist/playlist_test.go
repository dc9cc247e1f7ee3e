package playlist

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func threeTracks() []Track {
	return []Track{
		{Title: "A", Source: "/a.wav"},
		{Title: "B", Source: "/b.wav"},
		{Title: "C", Source: "/c.wav"},
	}
}

func titles(tracks []Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Title
	}
	return out
}

func TestNew_CopiesTracks(t *testing.T) {
	src := threeTracks()
	p := New(src...)

	src[0].Title = "changed"

	track, ok := p.Track(0)
	if !ok {
		t.Fatal("Track(0) not found")
	}
	if track.Title != "A" {
		t.Errorf("Track(0).Title = %q, want A", track.Title)
	}
}

func TestPlaylist_Track_OutOfBounds(t *testing.T) {
	p := New(threeTracks()...)

	for _, idx := range []int{-1, 3, 100} {
		if _, ok := p.Track(idx); ok {
			t.Errorf("Track(%d) ok = true, want false", idx)
		}
	}
}

func TestPlaylist_Tracks_ReturnsCopy(t *testing.T) {
	p := New(threeTracks()...)

	tracks := p.Tracks()
	tracks[0].Title = "changed"

	if got, _ := p.Track(0); got.Title != "A" {
		t.Errorf("Track(0).Title = %q, want A", got.Title)
	}
}

func TestPlaylist_Wrap(t *testing.T) {
	p := New(threeTracks()...)

	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{2, 2},
		{3, 0},
		{-1, 2},
		{-4, 2},
		{7, 1},
	}
	for _, tt := range tests {
		if got := p.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPlaylist_Wrap_Empty(t *testing.T) {
	p := New()
	if got := p.Wrap(1); got != -1 {
		t.Errorf("Wrap(1) on empty = %d, want -1", got)
	}
}

func TestPlaylist_Shuffle_IsPermutation(t *testing.T) {
	p := New(threeTracks()...)

	p.Shuffle(rand.New(rand.NewPCG(1, 2)), 0)

	if !p.Shuffled() {
		t.Error("Shuffled() = false after Shuffle")
	}
	got := titles(p.Tracks())
	slices.Sort(got)
	if !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("shuffled titles = %v, want a permutation of A B C", got)
	}
}

func TestPlaylist_Shuffle_FollowsCurrentTrack(t *testing.T) {
	for seed := range uint64(20) {
		p := New(threeTracks()...)

		idx := p.Shuffle(rand.New(rand.NewPCG(seed, seed)), 1)

		track, ok := p.Track(idx)
		if !ok || track.Title != "B" {
			t.Fatalf("seed %d: track at followed index %d = %q, want B", seed, idx, track.Title)
		}
	}
}

func TestPlaylist_ShuffleRestore_RoundTrip(t *testing.T) {
	p := New(threeTracks()...)
	before := p.Tracks()

	idx := p.Shuffle(rand.New(rand.NewPCG(7, 7)), 2)
	idx = p.Restore(idx)

	if p.Shuffled() {
		t.Error("Shuffled() = true after Restore")
	}
	if !slices.Equal(p.Tracks(), before) {
		t.Errorf("restored = %v, want %v", titles(p.Tracks()), titles(before))
	}
	if idx != 2 {
		t.Errorf("restored index = %d, want 2", idx)
	}
}

func TestPlaylist_Restore_WithoutSnapshot(t *testing.T) {
	p := New(threeTracks()...)

	idx := p.Restore(1)

	if idx != 1 {
		t.Errorf("Restore(1) = %d, want 1", idx)
	}
	if !slices.Equal(titles(p.Tracks()), []string{"A", "B", "C"}) {
		t.Errorf("order changed: %v", titles(p.Tracks()))
	}
}

func TestPlaylist_Shuffle_Empty(t *testing.T) {
	p := New()

	if idx := p.Shuffle(nil, -1); idx != -1 {
		t.Errorf("Shuffle on empty = %d, want -1", idx)
	}
	if idx := p.Restore(-1); idx != -1 {
		t.Errorf("Restore on empty = %d, want -1", idx)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

// Every ordering of three tracks must be reachable; a comparator-based sort
// shuffle tends to miss or skew some of them.
func TestPlaylist_Shuffle_ReachesAllOrderings(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 42))
	seen := make(map[string]int)

	for range 600 {
		p := New(threeTracks()...)
		p.Shuffle(r, 0)
		key := ""
		for _, title := range titles(p.Tracks()) {
			key += title
		}
		seen[key]++
	}

	if len(seen) != 6 {
		t.Fatalf("saw %d orderings, want 6: %v", len(seen), seen)
	}
	for order, n := range seen {
		if n < 50 {
			t.Errorf("ordering %s seen %d times, expected roughly 100", order, n)
		}
	}
}

func TestDefaults(t *testing.T) {
	tracks := Defaults()

	if len(tracks) != 3 {
		t.Fatalf("len(Defaults()) = %d, want 3", len(tracks))
	}
	for i, tr := range tracks {
		if tr.Title == "" || tr.Source == "" {
			t.Errorf("Defaults()[%d] missing title or source: %+v", i, tr)
		}
	}
}
