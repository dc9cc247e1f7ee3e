//go:build linux

package mpris

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/ripple/internal/playlist"
)

type recordingSender struct {
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.msgs = append(r.msgs, msg)
}

func newTestPlayer() (*playerAdapter, *recordingSender) {
	rec := &recordingSender{}
	return &playerAdapter{send: rec}, rec
}

var testTrack = playlist.Track{
	Title:  "Summer Vibes",
	Artist: "Chill Beats",
	Album:  "Sunny Days",
	Source: "https://example.com/summer.mp3",
	Cover:  "https://example.com/summer.jpg",
}

func TestPlayerAdapter_ForwardsCommands(t *testing.T) {
	p, rec := newTestPlayer()

	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())
	require.NoError(t, p.Seek(types.Microseconds(5_000_000)))
	require.NoError(t, p.SetVolume(0.25))
	require.NoError(t, p.SetLoopStatus(types.LoopStatusTrack))
	require.NoError(t, p.SetLoopStatus(types.LoopStatusNone))
	require.NoError(t, p.SetShuffle(true))

	want := []tea.Msg{
		Msg{Action: ActionPlay},
		Msg{Action: ActionPause},
		Msg{Action: ActionPlayPause},
		Msg{Action: ActionStop},
		Msg{Action: ActionNext},
		Msg{Action: ActionPrevious},
		Msg{Action: ActionSeek, Offset: 5 * time.Second},
		Msg{Action: ActionSetVolume, Volume: 0.25},
		Msg{Action: ActionSetRepeat, Enabled: true},
		Msg{Action: ActionSetRepeat, Enabled: false},
		Msg{Action: ActionSetShuffle, Enabled: true},
	}
	assert.Equal(t, want, rec.msgs)
}

func TestPlayerAdapter_SetPositionChecksTrack(t *testing.T) {
	p, rec := newTestPlayer()
	p.swap(State{Track: testTrack, HasTrack: true, Count: 3})

	require.NoError(t, p.SetPosition("/org/mpris/MediaPlayer2/Track/stale", types.Microseconds(1)))
	assert.Empty(t, rec.msgs)

	require.NoError(t, p.SetPosition(formatTrackID(testTrack.Source), types.Microseconds(3_000_000)))
	assert.Equal(t, []tea.Msg{Msg{Action: ActionSetPosition, Offset: 3 * time.Second}}, rec.msgs)
}

func TestPlayerAdapter_PlaybackStatus(t *testing.T) {
	p, _ := newTestPlayer()

	status, err := p.PlaybackStatus()
	require.NoError(t, err)
	assert.Equal(t, types.PlaybackStatusStopped, status)

	p.swap(State{Track: testTrack, HasTrack: true})
	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPaused, status)

	p.swap(State{Track: testTrack, HasTrack: true, Playing: true})
	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, status)
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	p, _ := newTestPlayer()

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)

	p.swap(State{Track: testTrack, HasTrack: true, Duration: 15 * time.Second})
	meta, err = p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Summer Vibes", meta.Title)
	assert.Equal(t, []string{"Chill Beats"}, meta.Artist)
	assert.Equal(t, "Sunny Days", meta.Album)
	assert.Equal(t, types.Microseconds(15_000_000), meta.Length)
	assert.Equal(t, "https://example.com/summer.jpg", meta.ArtUrl)
	assert.Equal(t, formatTrackID(testTrack.Source), string(meta.TrackId))
}

func TestPlayerAdapter_Properties(t *testing.T) {
	p, _ := newTestPlayer()
	p.swap(State{
		Track:    testTrack,
		HasTrack: true,
		Count:    3,
		Position: 2 * time.Second,
		Duration: 15 * time.Second,
		Volume:   0.5,
		Repeat:   true,
		Shuffle:  true,
	})

	vol, _ := p.Volume()
	assert.InDelta(t, 0.5, vol, 1e-9)
	pos, _ := p.Position()
	assert.Equal(t, int64(2_000_000), pos)
	loop, _ := p.LoopStatus()
	assert.Equal(t, types.LoopStatusTrack, loop)
	shuffle, _ := p.Shuffle()
	assert.True(t, shuffle)
	canNext, _ := p.CanGoNext()
	assert.True(t, canNext)
	canSeek, _ := p.CanSeek()
	assert.True(t, canSeek)

	p.swap(State{})
	canNext, _ = p.CanGoNext()
	assert.False(t, canNext)
	canSeek, _ = p.CanSeek()
	assert.False(t, canSeek)
	loop, _ = p.LoopStatus()
	assert.Equal(t, types.LoopStatusNone, loop)
}

func TestFormatTrackID(t *testing.T) {
	a := formatTrackID("a.mp3")
	assert.Equal(t, a, formatTrackID("a.mp3"))
	assert.NotEqual(t, a, formatTrackID("b.mp3"))
	assert.Contains(t, a, "/org/mpris/MediaPlayer2/Track/")
}
