package player

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, p *Player) Event {
	t.Helper()
	select {
	case e := <-p.Events():
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

// These tests never start playback, so no audio device is opened.

func TestPlayer_LoadReportsMetadata(t *testing.T) {
	path := writeWAV(t, 44100, 44100*2)
	p := New()
	defer p.Close()

	assert.True(t, math.IsNaN(p.Duration()), "Duration before load")
	require.NoError(t, p.Load(path))

	e := waitEvent(t, p)
	require.Equal(t, LoadedMetadata, e.Kind)
	assert.InDelta(t, 2.0, p.Duration(), 0.01)
	assert.True(t, p.Paused())
	assert.Zero(t, p.CurrentTime())
}

func TestPlayer_SeekClamps(t *testing.T) {
	path := writeWAV(t, 44100, 44100)
	p := New()
	defer p.Close()
	require.NoError(t, p.Load(path))
	waitEvent(t, p)

	p.SetCurrentTime(0.5)
	assert.InDelta(t, 0.5, p.CurrentTime(), 0.01)

	p.SetCurrentTime(10)
	assert.Less(t, p.CurrentTime(), 1.0)

	p.SetCurrentTime(-3)
	assert.Zero(t, p.CurrentTime())
}

func TestPlayer_LoadMissingFileEmitsError(t *testing.T) {
	p := New()
	defer p.Close()

	require.NoError(t, p.Load(filepath.Join(t.TempDir(), "missing.wav")))
	e := waitEvent(t, p)
	assert.Equal(t, Error, e.Kind)
	assert.Error(t, e.Err)
	assert.Error(t, p.Play())
}

func TestPlayer_LoadUnsupported(t *testing.T) {
	p := New()
	defer p.Close()

	err := p.Load("/music/a.m4a")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.True(t, errors.Is(p.Load(""), ErrNoSource))
}

func TestPlayer_PlayWithoutSource(t *testing.T) {
	p := New()
	defer p.Close()
	assert.True(t, errors.Is(p.Play(), ErrNoSource))
}

func TestPlayer_Settings(t *testing.T) {
	p := New()
	defer p.Close()

	assert.Equal(t, 1.0, p.Volume())
	p.SetVolume(1.5)
	assert.Equal(t, 1.0, p.Volume())
	p.SetVolume(0.4)
	assert.Equal(t, 0.4, p.Volume())

	p.SetLoop(true)
	assert.True(t, p.Loop())
	p.SetAutoplay(true)
	assert.True(t, p.Autoplay())
}

func TestPlayer_CloseIsIdempotent(t *testing.T) {
	p := New()
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, errors.Is(p.Load("/a.wav"), ErrNoSource))
}

func TestPlayer_CloseClosesEvents(t *testing.T) {
	p := New(WithTickInterval(time.Millisecond))
	require.NoError(t, p.Close())

	select {
	case _, ok := <-p.Events():
		assert.False(t, ok, "events channel should be closed")
	case <-time.After(5 * time.Second):
		t.Fatal("events channel still open after Close")
	}
}

func TestPlayer_FetchReleasesLoadContext(t *testing.T) {
	path := writeWAV(t, 44100, 4410)
	p := New()
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	p.mu.Lock()
	p.src = path
	p.cancelLoad = cancel
	gen := p.gen
	p.mu.Unlock()

	p.fetch(ctx, cancel, gen, path)

	require.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.InDelta(t, 0.1, p.Duration(), 0.01)
}
