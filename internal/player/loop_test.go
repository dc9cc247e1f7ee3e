package player

import (
	"errors"
	"testing"
)

// sliceStreamer plays back a fixed sample slice.
type sliceStreamer struct {
	samples [][2]float64
	pos     int
}

func newSliceStreamer(n int) *sliceStreamer {
	s := &sliceStreamer{samples: make([][2]float64, n)}
	for i := range s.samples {
		s.samples[i] = [2]float64{float64(i), float64(i)}
	}
	return s
}

func (s *sliceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(samples, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error    { return nil }
func (s *sliceStreamer) Len() int      { return len(s.samples) }
func (s *sliceStreamer) Position() int { return s.pos }

func (s *sliceStreamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return errors.New("seek out of range")
	}
	s.pos = p
	return nil
}

func TestLooper_NoLoopDrains(t *testing.T) {
	l := &looper{s: newSliceStreamer(3)}
	buf := make([][2]float64, 5)

	n, ok := l.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Stream() = (%d, %v), want (3, true)", n, ok)
	}
	n, ok = l.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Stream() after end = (%d, %v), want (0, false)", n, ok)
	}
}

func TestLooper_LoopRestarts(t *testing.T) {
	l := &looper{s: newSliceStreamer(3), loop: true}
	buf := make([][2]float64, 7)

	n, ok := l.Stream(buf)
	if n != 7 || !ok {
		t.Fatalf("Stream() = (%d, %v), want (7, true)", n, ok)
	}
	want := []float64{0, 1, 2, 0, 1, 2, 0}
	for i, w := range want {
		if buf[i][0] != w {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i][0], w)
		}
	}
}

func TestLooper_DisableMidStream(t *testing.T) {
	s := newSliceStreamer(4)
	l := &looper{s: s, loop: true}
	buf := make([][2]float64, 3)

	l.Stream(buf)
	l.loop = false
	n, _ := l.Stream(buf)
	if n != 1 {
		t.Errorf("Stream() = %d samples, want 1 (rest of source)", n)
	}
	if n, ok := l.Stream(buf); n != 0 || ok {
		t.Errorf("Stream() after end = (%d, %v), want (0, false)", n, ok)
	}
}

func TestLooper_EmptySourceDoesNotSpin(t *testing.T) {
	l := &looper{s: newSliceStreamer(0), loop: true}
	n, ok := l.Stream(make([][2]float64, 4))
	if n != 0 || ok {
		t.Errorf("Stream() = (%d, %v), want (0, false)", n, ok)
	}
}
