package player

import "github.com/gopxl/beep/v2"

// looper restarts its streamer from the beginning when it drains and loop is
// set. Fields are read on the speaker goroutine; change them under
// speaker.Lock.
type looper struct {
	s    beep.StreamSeeker
	loop bool
}

func (l *looper) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		m, more := l.s.Stream(samples[n:])
		n += m
		if more && m > 0 {
			continue
		}
		if !l.loop || l.s.Len() == 0 {
			return n, n > 0
		}
		if err := l.s.Seek(0); err != nil {
			return n, n > 0
		}
	}
	return n, true
}

func (l *looper) Err() error {
	return l.s.Err()
}
