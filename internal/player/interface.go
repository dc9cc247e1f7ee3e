// internal/player/interface.go
package player

import "errors"

var (
	// ErrNoSource is returned by Play when nothing has been loaded.
	ErrNoSource = errors.New("no source loaded")
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Interface is the media surface the playback controller drives. Times are
// in seconds; Duration is NaN until the source's metadata is known.
//
// Implementations deliver events on the channel returned by Events. Sends
// never block: when the buffer is full the event is dropped.
type Interface interface {
	Load(src string) error
	Play() error
	Pause()
	Paused() bool

	CurrentTime() float64
	SetCurrentTime(seconds float64)
	Duration() float64

	Volume() float64
	SetVolume(v float64)
	Loop() bool
	SetLoop(loop bool)
	Autoplay() bool
	SetAutoplay(autoplay bool)

	Events() <-chan Event
	Close() error
}

// Verify implementations at compile time.
var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
