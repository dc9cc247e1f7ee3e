// internal/player/mock.go
package player

import "math"

// Mock is a test double for Player. Loads complete synchronously and emit
// LoadedMetadata straight away.
type Mock struct {
	src       string
	paused    bool
	ended     bool
	position  float64
	duration  float64
	trackLen  float64
	level     float64
	loop      bool
	autoplay  bool
	playErr   error
	loadErr   error
	loads     []string
	playCalls int
	seeks     []float64
	events    chan Event
	closed    bool
}

// NewMock creates a paused mock with nothing loaded. Loaded sources report
// a duration of 15 seconds unless SetTrackLength says otherwise.
func NewMock() *Mock {
	return &Mock{
		paused:   true,
		duration: math.NaN(),
		trackLen: 15,
		level:    1,
		events:   make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Load(src string) error {
	m.loads = append(m.loads, src)
	if src == "" {
		return ErrNoSource
	}
	if m.loadErr != nil {
		return m.loadErr
	}
	m.src = src
	m.position = 0
	m.ended = false
	m.duration = m.trackLen
	m.paused = !m.autoplay
	m.send(Event{Kind: LoadedMetadata})
	return nil
}

func (m *Mock) Play() error {
	m.playCalls++
	if m.src == "" {
		return ErrNoSource
	}
	if m.playErr != nil {
		m.paused = true
		return m.playErr
	}
	if m.ended {
		m.position = 0
		m.ended = false
	}
	m.paused = false
	return nil
}

func (m *Mock) Pause() { m.paused = true }

func (m *Mock) Paused() bool { return m.paused }

func (m *Mock) CurrentTime() float64 { return m.position }

func (m *Mock) SetCurrentTime(seconds float64) {
	m.seeks = append(m.seeks, seconds)
	if math.IsNaN(seconds) {
		return
	}
	m.position = seconds
	m.ended = false
}

func (m *Mock) Duration() float64 { return m.duration }

func (m *Mock) Volume() float64 { return m.level }

func (m *Mock) SetVolume(v float64) { m.level = clampLevel(v) }

func (m *Mock) Loop() bool { return m.loop }

func (m *Mock) SetLoop(loop bool) { m.loop = loop }

func (m *Mock) Autoplay() bool { return m.autoplay }

func (m *Mock) SetAutoplay(autoplay bool) { m.autoplay = autoplay }

func (m *Mock) Events() <-chan Event { return m.events }

// Close closes the event channel, like Player.Close.
func (m *Mock) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.paused = true
	close(m.events)
	return nil
}

func (m *Mock) send(e Event) {
	if !m.closed {
		emit(m.events, e)
	}
}

// Test helpers

// SetPlayError makes subsequent Play calls fail with err.
func (m *Mock) SetPlayError(err error) { m.playErr = err }

// SetLoadError makes subsequent Load calls fail with err.
func (m *Mock) SetLoadError(err error) { m.loadErr = err }

// SetTrackLength sets the duration reported after the next Load.
func (m *Mock) SetTrackLength(seconds float64) { m.trackLen = seconds }

// SetDuration overrides the duration of the loaded source.
func (m *Mock) SetDuration(seconds float64) { m.duration = seconds }

// Source returns the loaded source.
func (m *Mock) Source() string { return m.src }

// Loads returns every source passed to Load, in order.
func (m *Mock) Loads() []string { return m.loads }

// PlayCalls returns how many times Play was called.
func (m *Mock) PlayCalls() int { return m.playCalls }

// Seeks returns every value passed to SetCurrentTime.
func (m *Mock) Seeks() []float64 { return m.seeks }

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

// SimulateTime moves the position and emits TimeUpdate.
func (m *Mock) SimulateTime(seconds float64) {
	m.position = seconds
	m.send(Event{Kind: TimeUpdate})
}

// SimulateEnded plays the source to its end. While looping the source
// restarts and no event fires.
func (m *Mock) SimulateEnded() {
	if m.loop {
		m.position = 0
		return
	}
	if !math.IsNaN(m.duration) {
		m.position = m.duration
	}
	m.paused = true
	m.ended = true
	m.send(Event{Kind: Ended})
}

// SimulateError emits an Error event and halts playback.
func (m *Mock) SimulateError(err error) {
	m.paused = true
	m.send(Event{Kind: Error, Err: err})
}
