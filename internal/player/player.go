package player

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"

	"github.com/llehouerou/ripple/internal/source"
)

const (
	// DefaultTickInterval is how often TimeUpdate fires while playing.
	DefaultTickInterval = 250 * time.Millisecond

	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
	loadTimeout     = time.Minute
)

var (
	speakerMu    sync.Mutex
	speakerReady bool
)

// initSpeaker initializes the shared output device once. Every source is
// resampled to sampleRate, so the device never needs reopening.
func initSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerReady {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speakerReady = true
	return nil
}

// Player is the beep-backed media surface.
//
// Load returns as soon as the source is accepted; fetching and decoding run
// in the background and finish with a LoadedMetadata or Error event. Play
// called before that records the intent and starts once decoding is done.
type Player struct {
	mu sync.Mutex

	opener *source.Opener
	log    zerolog.Logger
	tick   time.Duration

	src        string
	cancelLoad context.CancelFunc
	streamer   beep.StreamSeekCloser
	format     beep.Format
	loop       *looper
	ctrl       *beep.Ctrl
	volume     *effects.Volume
	queued     bool // chain handed to the speaker
	ended      bool
	paused     bool

	level    float64
	looping  bool
	autoplay bool

	// gen increments on every Load so callbacks from an older source are
	// ignored.
	gen      uint64
	events   chan Event
	done     chan struct{}
	tickDone chan struct{}
	closed   bool
}

// Option configures a Player.
type Option func(*Player)

// WithOpener sets the opener used to fetch sources.
func WithOpener(o *source.Opener) Option {
	return func(p *Player) {
		p.opener = o
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Player) {
		p.log = l
	}
}

// WithTickInterval sets the TimeUpdate period.
func WithTickInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.tick = d
		}
	}
}

// New creates a paused Player with nothing loaded.
func New(opts ...Option) *Player {
	p := &Player{
		log:    zerolog.Nop(),
		tick:   DefaultTickInterval,
		paused: true,
		level:  1,
		events:   make(chan Event, eventBufferSize),
		done:     make(chan struct{}),
		tickDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.opener == nil {
		p.opener = source.NewOpener(source.WithLogger(p.log))
	}
	go p.tickLoop()
	return p
}

// Load replaces the current source. Playback stops; if autoplay is set the
// new source starts as soon as it is decoded.
func (p *Player) Load(src string) error {
	if src == "" {
		return ErrNoSource
	}
	if !IsSupported(src) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, source.Ext(src))
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrNoSource
	}
	p.unloadLocked()
	p.gen++
	gen := p.gen
	p.src = src
	p.paused = !p.autoplay
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	p.cancelLoad = cancel
	drain(p.events)
	p.mu.Unlock()

	go p.fetch(ctx, cancel, gen, src)
	return nil
}

// fetch opens and decodes src. The decoded stream no longer depends on ctx,
// so the load timer is released as soon as fetch returns.
func (p *Player) fetch(ctx context.Context, cancel context.CancelFunc, gen uint64, src string) {
	defer cancel()
	start := time.Now()
	streamer, format, err := p.open(ctx, src)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || p.closed {
		if streamer != nil {
			_ = streamer.Close()
		}
		return
	}
	p.cancelLoad = nil
	if err != nil {
		p.log.Warn().Err(err).Str("src", src).Msg("load failed")
		p.paused = true
		emit(p.events, Event{Kind: Error, Err: err})
		return
	}

	p.streamer = streamer
	p.format = format
	p.log.Debug().
		Str("src", src).
		Dur("duration", format.SampleRate.D(streamer.Len())).
		Dur("took", time.Since(start)).
		Msg("source loaded")
	emit(p.events, Event{Kind: LoadedMetadata})

	if !p.paused {
		if err := p.startLocked(); err != nil {
			emit(p.events, Event{Kind: Error, Err: err})
		}
	}
}

func (p *Player) open(ctx context.Context, src string) (beep.StreamSeekCloser, beep.Format, error) {
	r, err := p.opener.Open(ctx, src)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open: %w", err)
	}
	streamer, format, err := decode(src, r)
	if err != nil {
		_ = r.Close()
		return nil, beep.Format{}, fmt.Errorf("decode: %w", err)
	}
	return streamer, format, nil
}

// Play starts or resumes playback. After the source ended it restarts from
// the beginning.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.src == "" || p.closed {
		return ErrNoSource
	}
	if p.streamer == nil {
		if p.cancelLoad == nil {
			// The last load failed; there is nothing to start.
			return fmt.Errorf("%w: %s", ErrNoSource, p.src)
		}
		p.paused = false
		return nil
	}
	return p.startLocked()
}

func (p *Player) startLocked() error {
	if err := initSpeaker(); err != nil {
		p.paused = true
		return err
	}
	if !p.queued {
		if p.ended {
			speaker.Lock()
			err := p.streamer.Seek(0)
			speaker.Unlock()
			if err != nil {
				p.paused = true
				return fmt.Errorf("rewind: %w", err)
			}
			p.ended = false
		}
		p.buildChainLocked()
		gen := p.gen
		speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
			// Runs under the speaker lock; hand off before touching p.mu.
			go p.finished(gen)
		})))
		p.queued = true
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.paused = false
	return nil
}

// buildChainLocked wraps the decoded streamer as
// looper -> resampler -> ctrl -> volume.
func (p *Player) buildChainLocked() {
	p.loop = &looper{s: p.streamer, loop: p.looping}
	var s beep.Streamer = p.loop
	if p.format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, p.format.SampleRate, sampleRate, s)
	}
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	vol, silent := levelToVolume(p.level)
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: vol, Silent: silent}
}

func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen || p.closed || !p.queued {
		return
	}
	p.queued = false
	p.ended = true
	p.paused = true
	emit(p.events, Event{Kind: Ended})
}

// Pause halts playback, keeping the position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
	}
}

// Paused reports whether playback is halted.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// CurrentTime returns the playback position in seconds.
func (p *Player) CurrentTime() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos).Seconds()
}

// SetCurrentTime seeks to seconds, clamped to the source length.
func (p *Player) SetCurrentTime(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil || math.IsNaN(seconds) {
		return
	}
	n := p.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	n = max(0, min(n, p.streamer.Len()-1))

	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		p.log.Warn().Err(err).Float64("seconds", seconds).Msg("seek failed")
		return
	}
	// A seek after the end means the next Play resumes here, not at 0.
	p.ended = false
}

// Duration returns the source length in seconds, or NaN until loaded.
func (p *Player) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return math.NaN()
	}
	return p.format.SampleRate.D(p.streamer.Len()).Seconds()
}

// Volume returns the level in [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// SetVolume sets the level, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = clampLevel(v)
	if p.volume == nil {
		return
	}
	vol, silent := levelToVolume(p.level)
	speaker.Lock()
	p.volume.Volume = vol
	p.volume.Silent = silent
	speaker.Unlock()
}

// Loop reports whether the source restarts when it ends.
func (p *Player) Loop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.looping
}

// SetLoop toggles native looping. It applies to the playing source
// immediately.
func (p *Player) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.looping = loop
	if p.loop != nil {
		speaker.Lock()
		p.loop.loop = loop
		speaker.Unlock()
	}
}

// Autoplay reports whether Load starts playback on its own.
func (p *Player) Autoplay() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.autoplay
}

// SetAutoplay sets whether Load starts playback on its own.
func (p *Player) SetAutoplay(autoplay bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.autoplay = autoplay
}

// Events returns the media event channel.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Close stops playback and releases the source. The event channel is
// closed once the tick loop has stopped. The player is unusable afterwards.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.unloadLocked()
	p.src = ""
	p.paused = true
	close(p.done)
	p.mu.Unlock()

	// Every other sender checks closed under mu.
	<-p.tickDone
	close(p.events)
	return nil
}

func (p *Player) unloadLocked() {
	if p.cancelLoad != nil {
		p.cancelLoad()
		p.cancelLoad = nil
	}
	if p.queued {
		speaker.Clear()
		p.queued = false
	}
	if p.streamer != nil {
		if err := p.streamer.Close(); err != nil {
			p.log.Debug().Err(err).Str("src", p.src).Msg("close source")
		}
	}
	p.streamer = nil
	p.loop = nil
	p.ctrl = nil
	p.volume = nil
	p.ended = false
	p.format = beep.Format{}
}

func (p *Player) tickLoop() {
	defer close(p.tickDone)
	t := time.NewTicker(p.tick)
	defer t.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-t.C:
			p.mu.Lock()
			playing := !p.paused && p.queued
			p.mu.Unlock()
			if playing {
				emit(p.events, Event{Kind: TimeUpdate})
			}
		}
	}
}
