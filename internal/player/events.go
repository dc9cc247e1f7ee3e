package player

const eventBufferSize = 16

// EventKind identifies a media event.
type EventKind int

const (
	// TimeUpdate fires periodically while playing.
	TimeUpdate EventKind = iota
	// Ended fires when a source plays to its end. It does not fire while
	// looping; the loop restarts the source instead.
	Ended
	// LoadedMetadata fires once the duration of a new source is known.
	LoadedMetadata
	// Error fires when a source fails to load or start after Load returned.
	Error
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case TimeUpdate:
		return "timeupdate"
	case Ended:
		return "ended"
	case LoadedMetadata:
		return "loadedmetadata"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is delivered on the Events channel.
type Event struct {
	Kind EventKind
	Err  error // set for Error events
}

// emit sends an event without blocking.
func emit(ch chan Event, e Event) {
	select {
	case ch <- e:
	default:
		// Drop if buffer full
	}
}

// drain discards any pending events.
func drain(ch chan Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
