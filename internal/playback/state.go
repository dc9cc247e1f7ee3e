// internal/playback/state.go
package playback

// State represents the playback state.
type State int

const (
	StatePaused State = iota
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// VolumeLevel is the coarse loudness shown next to the volume bar.
type VolumeLevel int

const (
	VolumeMuted VolumeLevel = iota
	VolumeLow
	VolumeHigh
)

// String returns the level name.
func (l VolumeLevel) String() string {
	switch l {
	case VolumeMuted:
		return "Muted"
	case VolumeLow:
		return "Low"
	case VolumeHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// LevelFor maps a volume in [0, 1] to its level: exactly 0 is muted, below
// one half is low, anything else is high.
func LevelFor(volume float64) VolumeLevel {
	switch {
	case volume <= 0:
		return VolumeMuted
	case volume < 0.5:
		return VolumeLow
	default:
		return VolumeHigh
	}
}
