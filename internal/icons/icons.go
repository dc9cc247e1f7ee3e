package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Audio      string
	Play       string
	Pause      string
	Next       string
	Prev       string
	Shuffle    string
	Repeat     string
	Autoplay   string
	VolumeMute string
	VolumeLow  string
	VolumeHigh string
}

var (
	nerdIcons = Icons{
		Audio:      "\uf001 ", // nf-fa-music
		Play:       "\uf04b",  // nf-fa-play
		Pause:      "\uf04c",  // nf-fa-pause
		Next:       "\uf051",  // nf-fa-step_forward
		Prev:       "\uf048",  // nf-fa-step_backward
		Shuffle:    "󰒟",       // nf-md-shuffle
		Repeat:     "󰑖",       // nf-md-repeat
		Autoplay:   "󰐊",       // nf-md-play
		VolumeMute: "\uf6a9",  // nf-fa-volume_xmark
		VolumeLow:  "\uf027",  // nf-fa-volume_down
		VolumeHigh: "\uf028",  // nf-fa-volume_up
	}

	unicodeIcons = Icons{
		Audio:      "🎵 ",
		Play:       "▶",
		Pause:      "⏸",
		Next:       "⏭",
		Prev:       "⏮",
		Shuffle:    "🔀",
		Repeat:     "🔁",
		Autoplay:   "⏯",
		VolumeMute: "🔇",
		VolumeLow:  "🔉",
		VolumeHigh: "🔊",
	}

	noneIcons = Icons{
		Audio:      "",
		Play:       ">",
		Pause:      "||",
		Next:       ">|",
		Prev:       "|<",
		Shuffle:    "[S]",
		Repeat:     "[R]",
		Autoplay:   "[A]",
		VolumeMute: "vol:x",
		VolumeLow:  "vol:-",
		VolumeHigh: "vol:+",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatAudio formats a track title with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// Play returns the play icon.
func Play() string {
	return current.Play
}

// Pause returns the pause icon.
func Pause() string {
	return current.Pause
}

// Next returns the next-track icon.
func Next() string {
	return current.Next
}

// Prev returns the previous-track icon.
func Prev() string {
	return current.Prev
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// Repeat returns the repeat icon.
func Repeat() string {
	return current.Repeat
}

// Autoplay returns the autoplay icon.
func Autoplay() string {
	return current.Autoplay
}

// VolumeMute returns the muted speaker icon.
func VolumeMute() string {
	return current.VolumeMute
}

// VolumeLow returns the low volume icon.
func VolumeLow() string {
	return current.VolumeLow
}

// VolumeHigh returns the high volume icon.
func VolumeHigh() string {
	return current.VolumeHigh
}
