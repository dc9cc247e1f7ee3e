package playlist

const demoSource = "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav"

// Defaults returns the compiled-in playlist.
func Defaults() []Track {
	return []Track{
		{
			Title:           "Sunset Dreams",
			Artist:          "Lofi Beats",
			Album:           "Chill Vibes",
			Source:          demoSource,
			DisplayDuration: "0:15",
			Cover:           "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300",
		},
		{
			Title:           "Urban Nights",
			Artist:          "City Sounds",
			Album:           "Metropolitan",
			Source:          demoSource,
			DisplayDuration: "0:15",
			Cover:           "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=300",
		},
		{
			Title:           "Ocean Breeze",
			Artist:          "Nature Waves",
			Album:           "Natural Sounds",
			Source:          demoSource,
			DisplayDuration: "0:15",
			Cover:           "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=300",
		},
	}
}
