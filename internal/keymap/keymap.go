package keymap

// Binding maps keys to an action and documents it.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// Contexts lists binding contexts in help order.
var Contexts = []string{"global", "playback", "playlist"}

// All contains every key binding.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Focus playlist", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek -5s", "playback"},
	{ActionSeekForwardLong, []string{"shift+right", "L"}, "Seek +30s", "playback"},
	{ActionSeekBackLong, []string{"shift+left", "H"}, "Seek -30s", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},
	{ActionToggleRepeat, []string{"r"}, "Toggle repeat", "playback"},
	{ActionToggleAutoplay, []string{"a"}, "Toggle autoplay", "playback"},

	// Playlist
	{ActionMoveDown, []string{"j", "down"}, "Move down", "playlist"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "playlist"},
	{ActionSelect, []string{"enter"}, "Play track", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// DisplayKey returns a key as shown in help text.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
