package playback

import "errors"

var (
	// ErrEmptyPlaylist is returned by operations that need a current track.
	ErrEmptyPlaylist = errors.New("playlist is empty")
	// ErrIndexOutOfRange is returned by LoadTrack for an index outside the
	// playlist.
	ErrIndexOutOfRange = errors.New("track index out of range")
	// ErrPlaybackRejected wraps the media surface's refusal to start.
	ErrPlaybackRejected = errors.New("playback rejected")
)
