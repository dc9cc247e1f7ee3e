// Package layout provides pure functions for screen dimension calculations.
package layout

import "github.com/llehouerou/ripple/internal/ui"

// Opts contains the parameters needed to lay out the screen.
type Opts struct {
	Width           int
	Height          int
	PlayerBarHeight int
	StatusHeight    int
	ArtWidth        int // 0 without a cover box
}

// Screen is where each region sits, in terminal cells from the top-left
// corner. From top to bottom: playlist, player bar (with the cover box to
// its left), status line.
type Screen struct {
	PlaylistHeight int
	BarX           int
	BarY           int
	BarWidth       int
	BarHeight      int
	ShowArt        bool
}

// Calculate lays out a window. The cover box is dropped below
// ui.MinArtWidth columns; the playlist takes whatever height is left.
func Calculate(o Opts) Screen {
	showArt := o.ArtWidth > 0 && o.Width >= ui.MinArtWidth
	artWidth := 0
	if showArt {
		artWidth = o.ArtWidth
	}
	playlistHeight := PlaylistHeight(o.Height, o.PlayerBarHeight, o.StatusHeight)
	return Screen{
		PlaylistHeight: playlistHeight,
		BarX:           artWidth,
		BarY:           playlistHeight,
		BarWidth:       max(o.Width-artWidth, 0),
		BarHeight:      o.PlayerBarHeight,
		ShowArt:        showArt,
	}
}

// PlaylistHeight returns the height left for the playlist panel.
func PlaylistHeight(windowHeight, playerBarHeight, statusHeight int) int {
	return max(windowHeight-playerBarHeight-statusHeight, 0)
}

// InPlaylist reports whether row y falls on the playlist panel.
func (s Screen) InPlaylist(y int) bool {
	return y >= 0 && y < s.PlaylistHeight
}

// InBar reports whether row y falls on the player bar row.
func (s Screen) InBar(y int) bool {
	return y >= s.BarY && y < s.BarY+s.BarHeight
}

// ArtRow returns the 1-based row of the cover box's top edge.
func (s Screen) ArtRow() int {
	return s.BarY + 1
}
