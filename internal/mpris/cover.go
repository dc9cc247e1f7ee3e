package mpris

import (
	"strings"

	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/source"
)

// ArtURL returns the cover URL announced for t: its own cover, or for a
// local track without one, an image next to the audio file.
func ArtURL(t playlist.Track) string {
	switch {
	case t.Cover != "" && source.IsRemote(t.Cover):
		return t.Cover
	case t.Cover != "":
		return "file://" + strings.TrimPrefix(t.Cover, "file://")
	case t.Source != "" && !source.IsRemote(t.Source):
		if path := playlist.FindCover(strings.TrimPrefix(t.Source, "file://")); path != "" {
			return "file://" + path
		}
	}
	return ""
}
