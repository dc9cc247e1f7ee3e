package mpris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/ripple/internal/playlist"
)

func TestArtURL(t *testing.T) {
	dir := t.TempDir()
	coverPath := filepath.Join(dir, "folder.png")
	if err := os.WriteFile(coverPath, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		track playlist.Track
		want  string
	}{
		{"remote cover", playlist.Track{Cover: "https://example.com/a.jpg"}, "https://example.com/a.jpg"},
		{"local cover", playlist.Track{Cover: "/music/a.jpg"}, "file:///music/a.jpg"},
		{"file url cover", playlist.Track{Cover: "file:///music/a.jpg"}, "file:///music/a.jpg"},
		{"cover next to local track", playlist.Track{Source: filepath.Join(dir, "song.mp3")}, "file://" + coverPath},
		{"remote track without cover", playlist.Track{Source: "https://example.com/a.mp3"}, ""},
		{"nothing", playlist.Track{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArtURL(tt.track); got != tt.want {
				t.Errorf("ArtURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
