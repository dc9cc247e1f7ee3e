package playlist

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dhowden/tag"

	"github.com/llehouerou/ripple/internal/player"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindCover looks for album art in the same directory as the track.
// Returns the path to the art file, or empty string if not found.
func FindCover(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FromPath creates a track from a local audio file, reading its tags when
// it has any. The listed duration comes from the decoder; files it cannot
// read get none.
func FromPath(path string) Track {
	t := Track{
		Title:  filepath.Base(path),
		Source: path,
		Cover:  FindCover(path),
	}
	if d, err := player.Probe(path); err == nil {
		t.DisplayDuration = FormatLength(d)
	}

	f, err := os.Open(path)
	if err != nil {
		return t
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Untagged files (plain WAV) keep the file name.
		return t
	}
	if m.Title() != "" {
		t.Title = m.Title()
	}
	t.Artist = m.Artist()
	if t.Artist == "" {
		t.Artist = m.AlbumArtist()
	}
	t.Album = m.Album()
	return t
}

// FormatLength renders d as "m:ss", rounding down to the second.
func FormatLength(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// FromPaths builds a playlist from files and directories. Directories are
// walked recursively; files the player cannot decode are skipped. Tracks
// found in one directory are sorted by path; arguments keep their order.
func FromPaths(paths []string) ([]Track, error) {
	var tracks []Track
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		if !info.IsDir() {
			if player.IsSupported(p) {
				tracks = append(tracks, FromPath(p))
			}
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Skip unreadable entries, keep walking.
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if !d.IsDir() && player.IsSupported(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
		sort.Strings(found)
		for _, path := range found {
			tracks = append(tracks, FromPath(path))
		}
	}
	return tracks, nil
}
