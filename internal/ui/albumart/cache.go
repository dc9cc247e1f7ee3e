package albumart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "ripple/albumart"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache stores resized covers as PNG files keyed by source and size.
// A nil Cache is valid and caches nothing.
type Cache struct {
	dir string
}

// NewCache creates the cache directory under baseDir, or under the XDG
// cache home when baseDir is empty. Entries older than 30 days are pruned
// in the background.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}
	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))
	return c, nil
}

func cacheKey(cover string, width, height int) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d", cover, width, height))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(cover string, width, height int) string {
	return filepath.Join(c.dir, cacheKey(cover, width, height)+".png")
}

// Get returns the cached PNG for cover at the given pixel size, or nil.
func (c *Cache) Get(cover string, width, height int) []byte {
	if c == nil {
		return nil
	}
	path := c.path(cover, width, height)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	// Keep frequently shown covers out of the prune window.
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort
	return data
}

// Put stores the PNG for cover at the given pixel size.
func (c *Cache) Put(cover string, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(cover, width, height), data, 0o600)
}

// prune removes entries last touched before cutoff.
func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
