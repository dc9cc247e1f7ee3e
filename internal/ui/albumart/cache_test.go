package albumart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_PutGet(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if got := c.Get("cover.jpg", 100, 100); got != nil {
		t.Errorf("Get() before Put = %v, want nil", got)
	}
	if err := c.Put("cover.jpg", 100, 100, []byte("png")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if got := c.Get("cover.jpg", 100, 100); !bytes.Equal(got, []byte("png")) {
		t.Errorf("Get() = %q, want %q", got, "png")
	}
	if got := c.Get("cover.jpg", 200, 200); got != nil {
		t.Error("different size should miss")
	}
}

func TestCache_Nil(t *testing.T) {
	var c *Cache
	if err := c.Put("x", 1, 1, []byte("png")); err != nil {
		t.Errorf("nil Put() error = %v", err)
	}
	if got := c.Get("x", 1, 1); got != nil {
		t.Errorf("nil Get() = %v, want nil", got)
	}
}

func TestCache_Prune(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if err := c.Put("old", 1, 1, []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := c.Put("new", 1, 1, []byte("b")); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-2 * cacheMaxAge)
	if err := os.Chtimes(c.path("old", 1, 1), old, old); err != nil {
		t.Fatal(err)
	}

	c.prune(time.Now().Add(-cacheMaxAge))

	if _, err := os.Stat(c.path("old", 1, 1)); !os.IsNotExist(err) {
		t.Error("stale entry should be removed")
	}
	if _, err := os.Stat(filepath.Join(c.dir, cacheKey("new", 1, 1)+".png")); err != nil {
		t.Errorf("fresh entry should remain: %v", err)
	}
}

func TestCacheKey_Distinct(t *testing.T) {
	if cacheKey("a", 1, 2) == cacheKey("a", 2, 1) {
		t.Error("keys for different sizes should differ")
	}
}
