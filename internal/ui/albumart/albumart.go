// Package albumart shows the current track's cover in the terminal using
// the Kitty or Sixel graphics protocol.
package albumart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG covers
	"image/png"
	"strings"
	"sync/atomic"

	"github.com/nfnt/resize"

	"github.com/llehouerou/ripple/internal/source"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

const placeholder = "\u266A"

var errEmptyImage = errors.New("empty image")

var nextImageID atomic.Uint32

// Fetch reads the cover at src, scales it to fit within the given pixel
// size and returns it as PNG. Results are cached; cache may be nil. Fetch
// does no terminal I/O and is safe to call from any goroutine.
func Fetch(ctx context.Context, opener *source.Opener, cache *Cache, src string, width, height int) ([]byte, error) {
	if src == "" {
		return nil, errEmptyImage
	}
	if data := cache.Get(src, width, height); data != nil {
		return data, nil
	}

	raw, err := opener.Read(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("read cover: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode cover: %w", err)
	}

	resized := resize.Thumbnail(uint(max(width, 1)), uint(max(height, 1)), img, resize.Lanczos3) //nolint:gosec // small positive sizes

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("encode cover: %w", err)
	}
	data := buf.Bytes()
	_ = cache.Put(src, width, height, data) //nolint:errcheck // cache is best-effort
	return data, nil
}

// Renderer tracks which cover is in the terminal. It is used from the UI
// event loop only.
type Renderer struct {
	protocol ImageProtocol
	cover    string
	id       uint32
	width    int
	height   int
}

// New creates a renderer drawing width x height cells. A nil protocol
// disables images; View then only draws the placeholder box.
func New(protocol ImageProtocol, width, height int) *Renderer {
	return &Renderer{protocol: protocol, width: width, height: height}
}

// Enabled reports whether the terminal can show images.
func (r *Renderer) Enabled() bool {
	return r.protocol != nil
}

// Size returns the box size in cells, border included.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// PixelSize returns the pixel size covers should be fetched at.
func (r *Renderer) PixelSize() (width, height int) {
	if r.protocol == nil {
		return 0, 0
	}
	return r.protocol.TargetPixelSize(r.innerWidth(), r.innerHeight())
}

// Cover returns the source of the displayed cover.
func (r *Renderer) Cover() string {
	return r.cover
}

// HasImage reports whether a cover is displayed.
func (r *Renderer) HasImage() bool {
	return r.id != 0
}

// Show replaces the displayed cover and returns the escape sequence that
// must reach the terminal once before the next placement.
func (r *Renderer) Show(cover string, pngData []byte) (string, error) {
	if r.protocol == nil {
		return "", nil
	}
	cmd := r.Clear()
	id := nextImageID.Add(1)
	transmit, err := r.protocol.Prepare(pngData, id)
	if err != nil {
		return cmd, err
	}
	r.cover = cover
	r.id = id
	return cmd + transmit, nil
}

// Clear removes the displayed cover and returns the delete sequence.
func (r *Renderer) Clear() string {
	var cmd string
	if r.protocol != nil && r.id != 0 {
		cmd = r.protocol.Delete(r.id)
	}
	r.cover = ""
	r.id = 0
	return cmd
}

// Placement returns the sequence drawing the cover with the box's top-left
// corner at the 1-based (row, col). Empty when nothing is displayed.
func (r *Renderer) Placement(row, col int) string {
	if r.protocol == nil || r.id == 0 {
		return ""
	}
	return r.protocol.Place(r.id, row+1, col+1, r.innerWidth(), r.innerHeight())
}

// View draws the cover box. The border is highlighted while playing. The
// inside is blank when a cover is displayed, since the image is drawn over
// it, and holds a note glyph otherwise.
func (r *Renderer) View(playing bool) string {
	w, h := r.innerWidth(), r.innerHeight()
	lines := make([]string, h)
	for i := range lines {
		lines[i] = render.EmptyLine(w)
	}
	if !r.HasImage() {
		lines[h/2] = styles.T().S().Subtle.Render(render.Center(placeholder, w))
	}
	return styles.T().Panel(playing).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) innerWidth() int {
	return max(r.width-2, 1)
}

func (r *Renderer) innerHeight() int {
	return max(r.height-2, 1)
}
