// Package source opens track and cover sources, which may be local paths,
// file:// URLs or http(s) URLs. Remote content is buffered in memory so that
// decoders get a seekable reader.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds a single remote fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize caps how much of a remote source is buffered.
	DefaultMaxSize = 256 * 1024 * 1024

	userAgent = "ripple/1.0"
)

// ErrTooLarge is returned when a source exceeds the size cap.
var ErrTooLarge = errors.New("source exceeds size limit")

// Opener opens sources. The zero value is not usable; use NewOpener.
type Opener struct {
	client  *http.Client
	maxSize int64
	log     zerolog.Logger
}

// Option configures an Opener.
type Option func(*Opener)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(o *Opener) {
		o.client = c
	}
}

// WithMaxSize sets the maximum number of bytes buffered for a remote source.
func WithMaxSize(n int64) Option {
	return func(o *Opener) {
		o.maxSize = n
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Opener) {
		o.log = l
	}
}

// NewOpener creates an Opener with default limits.
func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		client:  &http.Client{Timeout: DefaultTimeout},
		maxSize: DefaultMaxSize,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// IsRemote reports whether src is an http(s) URL.
func IsRemote(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Ext returns the lowercased file extension of src, ignoring any URL query
// or fragment.
func Ext(src string) string {
	if u, err := url.Parse(src); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return strings.ToLower(path.Ext(u.Path))
	}
	return strings.ToLower(filepath.Ext(src))
}

// Open returns a seekable reader over src. The caller must close it.
func (o *Opener) Open(ctx context.Context, src string) (io.ReadSeekCloser, error) {
	if src == "" {
		return nil, errors.New("empty source")
	}
	if IsRemote(src) {
		data, err := o.fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		return nopCloser{bytes.NewReader(data)}, nil
	}
	return os.Open(localPath(src))
}

// Read returns the full content of src. Sources larger than the size cap
// fail with ErrTooLarge.
func (o *Opener) Read(ctx context.Context, src string) ([]byte, error) {
	if IsRemote(src) {
		return o.fetch(ctx, src)
	}
	f, err := os.Open(localPath(src))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if fi, err := f.Stat(); err == nil && fi.Size() > o.maxSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, humanize.Bytes(uint64(fi.Size()))) //nolint:gosec // larger than a positive cap
	}
	data, err := io.ReadAll(io.LimitReader(f, o.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > o.maxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (o *Opener) fetch(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http request: unexpected status %s", resp.Status)
	}
	if resp.ContentLength > o.maxSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, humanize.Bytes(uint64(resp.ContentLength))) //nolint:gosec // checked positive above
	}

	// Read one byte past the cap to detect oversize bodies without a length.
	data, err := io.ReadAll(io.LimitReader(resp.Body, o.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > o.maxSize {
		return nil, ErrTooLarge
	}

	o.log.Debug().
		Str("url", src).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Dur("took", time.Since(start)).
		Msg("Fetched source")

	return data, nil
}

func localPath(src string) string {
	if after, ok := strings.CutPrefix(src, "file://"); ok {
		return after
	}
	return src
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
