package player

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/ripple/internal/source"
)

const (
	extWAV  = ".wav"
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
)

// IsSupported reports whether src has an extension the player can decode.
func IsSupported(src string) bool {
	switch source.Ext(src) {
	case extWAV, extMP3, extFLAC, extOGG:
		return true
	}
	return false
}

// decode picks a decoder from the source extension. On error r is left for
// the caller to close.
func decode(src string, r io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := source.Ext(src); ext {
	case extWAV:
		return wav.Decode(r)
	case extMP3:
		return mp3.Decode(r)
	case extFLAC:
		return flac.Decode(r)
	case extOGG:
		return vorbis.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Probe decodes the header of a local file and returns its length.
func Probe(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	streamer, format, err := decode(path, f)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}
