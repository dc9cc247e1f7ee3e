//go:build unix

package stderr

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartStop_LogsCapturedLines(t *testing.T) {
	var out syncBuffer
	if err := Start(zerolog.New(&out)); err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}

	_, _ = os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n")
	Stop()

	got := out.String()
	if !strings.Contains(got, "ALSA lib pcm.c: underrun") {
		t.Errorf("log = %q, want captured line", got)
	}
	if !strings.Contains(got, `"component":"stderr"`) {
		t.Errorf("log = %q, want component field", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("blank lines should be skipped, log = %q", got)
	}
}

func TestStart_Idempotent(t *testing.T) {
	if err := Start(zerolog.Nop()); err != nil {
		t.Skipf("stderr capture unavailable: %v", err)
	}
	defer Stop()
	if err := Start(zerolog.Nop()); err != nil {
		t.Errorf("second Start() error = %v", err)
	}
}

func TestStop_WithoutStart(t *testing.T) {
	Stop()
}
