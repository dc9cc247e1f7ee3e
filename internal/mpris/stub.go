//go:build !linux

package mpris

import (
	"time"

	"github.com/rs/zerolog"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Sender, _ zerolog.Logger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Update is a no-op on non-Linux platforms.
func (a *Adapter) Update(State) {}

// Seeked is a no-op on non-Linux platforms.
func (a *Adapter) Seeked(time.Duration) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
