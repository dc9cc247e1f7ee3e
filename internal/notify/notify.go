// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"strings"
	"sync"

	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/source"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	defaultIcon    = "audio-x-generic"
	nowPlayingTime = 4000 // ms

	// CategoryTrackChange marks now-playing notifications so servers can
	// group or suppress them.
	CategoryTrackChange = "x-ripple.track-change"
)

// Sender identifies the application raising notifications.
type Sender struct {
	Name         string // shown by the server, e.g. "Ripple"
	DesktopEntry string // basename of the .desktop file, without suffix
}

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Category   string  // optional category hint
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPlaying builds the track-change notification. A local cover file is
// used as the icon; remote covers fall back to a generic audio icon.
func NowPlaying(t playlist.Track) Notification {
	var body []string
	if t.Artist != "" {
		body = append(body, t.Artist)
	}
	if t.Album != "" {
		body = append(body, t.Album)
	}

	icon := defaultIcon
	if t.Cover != "" && !source.IsRemote(t.Cover) {
		icon = strings.TrimPrefix(t.Cover, "file://")
	}

	return Notification{
		Title:   t.Title,
		Body:    strings.Join(body, " - "),
		Icon:    icon,
		Timeout:  nowPlayingTime,
		Urgency:  UrgencyLow,
		Category: CategoryTrackChange,
	}
}

// Announcer shows one now-playing notification at a time, replacing the
// previous one on every track change. It is safe for concurrent use.
type Announcer struct {
	n Notifier

	mu   sync.Mutex
	last uint32
}

// NewAnnouncer creates an Announcer sending through n.
func NewAnnouncer(n Notifier) *Announcer {
	return &Announcer{n: n}
}

// Announce shows t, replacing the last notification.
func (a *Announcer) Announce(t playlist.Track) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	notif := NowPlaying(t)
	notif.ReplacesID = a.last
	id, err := a.n.Notify(notif)
	if err != nil {
		return err
	}
	a.last = id
	return nil
}

// Close takes down the last notification, if one is still up.
func (a *Announcer) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.last == 0 {
		return nil
	}
	id := a.last
	a.last = 0
	return a.n.Close(id)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (nopNotifier) Close(uint32) error { return nil }
