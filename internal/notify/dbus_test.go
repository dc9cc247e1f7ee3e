//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/llehouerou/ripple/internal/playlist"
)

var testSender = Sender{Name: "Ripple", DesktopEntry: "ripple"}

func TestNotifyArgs_NowPlaying(t *testing.T) {
	n := NowPlaying(playlist.Track{
		Title:  "Summer Vibes",
		Artist: "Chill Beats",
		Album:  "Sunny Days",
		Cover:  "file:///music/summer/cover.jpg",
	})
	n.ReplacesID = 7

	args := notifyArgs(testSender, n)
	if len(args) != 8 {
		t.Fatalf("len(args) = %d, want 8", len(args))
	}
	if args[0] != "Ripple" {
		t.Errorf("app_name = %v, want Ripple", args[0])
	}
	if args[1] != uint32(7) {
		t.Errorf("replaces_id = %v, want 7", args[1])
	}
	if args[2] != "/music/summer/cover.jpg" {
		t.Errorf("app_icon = %v, want cover path", args[2])
	}
	if args[3] != "Summer Vibes" {
		t.Errorf("summary = %v, want Summer Vibes", args[3])
	}
	if args[4] != "Chill Beats - Sunny Days" {
		t.Errorf("body = %v, want %q", args[4], "Chill Beats - Sunny Days")
	}
	if args[7] != int32(nowPlayingTime) {
		t.Errorf("expire_timeout = %v, want %d", args[7], nowPlayingTime)
	}

	hints, ok := args[6].(map[string]dbus.Variant)
	if !ok {
		t.Fatalf("hints has type %T", args[6])
	}
	if got := hints["desktop-entry"].Value(); got != "ripple" {
		t.Errorf("desktop-entry = %v, want ripple", got)
	}
	if got := hints["urgency"].Value(); got != byte(UrgencyLow) {
		t.Errorf("urgency = %v, want %d", got, UrgencyLow)
	}
	if got := hints["category"].Value(); got != CategoryTrackChange {
		t.Errorf("category = %v, want %s", got, CategoryTrackChange)
	}
}

func TestNotifyArgs_NoDesktopEntry(t *testing.T) {
	args := notifyArgs(Sender{Name: "Ripple"}, NowPlaying(playlist.Track{Title: "Untitled"}))
	hints := args[6].(map[string]dbus.Variant)
	if _, ok := hints["desktop-entry"]; ok {
		t.Error("desktop-entry hint set without a desktop entry")
	}
	if args[2] != defaultIcon {
		t.Errorf("app_icon = %v, want %s", args[2], defaultIcon)
	}
}

func TestAnnouncer_SessionBus(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New(testSender)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	a := NewAnnouncer(n)

	if err := a.Announce(playlist.Track{Title: "Summer Vibes", Artist: "Chill Beats"}); err != nil {
		t.Fatalf("Announce() error: %v", err)
	}
	first := a.last
	if err := a.Announce(playlist.Track{Title: "Night Drive", Artist: "Synthwave"}); err != nil {
		t.Fatalf("second Announce() error: %v", err)
	}
	if first != 0 && a.last != first {
		t.Errorf("track change got id=%d, want replaced id=%d", a.last, first)
	}
	if err := a.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
