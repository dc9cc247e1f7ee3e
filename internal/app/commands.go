package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/source"
	"github.com/llehouerou/ripple/internal/ui/albumart"
)

const coverTimeout = 20 * time.Second

// WatchMedia returns a command that waits for the next media event. The
// handler re-arms it after every event.
func WatchMedia(events <-chan player.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return MediaClosedMsg{}
		}
		return MediaEventMsg{Event: e}
	}
}

// FetchCoverCmd fetches and scales a cover off the UI loop.
func FetchCoverCmd(opener *source.Opener, cache *albumart.Cache, cover string, width, height int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), coverTimeout)
		defer cancel()
		data, err := albumart.Fetch(ctx, opener, cache, cover, width, height)
		return CoverLoadedMsg{Cover: cover, Data: data, Err: err}
	}
}

// AnnounceCmd sends the now-playing notification off the UI loop.
func AnnounceCmd(a *notify.Announcer, t playlist.Track) tea.Cmd {
	return func() tea.Msg {
		if err := a.Announce(t); err != nil {
			return AnnounceFailedMsg{Err: err}
		}
		return nil
	}
}

func artTransmitDoneCmd(id int64) tea.Cmd {
	return tea.Tick(artTransmitDuration, func(time.Time) tea.Msg {
		return artTransmitDoneMsg{ID: id}
	})
}
