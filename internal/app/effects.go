package app

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/mpris"
)

const maxNotices = 3

// applyEffects turns what the controller queued on the screen into
// commands and publishes the new state to the remote.
func (m *Model) applyEffects() tea.Cmd {
	notices, trackChanged := m.screen.takeEffects()

	var cmds []tea.Cmd
	for _, text := range notices {
		cmds = append(cmds, m.addNotice(text))
	}
	if trackChanged {
		if m.announcer != nil {
			cmds = append(cmds, AnnounceCmd(m.announcer, m.screen.track))
		}
		cmds = append(cmds, m.requestCover(m.screen.track.Cover))
	}
	m.syncRemote()
	return tea.Batch(cmds...)
}

func (m *Model) addNotice(text string) tea.Cmd {
	m.nextNoticeID++
	id := m.nextNoticeID
	m.notices = append(m.notices, notice{ID: id, Text: text})
	if len(m.notices) > maxNotices {
		m.notices = m.notices[len(m.notices)-maxNotices:]
	}
	return NoticeClearCmd(id)
}

func (m *Model) clearNotice(id int64) {
	for i, n := range m.notices {
		if n.ID == id {
			m.notices = append(m.notices[:i:i], m.notices[i+1:]...)
			return
		}
	}
}

// requestCover starts fetching cover unless it is already displayed.
func (m *Model) requestCover(cover string) tea.Cmd {
	if m.art == nil || !m.art.Enabled() {
		return nil
	}
	m.artWant = cover
	if cover == "" {
		return m.queueTransmit(m.art.Clear())
	}
	if cover == m.art.Cover() && m.art.HasImage() {
		return nil
	}
	w, h := m.art.PixelSize()
	return FetchCoverCmd(m.opener, m.artCache, cover, w, h)
}

func (m *Model) handleCoverLoaded(msg CoverLoadedMsg) tea.Cmd {
	// A fetch for a track that is no longer current.
	if m.art == nil || msg.Cover != m.artWant {
		return nil
	}
	if msg.Err != nil {
		m.log.Debug().Err(msg.Err).Str("cover", msg.Cover).Msg(errmsg.Format(errmsg.OpCoverLoad, msg.Err))
		return m.queueTransmit(m.art.Clear())
	}
	seq, err := m.art.Show(msg.Cover, msg.Data)
	if err != nil {
		m.log.Debug().Err(err).Str("cover", msg.Cover).Msg("show cover")
	}
	return m.queueTransmit(seq)
}

// queueTransmit adds seq to the image upload sent with the next frames.
func (m *Model) queueTransmit(seq string) tea.Cmd {
	if seq == "" {
		return nil
	}
	m.artTransmitID++
	m.artTransmit += seq
	return artTransmitDoneCmd(m.artTransmitID)
}

func (m *Model) handleAnnounceFailed(err error) tea.Cmd {
	m.log.Warn().Err(err).Msg("desktop notification failed")
	// One notice is enough; stop trying for the rest of the session.
	m.announcer = nil
	return m.addNotice(errmsg.Format(errmsg.OpNotify, err))
}

func (m *Model) syncRemote() {
	if m.remote == nil {
		return
	}
	m.remote.Update(m.remoteState())
}

func (m Model) remoteState() mpris.State {
	track, ok := m.Controller.CurrentTrack()
	return mpris.State{
		Track:    track,
		HasTrack: ok,
		Index:    m.Controller.CurrentIndex(),
		Count:    m.screen.playlist.Len(),
		Playing:  m.Controller.IsPlaying(),
		Position: seconds(m.Controller.Position()),
		Duration: seconds(m.Controller.Duration()),
		Volume:   m.Controller.Volume(),
		Repeat:   m.Controller.IsRepeating(),
		Shuffle:  m.Controller.IsShuffled(),
	}
}

func seconds(s float64) time.Duration {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
