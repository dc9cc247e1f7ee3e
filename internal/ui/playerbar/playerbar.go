// Package playerbar renders the now-playing block: track info, transport
// buttons, progress bar and volume bar. Render also returns where each
// clickable part landed so mouse events can be mapped back to controls.
package playerbar

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/render"
	"github.com/llehouerou/ripple/internal/ui/styles"
)

const (
	contentRows = 6
	padding     = 1
	buttonGap   = "  "
	toggleGap   = "   "

	progressFilled = "━"
	progressEmpty  = "─"
	volumeFilled   = "▓"
	volumeEmpty    = "░"
)

// Rows of the content area, top to bottom.
const (
	rowTitle = iota
	rowInfo
	_ // blank
	rowTransport
	rowProgress
	rowVolume
)

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Artist   string
	Album    string
	Playing  bool
	Progress float64 // [0, 1]
	Elapsed  string
	Duration string
	Volume   float64 // [0, 1]
	Level    playback.VolumeLevel
	Shuffle  bool
	Repeat   bool
	Autoplay bool
}

// Height returns the total height of the player bar including its border.
func Height() int {
	return contentRows + ui.BorderHeight
}

// Render returns the player bar for the given width and the positions of
// its clickable parts relative to the bar's top-left corner.
func Render(s State, width int) (string, Layout) {
	inner := max(width-ui.BorderWidth-2*padding, 0)
	originX := 1 + padding // border + padding
	originY := 1           // border

	st := styles.T().S()
	lines := make([]string, contentRows)
	var layout Layout

	title := s.Title
	if title == "" {
		title = "Nothing loaded"
	}
	lines[rowTitle] = st.Title.Render(render.TruncateAndPad(title, inner))

	var info []string
	if s.Artist != "" {
		info = append(info, s.Artist)
	}
	if s.Album != "" {
		info = append(info, s.Album)
	}
	lines[rowInfo] = st.Muted.Render(render.TruncateAndPad(strings.Join(info, " · "), inner))

	lines[rowTransport] = renderTransport(s, inner, originX, originY+rowTransport, &layout)
	lines[rowProgress] = renderProgress(s, inner, originX, originY+rowProgress, &layout)
	lines[rowVolume] = renderVolume(s, inner, originX, originY+rowVolume, &layout)

	for i, line := range lines {
		if line == "" {
			lines[i] = render.EmptyLine(inner)
		}
	}

	box := styles.T().Panel(false).
		Padding(0, padding).
		Width(inner + 2*padding).
		Render(strings.Join(lines, "\n"))
	return box, layout
}

type button struct {
	control Control
	label   string
	active  bool
}

// renderTransport lays out prev/play/next on the left and the mode toggles
// after them, recording each button's cells.
func renderTransport(s State, width, x, y int, layout *Layout) string {
	st := styles.T().S()

	playIcon := icons.Play()
	if s.Playing {
		playIcon = icons.Pause()
	}
	buttons := []button{
		{ControlPrev, icons.Prev(), true},
		{ControlPlayPause, playIcon, true},
		{ControlNext, icons.Next(), true},
		{ControlShuffle, icons.Shuffle(), s.Shuffle},
		{ControlRepeat, icons.Repeat(), s.Repeat},
		{ControlAutoplay, icons.Autoplay(), s.Autoplay},
	}

	var b strings.Builder
	used := 0
	for i, btn := range buttons {
		gap := ""
		switch {
		case i == 0:
		case btn.control == ControlShuffle:
			gap = toggleGap
		default:
			gap = buttonGap
		}
		w := lipgloss.Width(btn.label)
		if used+len(gap)+w > width {
			break
		}
		b.WriteString(gap)
		used += len(gap)

		style := st.Base
		switch {
		case btn.control == ControlPlayPause && s.Playing:
			style = st.Playing
		case !btn.active:
			style = st.Subtle
		case btn.control >= ControlShuffle:
			style = st.Active
		}
		b.WriteString(style.Render(btn.label))
		layout.Buttons = append(layout.Buttons, ButtonRegion{
			Control: btn.control,
			Region:  Region{Row: y, X: x + used, Width: w},
		})
		used += w
	}
	return b.String() + strings.Repeat(" ", max(width-used, 0))
}

// renderProgress draws "elapsed ━━━━──── duration".
func renderProgress(s State, width, x, y int, layout *Layout) string {
	st := styles.T().S()
	elapsed := s.Elapsed
	if elapsed == "" {
		elapsed = playback.FormatTime(0)
	}
	total := s.Duration
	if total == "" {
		total = playback.FormatTime(math.NaN())
	}

	barWidth := width - lipgloss.Width(elapsed) - lipgloss.Width(total) - 2
	if barWidth < ui.MinBarWidth {
		return render.TruncateAndPad(elapsed+" / "+total, width)
	}

	filled := fillCells(s.Progress, barWidth)
	bar := styles.GradientRun(progressFilled, filled, styles.T().Primary, styles.T().Secondary) +
		st.Subtle.Render(strings.Repeat(progressEmpty, barWidth-filled))

	barX := x + lipgloss.Width(elapsed) + 1
	layout.Progress = Region{Row: y, X: barX, Width: barWidth}

	return st.Muted.Render(elapsed) + " " + bar + " " + st.Muted.Render(total)
}

// renderVolume draws "icon ▓▓▓▓░░░░ 100%".
func renderVolume(s State, width, x, y int, layout *Layout) string {
	st := styles.T().S()
	icon := volumeIcon(s.Level)
	pct := fmt.Sprintf("%3d%%", int(math.Round(s.Volume*100)))

	barWidth := min(width-lipgloss.Width(icon)-lipgloss.Width(pct)-2, width/2)
	if barWidth < ui.MinBarWidth {
		return render.TruncateAndPad(icon+" "+pct, width)
	}

	filled := fillCells(s.Volume, barWidth)
	bar := st.Active.Render(strings.Repeat(volumeFilled, filled)) +
		st.Subtle.Render(strings.Repeat(volumeEmpty, barWidth-filled))

	barX := x + lipgloss.Width(icon) + 1
	layout.Volume = Region{Row: y, X: barX, Width: barWidth}

	line := icon + " " + bar + " " + st.Muted.Render(pct)
	return line + strings.Repeat(" ", max(width-lipgloss.Width(line), 0))
}

func volumeIcon(level playback.VolumeLevel) string {
	switch level {
	case playback.VolumeMuted:
		return icons.VolumeMute()
	case playback.VolumeLow:
		return icons.VolumeLow()
	default:
		return icons.VolumeHigh()
	}
}

// fillCells converts a fraction into a number of filled cells out of width.
func fillCells(fraction float64, width int) int {
	if math.IsNaN(fraction) || width <= 0 {
		return 0
	}
	f := math.Max(0, math.Min(1, fraction))
	return int(math.Round(f * float64(width)))
}
