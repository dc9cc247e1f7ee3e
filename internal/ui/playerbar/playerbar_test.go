package playerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/playback"
	"github.com/llehouerou/ripple/internal/ui/testutil"
)

func testState() State {
	return State{
		Title:    "Sunset Dreams",
		Artist:   "Lofi Beats",
		Album:    "Chill Vibes",
		Progress: 0.5,
		Elapsed:  "0:07",
		Duration: "0:15",
		Volume:   1,
		Level:    playback.VolumeHigh,
	}
}

func TestRender_ShowsTrackAndTimes(t *testing.T) {
	icons.Init("none")
	out, _ := Render(testState(), 60)

	for _, want := range []string{"Sunset Dreams", "Lofi Beats · Chill Vibes", "0:07", "0:15", "100%"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("output missing %q:\n%s", want, testutil.StripANSI(out))
		}
	}
}

func TestRender_Size(t *testing.T) {
	for _, width := range []int{30, 60, 120} {
		out, _ := Render(testState(), width)
		lines := testutil.SplitLines(out)
		if len(lines) != Height() {
			t.Errorf("width %d: %d lines, want %d", width, len(lines), Height())
		}
		for i, line := range lines {
			if w := testutil.MeasureWidth(line); w != width {
				t.Errorf("width %d: line %d is %d wide", width, i, w)
			}
		}
	}
}

func TestRender_PlayPauseIcon(t *testing.T) {
	icons.Init("none")
	s := testState()

	out, _ := Render(s, 60)
	if line := testutil.FindLine(out, icons.Prev()); !strings.Contains(line, icons.Play()+" ") {
		t.Errorf("paused bar should show play affordance: %q", line)
	}

	s.Playing = true
	out, _ = Render(s, 60)
	if line := testutil.FindLine(out, icons.Prev()); !strings.Contains(line, icons.Pause()) {
		t.Errorf("playing bar should show pause affordance: %q", line)
	}
}

func TestRender_VolumeIconFollowsLevel(t *testing.T) {
	icons.Init("none")
	tests := []struct {
		level playback.VolumeLevel
		icon  string
	}{
		{playback.VolumeMuted, icons.VolumeMute()},
		{playback.VolumeLow, icons.VolumeLow()},
		{playback.VolumeHigh, icons.VolumeHigh()},
	}
	for _, tt := range tests {
		s := testState()
		s.Level = tt.level
		out, _ := Render(s, 60)
		if !testutil.ContainsLine(out, tt.icon) {
			t.Errorf("level %v: missing icon %q", tt.level, tt.icon)
		}
	}
}

func TestRender_ProgressFill(t *testing.T) {
	out, layout := Render(testState(), 60)
	row := testutil.SplitLines(testutil.StripANSI(out))[layout.Progress.Row]
	filled := strings.Count(row, progressFilled)
	empty := strings.Count(row, progressEmpty)

	if filled+empty != layout.Progress.Width {
		t.Fatalf("bar cells = %d, want %d", filled+empty, layout.Progress.Width)
	}
	if diff := filled - layout.Progress.Width/2; diff < -1 || diff > 1 {
		t.Errorf("filled = %d of %d, want about half", filled, layout.Progress.Width)
	}
}

func TestLayout_RegionsMatchRenderedCells(t *testing.T) {
	icons.Init("none")
	out, layout := Render(testState(), 60)
	lines := testutil.SplitLines(testutil.StripANSI(out))

	// The cell at the start of the progress region is the first bar cell.
	row := []rune(lines[layout.Progress.Row])
	if got := string(row[layout.Progress.X]); got != progressFilled {
		t.Errorf("progress start cell = %q, want %q", got, progressFilled)
	}
	if got := string(row[layout.Progress.X-1]); got != " " {
		t.Errorf("cell before progress = %q, want space", got)
	}

	vrow := []rune(lines[layout.Volume.Row])
	if got := string(vrow[layout.Volume.X]); got != volumeFilled {
		t.Errorf("volume start cell = %q, want %q", got, volumeFilled)
	}

	for _, b := range layout.Buttons {
		trow := lines[b.Region.Row]
		if b.Region.X+b.Region.Width > len(trow) {
			t.Errorf("button %v outside row", b.Control)
		}
	}
}

func TestLayout_Hits(t *testing.T) {
	icons.Init("none")
	_, layout := Render(testState(), 60)
	p := layout.Progress

	if f, ok := layout.ProgressAt(p.X, p.Row); !ok || f != 0 {
		t.Errorf("ProgressAt(start) = %v, %v; want 0, true", f, ok)
	}
	if f, ok := layout.ProgressAt(p.X+p.Width-1, p.Row); !ok || f != 1 {
		t.Errorf("ProgressAt(end) = %v, %v; want 1, true", f, ok)
	}
	if _, ok := layout.ProgressAt(p.X+p.Width, p.Row); ok {
		t.Error("ProgressAt past the bar should miss")
	}
	if _, ok := layout.ProgressAt(p.X, p.Row+1); ok {
		t.Error("ProgressAt on another row should miss")
	}

	v := layout.Volume
	if f, ok := layout.VolumeAt(v.X+v.Width-1, v.Row); !ok || f != 1 {
		t.Errorf("VolumeAt(end) = %v, %v; want 1, true", f, ok)
	}

	want := []Control{ControlPrev, ControlPlayPause, ControlNext, ControlShuffle, ControlRepeat, ControlAutoplay}
	if len(layout.Buttons) != len(want) {
		t.Fatalf("buttons = %d, want %d", len(layout.Buttons), len(want))
	}
	for i, b := range layout.Buttons {
		if b.Control != want[i] {
			t.Errorf("button %d = %v, want %v", i, b.Control, want[i])
		}
		if got := layout.ButtonAt(b.Region.X, b.Region.Row); got != want[i] {
			t.Errorf("ButtonAt(button %d) = %v", i, got)
		}
	}
	if got := layout.ButtonAt(0, 0); got != ControlNone {
		t.Errorf("ButtonAt(0,0) = %v, want none", got)
	}
}

func TestLayout_NarrowBarHasNoRegion(t *testing.T) {
	_, layout := Render(testState(), 14)
	if layout.Progress.Width != 0 {
		t.Errorf("progress width = %d, want 0", layout.Progress.Width)
	}
	if _, ok := layout.ProgressAt(layout.Progress.X, layout.Progress.Row); ok {
		t.Error("click on a hidden bar should miss")
	}
}

func TestFraction(t *testing.T) {
	tests := []struct {
		offset, width int
		want          float64
		ok            bool
	}{
		{0, 0, 0, false},
		{3, -1, 0, false},
		{0, 1, 0, true},
		{0, 11, 0, true},
		{5, 11, 0.5, true},
		{10, 11, 1, true},
		{-2, 11, 0, true},
		{20, 11, 1, true},
	}
	for _, tt := range tests {
		got, ok := Fraction(tt.offset, tt.width)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Fraction(%d, %d) = %v, %v; want %v, %v", tt.offset, tt.width, got, ok, tt.want, tt.ok)
		}
	}
}
