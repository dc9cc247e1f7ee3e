package playerbar

// Control identifies a clickable button in the player bar.
type Control int

const (
	ControlNone Control = iota
	ControlPrev
	ControlPlayPause
	ControlNext
	ControlShuffle
	ControlRepeat
	ControlAutoplay
)

// Region is a horizontal run of cells on one row, relative to the bar's
// top-left corner. A zero Width means the part was not drawn.
type Region struct {
	Row   int
	X     int
	Width int
}

// Contains reports whether the cell (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return r.Width > 0 && y == r.Row && x >= r.X && x < r.X+r.Width
}

// ButtonRegion places a Control.
type ButtonRegion struct {
	Control Control
	Region  Region
}

// Layout records where Render put each clickable part.
type Layout struct {
	Progress Region
	Volume   Region
	Buttons  []ButtonRegion
}

// ProgressAt returns the seek fraction for a click at (x, y).
func (l Layout) ProgressAt(x, y int) (float64, bool) {
	if !l.Progress.Contains(x, y) {
		return 0, false
	}
	return Fraction(x-l.Progress.X, l.Progress.Width)
}

// VolumeAt returns the volume fraction for a click at (x, y).
func (l Layout) VolumeAt(x, y int) (float64, bool) {
	if !l.Volume.Contains(x, y) {
		return 0, false
	}
	return Fraction(x-l.Volume.X, l.Volume.Width)
}

// ButtonAt returns the button under (x, y), or ControlNone.
func (l Layout) ButtonAt(x, y int) Control {
	for _, b := range l.Buttons {
		if b.Region.Contains(x, y) {
			return b.Control
		}
	}
	return ControlNone
}

// Fraction maps a cell offset inside a bar of width cells to [0, 1]. The
// first cell is 0 and the last is 1. ok is false for a bar with no width.
func Fraction(offset, width int) (float64, bool) {
	if width <= 0 {
		return 0, false
	}
	if width == 1 {
		return 0, true
	}
	f := float64(offset) / float64(width-1)
	return max(0, min(1, f)), true
}
