package playback

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as M:SS. Minutes are not capped, so an hour
// shows as 60:00. NaN, infinities and negative values render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int64(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// knownDuration reports whether d is usable for progress math.
func knownDuration(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d > 0
}
