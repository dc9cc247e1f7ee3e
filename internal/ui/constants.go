// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// MinBarWidth is the minimum width of a usable progress or volume bar.
	MinBarWidth = 5

	// ArtCols is the width of the cover art box in cells. Its height
	// matches the player bar.
	ArtCols = 20

	// MinArtWidth is the terminal width below which cover art is hidden.
	MinArtWidth = 60
)
