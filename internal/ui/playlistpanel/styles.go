package playlistpanel

const (
	activeSymbol = "\u25B6" // ▶
	emptyText    = "No tracks"
	headerText   = "Playlist"
)
