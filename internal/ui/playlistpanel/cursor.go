package playlistpanel

// cursor tracks the highlighted row and scroll offset. List length and
// viewport height are passed in since they change with the playlist and
// terminal size.
type cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the cursor
}

func (c *cursor) move(delta, n, height int) {
	c.jump(c.pos+delta, n, height)
}

func (c *cursor) jump(pos, n, height int) {
	if n == 0 {
		return
	}
	c.pos = max(0, min(pos, n-1))
	c.ensureVisible(n, height)
}

func (c *cursor) clamp(n int) {
	if n == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = max(0, min(c.pos, n-1))
	c.offset = max(0, min(c.offset, n-1))
}

func (c *cursor) ensureVisible(n, height int) {
	if height <= 0 || n == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = max(0, min(c.offset, max(n-height, 0)))
}
