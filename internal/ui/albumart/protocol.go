package albumart

// ImageProtocol abstracts the terminal image display protocol (Kitty or Sixel).
type ImageProtocol interface {
	// Prepare takes a PNG and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(pngData []byte, id uint32) (string, error)

	// Place returns the escape sequence to display the image at (row, col).
	Place(id uint32, row, col, width, height int) string

	// Delete returns the escape sequence to remove the image.
	Delete(id uint32) string

	// TargetPixelSize returns the pixel dimensions to resize to for an image
	// shown in the given number of terminal cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}
