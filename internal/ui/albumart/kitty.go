package albumart

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// chunkSize is the largest payload the protocol accepts per escape.
	chunkSize = 4096
)

// KittyProtocol implements ImageProtocol with the Kitty graphics protocol.
// Images are transmitted once and placed by ID on every frame.
type KittyProtocol struct{}

// Prepare transmits the PNG without displaying it (a=t).
func (KittyProtocol) Prepare(pngData []byte, id uint32) (string, error) {
	if len(pngData) == 0 {
		return "", errEmptyImage
	}
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			// f=100: PNG, q=2: no responses
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String(), nil
}

// Place displays a transmitted image at the 1-based (row, col). The fixed
// placement ID p=1 makes a new placement replace the previous one.
func (KittyProtocol) Place(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Delete removes the image and all its placements.
func (KittyProtocol) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// TargetPixelSize assumes 8x16 pixel cells.
func (KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return max(widthCells*8, 64), max(heightCells*16, 64)
}
