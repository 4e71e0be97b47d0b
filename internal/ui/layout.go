package ui

import (
	"image"

	"mad-sand/internal/core"
	geom "mad-sand/pkg/core"
)

// heatClip returns the screen area the room heat map may cover. Rooms are
// rounded up, so the room grid can overhang the world on the right and
// bottom edges.
func heatClip(size core.Size, cols, rows int, roomSize geom.Point, scale int) image.Rectangle {
	w := min(cols*roomSize.X, size.W)
	h := min(rows*roomSize.Y, size.H)
	return image.Rect(0, 0, max(0, w)*scale, max(0, h)*scale)
}
