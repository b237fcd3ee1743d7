package graphics

import "image"

// Canvas records or renders drawing commands. The toolkit core paints through
// this interface; rasterization is owned by the embedding application, which
// supplies an implementation (a GPU surface, a software rasterizer, or the
// recording canvas from this package).
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawText draws a pre-measured text layout at the given position.
	DrawText(layout *TextLayout, position Offset)

	// DrawImage draws an image with its top-left corner at the given position.
	DrawImage(img image.Image, position Offset)

	// Size returns the size of the canvas in logical pixels.
	Size() Size
}

// Surface is a Canvas that owns presentation: Present commits everything
// drawn since the previous Present call to the screen.
type Surface interface {
	Canvas
	Present()
}
