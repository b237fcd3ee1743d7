package uitest

import (
	"image"

	"github.com/lumina-ui/lumina/pkg/graphics"
)

// Op is one recorded canvas operation.
type Op struct {
	// Name is the canvas method: "save", "restore", "translate", "clip",
	// "clear", "rect", "line", "text", "image".
	Name string

	Rect  graphics.Rect
	Paint graphics.Paint
	Color graphics.Color
	Start graphics.Offset
	End   graphics.Offset

	// Position is the draw origin in the coordinate space current at record
	// time, for "text" and "image".
	Position graphics.Offset

	// AbsPosition and AbsRect are Position and Rect mapped through the
	// translation stack into root coordinates.
	AbsPosition graphics.Offset
	AbsRect     graphics.Rect

	Text  string
	Image image.Image
}

// RecordingCanvas captures the paint walk as a flat op list for assertions.
// It tracks the translation stack so ops also carry root-space coordinates.
type RecordingCanvas struct {
	size   graphics.Size
	ops    []Op
	offset graphics.Offset
	stack  []graphics.Offset
}

// NewRecordingCanvas creates a recording canvas of the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations since the last Reset.
func (c *RecordingCanvas) Ops() []Op { return c.ops }

// Reset clears the recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
	c.offset = graphics.Offset{}
	c.stack = nil
}

// Rects returns the recorded "rect" ops.
func (c *RecordingCanvas) Rects() []Op { return c.byName("rect") }

// Texts returns the recorded "text" ops.
func (c *RecordingCanvas) Texts() []Op { return c.byName("text") }

// HasText reports whether the given string was drawn since the last Reset.
func (c *RecordingCanvas) HasText(text string) bool {
	for _, op := range c.byName("text") {
		if op.Text == text {
			return true
		}
	}
	return false
}

// FillsWith reports whether any fill rect used the given color.
func (c *RecordingCanvas) FillsWith(color graphics.Color) bool {
	for _, op := range c.byName("rect") {
		if op.Paint.Style == graphics.PaintStyleFill && op.Paint.Color == color {
			return true
		}
	}
	return false
}

func (c *RecordingCanvas) byName(name string) []Op {
	var out []Op
	for _, op := range c.ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

func (c *RecordingCanvas) Save() {
	c.stack = append(c.stack, c.offset)
	c.ops = append(c.ops, Op{Name: "save"})
}

func (c *RecordingCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.offset = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.ops = append(c.ops, Op{Name: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.offset = c.offset.Add(graphics.Offset{X: dx, Y: dy})
	c.ops = append(c.ops, Op{Name: "translate", Position: graphics.Offset{X: dx, Y: dy}})
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, Op{
		Name:    "clip",
		Rect:    rect,
		AbsRect: rect.Translate(c.offset.X, c.offset.Y),
	})
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, Op{Name: "clear", Color: color})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, Op{
		Name:    "rect",
		Rect:    rect,
		Paint:   paint,
		AbsRect: rect.Translate(c.offset.X, c.offset.Y),
	})
}

func (c *RecordingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ops = append(c.ops, Op{Name: "line", Start: start, End: end, Paint: paint})
}

func (c *RecordingCanvas) DrawText(layout *graphics.TextLayout, position graphics.Offset) {
	c.ops = append(c.ops, Op{
		Name:        "text",
		Text:        layout.Text,
		Position:    position,
		AbsPosition: position.Add(c.offset),
	})
}

func (c *RecordingCanvas) DrawImage(img image.Image, position graphics.Offset) {
	c.ops = append(c.ops, Op{
		Name:        "image",
		Image:       img,
		Position:    position,
		AbsPosition: position.Add(c.offset),
	})
}

func (c *RecordingCanvas) Size() graphics.Size { return c.size }
