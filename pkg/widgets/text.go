package widgets

import (
	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
)

// TextContent renders a block of wrapped text using the widget's resolved
// text style.
type TextContent struct {
	text string

	// last successful layout, reused by Paint.
	layout *graphics.TextLayout
}

// NewText creates text content.
func NewText(text string) *TextContent {
	return &TextContent{text: text}
}

// Text returns the current text.
func (t *TextContent) Text() string { return t.text }

// SetText replaces the text and invalidates the widget's layout. An equal
// write is a no-op.
func (t *TextContent) SetText(w *layout.Widget, text string) {
	if t.text == text {
		return
	}
	t.text = text
	w.MarkLayoutDirty()
}

func (t *TextContent) Measure(mc *layout.MeasureContext, w *layout.Widget, c layout.Constraints) graphics.Size {
	var maxWidth float64
	if c.HasBoundedWidth() {
		maxWidth = c.MaxWidth
	}
	tl, err := graphics.LayoutTextWithConstraints(t.text, w.Resolved().TextStyle(), mc.Text, maxWidth)
	if err != nil {
		errors.Report(errors.New("widgets.TextContent.Measure", errors.KindLayout, err))
		return graphics.Size{}
	}
	t.layout = tl
	return tl.Size
}

func (t *TextContent) Arrange(*layout.ArrangeContext, *layout.Widget, graphics.Rect) {}

func (t *TextContent) Paint(pc *layout.PaintContext, w *layout.Widget, contentBox graphics.Rect) {
	if t.layout == nil {
		return
	}
	pc.Canvas.DrawText(t.layout, contentBox.Origin())
}

func (t *TextContent) HandleEvent(*layout.Widget, events.Event) bool { return false }
