package widgets

import (
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
)

// OverlapContent stacks children on top of each other. Every child is
// offered the full constraints and arranged at the content-box origin; the
// container takes the per-axis maximum of the children, so an empty overlap
// collapses to its padding.
type OverlapContent struct{}

func (o *OverlapContent) Measure(mc *layout.MeasureContext, w *layout.Widget, c layout.Constraints) graphics.Size {
	var size graphics.Size
	for _, child := range w.Children() {
		childSize := mc.MeasureChild(child, c.Loosen())
		if childSize.Width > size.Width {
			size.Width = childSize.Width
		}
		if childSize.Height > size.Height {
			size.Height = childSize.Height
		}
	}
	return size
}

func (o *OverlapContent) Arrange(ac *layout.ArrangeContext, w *layout.Widget, contentBox graphics.Rect) {
	for _, child := range w.Children() {
		size := child.Preferred()
		ac.ArrangeChild(child, graphics.RectFromLTWH(contentBox.Left, contentBox.Top, size.Width, size.Height))
	}
}

func (o *OverlapContent) Paint(*layout.PaintContext, *layout.Widget, graphics.Rect) {}

func (o *OverlapContent) HandleEvent(*layout.Widget, events.Event) bool { return false }
