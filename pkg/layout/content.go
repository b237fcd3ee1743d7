package layout

import (
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/style"
)

// Content is the closed behavior set of a widget. Implementations receive
// the owning widget explicitly; they hold configuration, not tree state.
//
// Measure must not mutate widget geometry and must be deterministic for
// identical inputs. Arrange assigns child frames inside the content box.
// Paint draws in the widget's local coordinate space; the content box is
// the padding-deflated local bounds. HandleEvent returns true to consume
// the event and stop bubbling.
type Content interface {
	Measure(mc *MeasureContext, w *Widget, c Constraints) graphics.Size
	Arrange(ac *ArrangeContext, w *Widget, contentBox graphics.Rect)
	Paint(pc *PaintContext, w *Widget, contentBox graphics.Rect)
	HandleEvent(w *Widget, e events.Event) bool
}

// MeasureContext carries the capabilities contents need during the measure
// pass and the child-measurement entry point that maintains the cache.
type MeasureContext struct {
	Text  graphics.Measurer
	Theme *style.ThemeData
}

// MeasureChild measures a child, reusing its cached size when the child is
// layout-clean and the constraints are unchanged. Padding from the child's
// resolved style is deflated from the constraints its content sees and
// inflated back into the returned size.
func (mc *MeasureContext) MeasureChild(child *Widget, c Constraints) graphics.Size {
	if child.measureValid && !child.layoutDirty && !child.childLayoutDirty &&
		child.lastConstraints == c {
		return child.preferred
	}

	padding := child.resolved.Padding
	inner := c.Deflate(padding)
	var content graphics.Size
	switch {
	case child.content != nil:
		content = child.content.Measure(mc, child, inner)
	default:
		content = mc.measureBox(child, inner)
	}
	size := c.Constrain(padding.Inflate(content.Sanitize()))

	child.preferred = size
	child.lastConstraints = c
	child.measureValid = true
	return size
}

// measureBox is the default policy for widgets without content: every child
// is offered the full constraints and the box takes the per-axis maximum.
func (mc *MeasureContext) measureBox(w *Widget, c Constraints) graphics.Size {
	var size graphics.Size
	for _, child := range w.children {
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

// ArrangeContext drives the arrange pass. Contents call ArrangeChild for
// each child with a frame in the parent's local coordinate space.
type ArrangeContext struct {
	mc *MeasureContext
}

// ArrangeChild commits a child's frame and recurses into its content.
// A clean child keeping an identical frame is skipped entirely.
func (ac *ArrangeContext) ArrangeChild(child *Widget, frame graphics.Rect) {
	if !child.layoutDirty && !child.childLayoutDirty && child.frame == frame {
		return
	}
	// A child arranged at a size other than its measured one (stretch, tight
	// slots) is re-measured tight so its own children see the final box.
	if frame.Size() != child.preferred {
		ac.mc.MeasureChild(child, Tight(frame.Size()))
	}
	child.frame = frame
	contentBox := child.resolved.Padding.Deflate(graphics.RectFromLTWH(0, 0, frame.Width(), frame.Height()))
	switch {
	case child.content != nil:
		child.content.Arrange(ac, child, contentBox)
	default:
		ac.arrangeBox(child)
	}
	child.layoutDirty = false
	child.childLayoutDirty = false
	child.paintDirty = true
}

// arrangeBox places every child of a plain box at the content box origin
// with its measured size.
func (ac *ArrangeContext) arrangeBox(w *Widget) {
	padding := w.resolved.Padding
	for _, child := range w.children {
		size := child.preferred
		ac.ArrangeChild(child, graphics.RectFromLTWH(padding.Left, padding.Top, size.Width, size.Height))
	}
}
