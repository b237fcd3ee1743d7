package widgets

import (
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
)

const (
	scrollbarWidth   = 12
	scrollbarInset   = 2
	scrollThumbMin   = 20
	scrollTrackAlpha = 0x20
	scrollThumbAlpha = 0xA0
)

// ScrollableContent scrolls its child along one axis inside a clipped
// viewport. The child is measured unbounded on the scroll axis; the widget
// itself takes the viewport size its constraints allow. An overlay scrollbar
// is painted at the trailing edge while the content overflows.
type ScrollableContent struct {
	Axis Axis

	offset   float64
	content  float64
	viewport float64
}

// NewScrollable creates vertically scrolling content.
func NewScrollable() *ScrollableContent {
	return &ScrollableContent{Axis: AxisVertical}
}

// Offset returns the current scroll offset in logical pixels.
func (s *ScrollableContent) Offset() float64 { return s.offset }

// MaxOffset returns the largest reachable offset for the last layout.
func (s *ScrollableContent) MaxOffset() float64 {
	if max := s.content - s.viewport; max > 0 {
		return max
	}
	return 0
}

// ScrollTo moves to an absolute offset, clamped to the scrollable range.
func (s *ScrollableContent) ScrollTo(w *layout.Widget, offset float64) {
	next := clampOffset(offset, s.MaxOffset())
	if next == s.offset {
		return
	}
	s.offset = next
	w.MarkLayoutDirty()
}

// ScrollBy moves by a relative distance, clamped to the scrollable range.
func (s *ScrollableContent) ScrollBy(w *layout.Widget, delta float64) {
	s.ScrollTo(w, s.offset+delta)
}

func (s *ScrollableContent) Measure(mc *layout.MeasureContext, w *layout.Widget, c layout.Constraints) graphics.Size {
	childC := c.Loosen()
	if s.Axis == AxisVertical {
		childC.MaxHeight = layout.Unbounded
	} else {
		childC.MaxWidth = layout.Unbounded
	}
	var content graphics.Size
	for _, child := range w.Children() {
		size := mc.MeasureChild(child, childC)
		if size.Width > content.Width {
			content.Width = size.Width
		}
		if size.Height > content.Height {
			content.Height = size.Height
		}
	}
	return c.Constrain(content)
}

func (s *ScrollableContent) Arrange(ac *layout.ArrangeContext, w *layout.Widget, contentBox graphics.Rect) {
	s.viewport = s.mainExtent(contentBox.Size())
	s.content = 0
	for _, child := range w.Children() {
		if m := s.mainExtent(child.Preferred()); m > s.content {
			s.content = m
		}
	}
	s.offset = clampOffset(s.offset, s.MaxOffset())

	for _, child := range w.Children() {
		size := child.Preferred()
		origin := contentBox.Origin()
		if s.Axis == AxisVertical {
			origin.Y -= s.offset
		} else {
			origin.X -= s.offset
		}
		ac.ArrangeChild(child, graphics.RectFromLTWH(origin.X, origin.Y, size.Width, size.Height))
	}
}

func (s *ScrollableContent) Paint(pc *layout.PaintContext, w *layout.Widget, contentBox graphics.Rect) {
	max := s.MaxOffset()
	if max <= 0 || s.viewport <= 0 {
		return
	}

	var track graphics.Rect
	if s.Axis == AxisVertical {
		track = graphics.RectFromLTWH(contentBox.Right-scrollbarWidth, contentBox.Top,
			scrollbarWidth, contentBox.Height())
	} else {
		track = graphics.RectFromLTWH(contentBox.Left, contentBox.Bottom-scrollbarWidth,
			contentBox.Width(), scrollbarWidth)
	}
	scheme := pc.Theme.ColorScheme
	pc.Canvas.DrawRect(track, graphics.Paint{Color: scheme.Outline.WithAlpha(scrollTrackAlpha)})

	thumbExtent := s.viewport * s.viewport / s.content
	if thumbExtent < scrollThumbMin {
		thumbExtent = scrollThumbMin
	}
	travel := s.viewport - thumbExtent
	lead := s.offset / max * travel

	var thumb graphics.Rect
	if s.Axis == AxisVertical {
		thumb = graphics.RectFromLTWH(track.Left+scrollbarInset, track.Top+lead,
			scrollbarWidth-2*scrollbarInset, thumbExtent)
	} else {
		thumb = graphics.RectFromLTWH(track.Left+lead, track.Top+scrollbarInset,
			thumbExtent, scrollbarWidth-2*scrollbarInset)
	}
	pc.Canvas.DrawRect(thumb, graphics.Paint{Color: scheme.OnBackground.WithAlpha(scrollThumbAlpha)})
}

func (s *ScrollableContent) HandleEvent(w *layout.Widget, e events.Event) bool {
	if e.Kind != events.KindScroll {
		return false
	}
	delta := e.Delta.Y
	if s.Axis == AxisHorizontal {
		delta = e.Delta.X
	}
	next := clampOffset(s.offset+delta, s.MaxOffset())
	if next == s.offset {
		// At the edge already; let an enclosing scrollable take it.
		return false
	}
	s.offset = next
	w.MarkLayoutDirty()
	return true
}

func (s *ScrollableContent) mainExtent(size graphics.Size) float64 {
	if s.Axis == AxisVertical {
		return size.Height
	}
	return size.Width
}

func clampOffset(offset, max float64) float64 {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
