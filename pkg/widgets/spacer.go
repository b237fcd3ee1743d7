package widgets

import (
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
)

// SpacerContent reserves a fixed amount of space and draws nothing.
type SpacerContent struct {
	Size graphics.Size
}

func (s *SpacerContent) Measure(_ *layout.MeasureContext, _ *layout.Widget, c layout.Constraints) graphics.Size {
	return c.Constrain(s.Size)
}

func (s *SpacerContent) Arrange(*layout.ArrangeContext, *layout.Widget, graphics.Rect) {}

func (s *SpacerContent) Paint(*layout.PaintContext, *layout.Widget, graphics.Rect) {}

func (s *SpacerContent) HandleEvent(*layout.Widget, events.Event) bool { return false }
