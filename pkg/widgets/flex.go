// Package widgets provides the built-in content implementations: text,
// flex rows and columns, overlap stacks, buttons, inputs, and spacers.
package widgets

import (
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
)

// Axis is the main direction of a flex container.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// MainAlign positions children along the main axis.
type MainAlign int

const (
	MainAlignStart MainAlign = iota
	MainAlignCenter
	MainAlignEnd
	// MainAlignSpaceBetween distributes free space evenly between children,
	// none at the edges.
	MainAlignSpaceBetween
)

// CrossAlign positions children along the cross axis.
type CrossAlign int

const (
	CrossAlignStart CrossAlign = iota
	CrossAlignCenter
	CrossAlignEnd
	// CrossAlignStretch forces every child to the container's full cross
	// extent.
	CrossAlignStretch
)

// FlexContent lays out children in a row or column. Hidden children keep
// their slot; they are skipped at paint and hit-test time only.
type FlexContent struct {
	Axis       Axis
	MainAlign  MainAlign
	CrossAlign CrossAlign
	// Spacing is the fixed gap between adjacent children, applied before
	// free-space distribution.
	Spacing float64
}

func (f *FlexContent) Measure(mc *layout.MeasureContext, w *layout.Widget, c layout.Constraints) graphics.Size {
	childC := f.childConstraints(c)
	var main, cross float64
	children := w.Children()
	for _, child := range children {
		size := mc.MeasureChild(child, childC)
		m, x := f.split(size)
		main += m
		if x > cross {
			cross = x
		}
	}
	if n := len(children); n > 1 {
		main += f.Spacing * float64(n-1)
	}
	return f.join(main, cross)
}

func (f *FlexContent) Arrange(ac *layout.ArrangeContext, w *layout.Widget, contentBox graphics.Rect) {
	children := w.Children()
	if len(children) == 0 {
		return
	}
	mainExtent, crossExtent := f.split(contentBox.Size())

	var used float64
	for _, child := range children {
		m, _ := f.split(child.Preferred())
		used += m
	}
	used += f.Spacing * float64(len(children)-1)

	free := mainExtent - used
	if free < 0 {
		free = 0
	}
	cursor, gap := f.mainOffsets(free, len(children))

	for _, child := range children {
		m, x := f.split(child.Preferred())
		if f.CrossAlign == CrossAlignStretch {
			x = crossExtent
		}
		crossOffset := f.crossOffset(crossExtent, x)
		var frame graphics.Rect
		if f.Axis == AxisHorizontal {
			frame = graphics.RectFromLTWH(contentBox.Left+cursor, contentBox.Top+crossOffset, m, x)
		} else {
			frame = graphics.RectFromLTWH(contentBox.Left+crossOffset, contentBox.Top+cursor, x, m)
		}
		ac.ArrangeChild(child, frame)
		cursor += m + gap
	}
}

func (f *FlexContent) Paint(*layout.PaintContext, *layout.Widget, graphics.Rect) {}

func (f *FlexContent) HandleEvent(*layout.Widget, events.Event) bool { return false }

// childConstraints loosens the main axis and, under stretch with a bounded
// cross axis, tightens the cross axis to the container's extent.
func (f *FlexContent) childConstraints(c layout.Constraints) layout.Constraints {
	out := c.Loosen()
	if f.CrossAlign != CrossAlignStretch {
		return out
	}
	if f.Axis == AxisHorizontal {
		if c.HasBoundedHeight() {
			out.MinHeight = c.MaxHeight
		}
	} else {
		if c.HasBoundedWidth() {
			out.MinWidth = c.MaxWidth
		}
	}
	return out
}

// mainOffsets returns the starting cursor and the gap between children for
// the given free space.
func (f *FlexContent) mainOffsets(free float64, n int) (start, gap float64) {
	gap = f.Spacing
	switch f.MainAlign {
	case MainAlignCenter:
		start = free / 2
	case MainAlignEnd:
		start = free
	case MainAlignSpaceBetween:
		// No gap before the first child or after the last; with fewer than
		// two children there is nothing to distribute between.
		if n > 1 {
			gap += free / float64(n-1)
		}
	}
	return start, gap
}

func (f *FlexContent) crossOffset(extent, child float64) float64 {
	switch f.CrossAlign {
	case CrossAlignCenter:
		return (extent - child) / 2
	case CrossAlignEnd:
		return extent - child
	default:
		return 0
	}
}

// split decomposes a size into (main, cross) extents for the axis.
func (f *FlexContent) split(s graphics.Size) (main, cross float64) {
	if f.Axis == AxisHorizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// join recomposes (main, cross) extents into a size.
func (f *FlexContent) join(main, cross float64) graphics.Size {
	if f.Axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}
