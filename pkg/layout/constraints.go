package layout

import (
	stderrors "errors"
	"math"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/graphics"
)

// Unbounded is the maximum constraint value, meaning "no limit".
var Unbounded = math.MaxFloat64

// Constraints describe the size range a parent offers a child during the
// measure pass. Minimums may be zero; maximums may be Unbounded.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	size = size.Sanitize()
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	size = size.Sanitize()
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// Unconstrained returns constraints with no limits on either axis.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// Constrain clamps a size into the constraint range.
// NaN and negative inputs collapse to the minimums.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	size = size.Sanitize()
	return graphics.Size{
		Width:  math.Min(math.Max(size.Width, c.MinWidth), c.MaxWidth),
		Height: math.Min(math.Max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// Loosen returns the constraints with minimums reset to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate shrinks the constraints by the given insets, clamping at zero.
func (c Constraints) Deflate(insets graphics.EdgeInsets) Constraints {
	h := insets.Horizontal()
	v := insets.Vertical()
	out := Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
	if c.HasBoundedWidth() {
		out.MaxWidth = math.Max(0, c.MaxWidth-h)
	}
	if c.HasBoundedHeight() {
		out.MaxHeight = math.Max(0, c.MaxHeight-v)
	}
	if out.MinWidth > out.MaxWidth {
		out.MinWidth = out.MaxWidth
	}
	if out.MinHeight > out.MaxHeight {
		out.MinHeight = out.MaxHeight
	}
	return out
}

// Validate reports a KindConstraint error for constraints a caller should
// never produce: NaN bounds, negative minimums, or min exceeding max.
func (c Constraints) Validate() error {
	switch {
	case math.IsNaN(c.MinWidth) || math.IsNaN(c.MaxWidth) ||
		math.IsNaN(c.MinHeight) || math.IsNaN(c.MaxHeight):
		return errors.New("layout.Constraints.Validate", errors.KindConstraint,
			stderrors.New("constraint is NaN"))
	case c.MinWidth < 0 || c.MinHeight < 0:
		return errors.New("layout.Constraints.Validate", errors.KindConstraint,
			stderrors.New("negative minimum"))
	case c.MinWidth > c.MaxWidth:
		return errors.Newf("layout.Constraints.Validate", errors.KindConstraint,
			"min width %g exceeds max width %g", c.MinWidth, c.MaxWidth)
	case c.MinHeight > c.MaxHeight:
		return errors.Newf("layout.Constraints.Validate", errors.KindConstraint,
			"min height %g exceeds max height %g", c.MinHeight, c.MaxHeight)
	}
	return nil
}
