package layout

import (
	"math"
	"testing"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/graphics"
)

func TestTightConstraints(t *testing.T) {
	c := Tight(graphics.Size{Width: 100, Height: 50})
	if !c.IsTight() {
		t.Error("Tight constraints not tight")
	}
	got := c.Constrain(graphics.Size{Width: 7, Height: 900})
	if got != (graphics.Size{Width: 100, Height: 50}) {
		t.Errorf("Constrain = %+v, want 100x50", got)
	}
}

func TestLooseConstrainClamps(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 100})
	got := c.Constrain(graphics.Size{Width: 150, Height: 50})
	if got != (graphics.Size{Width: 100, Height: 50}) {
		t.Errorf("Constrain = %+v, want 100x50", got)
	}
}

func TestConstrainSanitizesInput(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 100})
	got := c.Constrain(graphics.Size{Width: math.NaN(), Height: -10})
	if got != (graphics.Size{}) {
		t.Errorf("Constrain(NaN,-10) = %+v, want zero", got)
	}
}

func TestDeflateClampsAtZero(t *testing.T) {
	c := Tight(graphics.Size{Width: 10, Height: 10})
	got := c.Deflate(graphics.EdgeInsetsAll(8))
	if got.MaxWidth != 0 || got.MaxHeight != 0 {
		t.Errorf("over-deflated constraints = %+v, want zero maximums", got)
	}
	if got.MinWidth > got.MaxWidth || got.MinHeight > got.MaxHeight {
		t.Errorf("deflate produced min > max: %+v", got)
	}
}

func TestUnconstrainedIsUnbounded(t *testing.T) {
	c := Unconstrained()
	if c.HasBoundedWidth() || c.HasBoundedHeight() {
		t.Errorf("Unconstrained reports bounded axes: %+v", c)
	}
}

func TestValidateRejectsMinOverMax(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 5, MaxHeight: 100}
	err := c.Validate()
	if !errors.IsInvalidConstraint(err) {
		t.Fatalf("Validate = %v, want KindConstraint", err)
	}
}

func TestValidateRejectsNaN(t *testing.T) {
	c := Constraints{MaxWidth: math.NaN(), MaxHeight: 100}
	if !errors.IsInvalidConstraint(c.Validate()) {
		t.Error("NaN constraint passed validation")
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	if err := Tight(graphics.Size{Width: 10, Height: 10}).Validate(); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
	if err := Unconstrained().Validate(); err != nil {
		t.Errorf("Validate(unbounded) = %v, want nil", err)
	}
}
