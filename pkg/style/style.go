// Package style provides widget style records, theme data, and the resolver
// that merges explicit overrides with inherited and theme-supplied defaults.
package style

import "github.com/lumina-ui/lumina/pkg/graphics"

// Style holds a widget's explicit overrides. Every field is optional and
// nullable with a defined default; a nil field means "inherit". There is no
// runtime probing for absent attributes - the record always carries every
// slot.
type Style struct {
	Background  *graphics.Color
	Foreground  *graphics.Color
	BorderColor *graphics.Color
	BorderWidth *float64
	FontFamily  *string
	FontSize    *float64
	FontWeight  *graphics.FontWeight
	Padding     *graphics.EdgeInsets
}

// IsZero reports whether the style has no overrides set.
func (s Style) IsZero() bool {
	return s.Background == nil && s.Foreground == nil && s.BorderColor == nil &&
		s.BorderWidth == nil && s.FontFamily == nil && s.FontSize == nil &&
		s.FontWeight == nil && s.Padding == nil
}

// Resolved is a fully merged style record. Geometry-affecting fields feed the
// measure pass; color fields feed the paint walk.
type Resolved struct {
	Background  graphics.Color
	Foreground  graphics.Color
	BorderColor graphics.Color
	BorderWidth float64
	FontFamily  string
	FontSize    float64
	FontWeight  graphics.FontWeight
	Padding     graphics.EdgeInsets
}

// TextStyle returns the graphics text attributes of the resolved style.
func (r Resolved) TextStyle() graphics.TextStyle {
	return graphics.TextStyle{
		Color:      r.Foreground,
		FontFamily: r.FontFamily,
		FontSize:   r.FontSize,
		FontWeight: r.FontWeight,
	}
}

// Resolve merges explicit overrides onto an inherited style. Pure: the same
// inputs always produce the same record, and overrides win on every field
// they set.
func Resolve(overrides Style, inherited Resolved) Resolved {
	out := inherited
	if overrides.Background != nil {
		out.Background = *overrides.Background
	}
	if overrides.Foreground != nil {
		out.Foreground = *overrides.Foreground
	}
	if overrides.BorderColor != nil {
		out.BorderColor = *overrides.BorderColor
	}
	if overrides.BorderWidth != nil {
		out.BorderWidth = *overrides.BorderWidth
	}
	if overrides.FontFamily != nil {
		out.FontFamily = *overrides.FontFamily
	}
	if overrides.FontSize != nil {
		out.FontSize = *overrides.FontSize
	}
	if overrides.FontWeight != nil {
		out.FontWeight = *overrides.FontWeight
	}
	if overrides.Padding != nil {
		out.Padding = *overrides.Padding
	}
	return out
}

// ChildBase derives the style a child inherits from this resolved style.
// Text attributes flow down; box attributes (background, border, padding)
// reset to the theme defaults so a parent's chrome doesn't repeat on every
// descendant.
func (r Resolved) ChildBase(theme *ThemeData) Resolved {
	base := theme.BaseStyle()
	base.Foreground = r.Foreground
	base.FontFamily = r.FontFamily
	base.FontSize = r.FontSize
	base.FontWeight = r.FontWeight
	return base
}

// Helper constructors for override fields.

// ColorPtr returns a pointer to the given color.
func ColorPtr(c graphics.Color) *graphics.Color { return &c }

// FloatPtr returns a pointer to the given float.
func FloatPtr(f float64) *float64 { return &f }

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string { return &s }

// WeightPtr returns a pointer to the given font weight.
func WeightPtr(w graphics.FontWeight) *graphics.FontWeight { return &w }

// InsetsPtr returns a pointer to the given edge insets.
func InsetsPtr(e graphics.EdgeInsets) *graphics.EdgeInsets { return &e }
