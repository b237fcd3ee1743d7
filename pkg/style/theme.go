package style

import "github.com/lumina-ui/lumina/pkg/graphics"

// Brightness indicates a light or dark theme.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme defines the color palette of a theme.
type ColorScheme struct {
	Background   graphics.Color
	Surface      graphics.Color
	Primary      graphics.Color
	OnPrimary    graphics.Color
	OnBackground graphics.Color
	Outline      graphics.Color
}

// TextTheme defines the default text attributes of a theme.
type TextTheme struct {
	FontFamily string
	FontSize   float64
	FontWeight graphics.FontWeight
}

// ButtonThemeData defines the visual states of buttons.
type ButtonThemeData struct {
	Background        graphics.Color
	Foreground        graphics.Color
	HoverBackground   graphics.Color
	PressedBackground graphics.Color
	Padding           graphics.EdgeInsets
}

// ThemeData contains all theme configuration for an application.
// It is constructed once at startup and replaced only through the engine's
// SetTheme, which invalidates the whole tree; nothing mutates it in place.
type ThemeData struct {
	ColorScheme ColorScheme
	TextTheme   TextTheme
	Brightness  Brightness

	// ButtonTheme is optional and derived from ColorScheme when nil.
	ButtonTheme *ButtonThemeData
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Background:   graphics.RGB(0xFA, 0xFA, 0xFA),
		Surface:      graphics.ColorWhite,
		Primary:      graphics.RGB(0x3B, 0x82, 0xF6),
		OnPrimary:    graphics.ColorWhite,
		OnBackground: graphics.RGB(0x1F, 0x29, 0x37),
		Outline:      graphics.RGB(0xD1, 0xD5, 0xDB),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Background:   graphics.RGB(0x11, 0x18, 0x27),
		Surface:      graphics.RGB(0x1F, 0x29, 0x37),
		Primary:      graphics.RGB(0x60, 0xA5, 0xFA),
		OnPrimary:    graphics.RGB(0x11, 0x18, 0x27),
		OnBackground: graphics.RGB(0xF9, 0xFA, 0xFB),
		Outline:      graphics.RGB(0x37, 0x41, 0x51),
	}
}

// DefaultTextTheme returns the default text attributes.
func DefaultTextTheme() TextTheme {
	return TextTheme{
		FontFamily: "",
		FontSize:   16,
		FontWeight: graphics.FontWeightNormal,
	}
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		TextTheme:   DefaultTextTheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		TextTheme:   DefaultTextTheme(),
		Brightness:  BrightnessDark,
	}
}

// BaseStyle returns the resolved style a widget gets with no overrides and
// no inherited values: transparent box, theme text attributes.
func (t *ThemeData) BaseStyle() Resolved {
	return Resolved{
		Background:  graphics.ColorTransparent,
		Foreground:  t.ColorScheme.OnBackground,
		BorderColor: graphics.ColorTransparent,
		BorderWidth: 0,
		FontFamily:  t.TextTheme.FontFamily,
		FontSize:    t.TextTheme.FontSize,
		FontWeight:  t.TextTheme.FontWeight,
		Padding:     graphics.EdgeInsets{},
	}
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme when unset.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	primary := t.ColorScheme.Primary
	return ButtonThemeData{
		Background:        primary,
		Foreground:        t.ColorScheme.OnPrimary,
		HoverBackground:   primary.WithAlpha(0xE6),
		PressedBackground: primary.WithAlpha(0xCC),
		Padding:           graphics.EdgeInsetsSymmetric(16, 8),
	}
}
