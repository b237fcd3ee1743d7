package style

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/graphics"
)

// supportedSchemaMajor is the theme file schema this build understands.
const supportedSchemaMajor = "v1"

// themeFile is the on-disk YAML representation of a theme.
type themeFile struct {
	Version    string           `yaml:"version"`
	Brightness string           `yaml:"brightness,omitempty"`
	Colors     themeFileColors  `yaml:"colors,omitempty"`
	Text       themeFileText    `yaml:"text,omitempty"`
	Button     *themeFileButton `yaml:"button,omitempty"`
}

type themeFileColors struct {
	Background   string `yaml:"background,omitempty"`
	Surface      string `yaml:"surface,omitempty"`
	Primary      string `yaml:"primary,omitempty"`
	OnPrimary    string `yaml:"on_primary,omitempty"`
	OnBackground string `yaml:"on_background,omitempty"`
	Outline      string `yaml:"outline,omitempty"`
}

type themeFileText struct {
	Family string  `yaml:"family,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
	Weight int     `yaml:"weight,omitempty"`
}

type themeFileButton struct {
	Background        string `yaml:"background,omitempty"`
	Foreground        string `yaml:"foreground,omitempty"`
	HoverBackground   string `yaml:"hover_background,omitempty"`
	PressedBackground string `yaml:"pressed_background,omitempty"`
}

// LoadTheme reads a theme YAML file. Unset fields keep the defaults of the
// base theme selected by the file's brightness.
func LoadTheme(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("style.LoadTheme", errors.KindTheme, err)
	}
	return ParseTheme(data)
}

// ParseTheme parses theme YAML. The file must declare a version whose major
// component matches the supported schema.
func ParseTheme(data []byte) (*ThemeData, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New("style.ParseTheme", errors.KindTheme, err)
	}

	version := strings.TrimSpace(file.Version)
	if version == "" {
		return nil, errors.Newf("style.ParseTheme", errors.KindTheme,
			"theme file missing version")
	}
	if !semver.IsValid(version) {
		return nil, errors.Newf("style.ParseTheme", errors.KindTheme,
			"invalid theme version %q", version)
	}
	if semver.Major(version) != supportedSchemaMajor {
		return nil, errors.Newf("style.ParseTheme", errors.KindTheme,
			"unsupported theme schema %s (want %s)", semver.Major(version), supportedSchemaMajor)
	}

	theme := DefaultLightTheme()
	if strings.EqualFold(file.Brightness, "dark") {
		theme = DefaultDarkTheme()
	}

	if err := applyColor(&theme.ColorScheme.Background, file.Colors.Background); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.ColorScheme.Surface, file.Colors.Surface); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.ColorScheme.Primary, file.Colors.Primary); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.ColorScheme.OnPrimary, file.Colors.OnPrimary); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.ColorScheme.OnBackground, file.Colors.OnBackground); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.ColorScheme.Outline, file.Colors.Outline); err != nil {
		return nil, err
	}

	if file.Text.Family != "" {
		theme.TextTheme.FontFamily = file.Text.Family
	}
	if file.Text.Size > 0 {
		theme.TextTheme.FontSize = file.Text.Size
	}
	if file.Text.Weight > 0 {
		theme.TextTheme.FontWeight = graphics.FontWeight(file.Text.Weight)
	}

	if file.Button != nil {
		button := theme.ButtonThemeOf()
		if err := applyColor(&button.Background, file.Button.Background); err != nil {
			return nil, err
		}
		if err := applyColor(&button.Foreground, file.Button.Foreground); err != nil {
			return nil, err
		}
		if err := applyColor(&button.HoverBackground, file.Button.HoverBackground); err != nil {
			return nil, err
		}
		if err := applyColor(&button.PressedBackground, file.Button.PressedBackground); err != nil {
			return nil, err
		}
		theme.ButtonTheme = &button
	}

	return theme, nil
}

func applyColor(dst *graphics.Color, value string) error {
	if value == "" {
		return nil
	}
	color, err := ParseColor(value)
	if err != nil {
		return err
	}
	*dst = color
	return nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" hex notation.
func ParseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, errors.Newf("style.ParseColor", errors.KindTheme,
			"color %q must start with '#'", s)
	}
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, errors.Newf("style.ParseColor", errors.KindTheme,
			"color %q must have 6 or 8 hex digits", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.New("style.ParseColor", errors.KindTheme,
			fmt.Errorf("color %q: %w", s, err))
	}
	return graphics.Color(value), nil
}
