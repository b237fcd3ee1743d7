package graphics

import (
	"errors"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// TextStyle describes how text should be measured and rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics for a block of text.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
}

// Measurer is the font-metrics capability consumed by the layout engine.
// Implementations must be pure: identical inputs yield identical results.
type Measurer interface {
	// LineMetrics returns the ascent, descent, and leading for the style.
	LineMetrics(style TextStyle) (ascent, descent, leading float64, err error)

	// TextWidth returns the advance width of a single line of text.
	TextWidth(text string, style TextStyle) (float64, error)
}

// FaceMeasurer measures text through a font.Face.
type FaceMeasurer struct {
	Face font.Face
}

// NewFaceMeasurer wraps a font face in a Measurer.
func NewFaceMeasurer(face font.Face) (*FaceMeasurer, error) {
	if face == nil {
		return nil, errors.New("font face required")
	}
	return &FaceMeasurer{Face: face}, nil
}

// DefaultMeasurer returns a measurer backed by the bundled bitmap face.
// Its metrics are fixed, which keeps layout deterministic in tests.
func DefaultMeasurer() *FaceMeasurer {
	return &FaceMeasurer{Face: basicfont.Face7x13}
}

// LineMetrics returns the face's ascent, descent, and line gap in pixels.
func (m *FaceMeasurer) LineMetrics(style TextStyle) (float64, float64, float64, error) {
	if m.Face == nil {
		return 0, 0, 0, errors.New("font face required")
	}
	metrics := m.Face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	leading := fixedToFloat(metrics.Height) - ascent - descent
	if leading < 0 {
		leading = 0
	}
	return ascent, descent, leading, nil
}

// TextWidth returns the advance width of text in pixels.
func (m *FaceMeasurer) TextWidth(text string, style TextStyle) (float64, error) {
	if m.Face == nil {
		return 0, errors.New("font face required")
	}
	return fixedToFloat(font.MeasureString(m.Face, text)), nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// LayoutText measures the given text without width constraints.
func LayoutText(text string, style TextStyle, measurer Measurer) (*TextLayout, error) {
	return LayoutTextWithConstraints(text, style, measurer, 0)
}

// LayoutTextWithConstraints measures and wraps text within the given width.
// A maxWidth of zero disables wrapping. The result is a pure function of
// (text, style, maxWidth) for a fixed measurer.
func LayoutTextWithConstraints(text string, style TextStyle, measurer Measurer, maxWidth float64) (*TextLayout, error) {
	if measurer == nil {
		return nil, errors.New("measurer required")
	}
	if style.FontSize <= 0 {
		style.FontSize = defaultFontSize
	}
	ascent, descent, leading, err := measurer.LineMetrics(style)
	if err != nil {
		return nil, err
	}
	lineHeight := ascent + descent + leading
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}
	var measureErr error
	measure := func(s string) float64 {
		width, err := measurer.TextWidth(s, style)
		if err != nil {
			measureErr = err
			return 0
		}
		return width
	}
	lines := layoutLines(text, maxWidth, measure)
	if measureErr != nil {
		return nil, measureErr
	}
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	if len(lines) == 0 {
		lines = []TextLine{{Text: "", Width: 0}}
	}
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
	}, nil
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []TextLine {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

// wrapParagraph greedily breaks a paragraph at the last whitespace that fits.
// A word wider than maxWidth is broken mid-word, one rune minimum per line.
func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			if measure(text[start:next]) > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) {
			// Break at the previous whitespace unless the overflowing rune
			// is itself whitespace, in which case the fit boundary is a
			// legal break already.
			r, _ := utf8.DecodeRuneInString(text[lastFit:])
			if !unicode.IsSpace(r) && lastBreak > start && lastBreak < lastFit {
				cut = lastBreak
			}
		}
		lines = append(lines, strings.TrimRightFunc(text[start:cut], unicode.IsSpace))
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
