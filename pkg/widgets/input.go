package widgets

import (
	"unicode/utf8"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
	"github.com/lumina-ui/lumina/pkg/reactive"
)

// InputContent is a single-line text field. The value lives in a reactive
// cell so other widgets can derive from it; key handling appends runes,
// backspace removes the last rune, and enter fires OnSubmit.
type InputContent struct {
	Placeholder string
	OnSubmit    func(string)

	value   *reactive.Cell[string]
	focused bool
	layout  *graphics.TextLayout
}

// NewInput creates input content holding the initial value.
func NewInput(initial string) *InputContent {
	return &InputContent{value: reactive.NewCell(initial)}
}

// Value returns the cell holding the current text.
func (in *InputContent) Value() *reactive.Cell[string] { return in.value }

// Focused reports whether the input has keyboard focus.
func (in *InputContent) Focused() bool { return in.focused }

// SetFocused records keyboard focus. The dispatcher calls this as focus
// moves; the widget is repainted separately.
func (in *InputContent) SetFocused(focused bool) { in.focused = focused }

func (in *InputContent) Measure(mc *layout.MeasureContext, w *layout.Widget, c layout.Constraints) graphics.Size {
	text := in.value.Get()
	ts := w.Resolved().TextStyle()
	display := text
	if display == "" {
		display = in.Placeholder
	}
	tl, err := graphics.LayoutText(display, ts, mc.Text)
	if err != nil {
		errors.Report(errors.New("widgets.InputContent.Measure", errors.KindLayout, err))
		return graphics.Size{}
	}
	in.layout = tl
	return c.Constrain(tl.Size)
}

func (in *InputContent) Arrange(*layout.ArrangeContext, *layout.Widget, graphics.Rect) {}

func (in *InputContent) Paint(pc *layout.PaintContext, w *layout.Widget, contentBox graphics.Rect) {
	outline := pc.Theme.ColorScheme.Outline
	if in.focused {
		outline = pc.Theme.ColorScheme.Primary
	}
	pc.Canvas.DrawRect(contentBox, graphics.Paint{
		Color:       outline,
		Style:       graphics.PaintStyleStroke,
		StrokeWidth: 1,
	})

	if in.layout == nil {
		return
	}
	tl := in.layout
	if in.value.Get() == "" && in.Placeholder != "" {
		ghost := *tl
		ghost.Style.Color = pc.Theme.ColorScheme.Outline
		tl = &ghost
	}
	pc.Canvas.DrawText(tl, contentBox.Origin())

	if in.focused {
		caretX := contentBox.Left
		if in.value.Get() != "" {
			caretX += in.layout.Size.Width
		}
		pc.Canvas.DrawLine(
			graphics.Offset{X: caretX, Y: contentBox.Top},
			graphics.Offset{X: caretX, Y: contentBox.Top + in.layout.LineHeight},
			graphics.Paint{Color: pc.Theme.ColorScheme.OnBackground, StrokeWidth: 1},
		)
	}
}

func (in *InputContent) HandleEvent(w *layout.Widget, e events.Event) bool {
	switch e.Kind {
	case events.KindClick:
		return true
	case events.KindKeyDown:
		if !in.focused {
			return false
		}
		return in.handleKey(e)
	}
	return false
}

func (in *InputContent) handleKey(e events.Event) bool {
	text := in.value.Get()
	switch e.Key {
	case "backspace":
		if text == "" {
			return true
		}
		_, size := utf8.DecodeLastRuneInString(text)
		in.value.Set(text[:len(text)-size])
		return true
	case "enter":
		if in.OnSubmit != nil {
			in.OnSubmit(text)
		}
		return true
	default:
		if e.Rune == 0 {
			return false
		}
		in.value.Set(text + string(e.Rune))
		return true
	}
}
