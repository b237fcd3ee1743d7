package widgets

import (
	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
)

// ButtonContent is a labeled press target. Its fill follows the widget's
// hover and press state; OnClick fires only when a press and its release
// both land inside the widget.
type ButtonContent struct {
	Label   string
	OnClick func()

	layout *graphics.TextLayout
}

// SetLabel replaces the label and invalidates the widget's layout.
func (b *ButtonContent) SetLabel(w *layout.Widget, label string) {
	if b.Label == label {
		return
	}
	b.Label = label
	w.MarkLayoutDirty()
}

func (b *ButtonContent) Measure(mc *layout.MeasureContext, w *layout.Widget, c layout.Constraints) graphics.Size {
	button := mc.Theme.ButtonThemeOf()
	ts := w.Resolved().TextStyle()
	ts.Color = button.Foreground
	tl, err := graphics.LayoutText(b.Label, ts, mc.Text)
	if err != nil {
		errors.Report(errors.New("widgets.ButtonContent.Measure", errors.KindLayout, err))
		return graphics.Size{}
	}
	b.layout = tl
	return c.Constrain(button.Padding.Inflate(tl.Size))
}

func (b *ButtonContent) Arrange(*layout.ArrangeContext, *layout.Widget, graphics.Rect) {}

func (b *ButtonContent) Paint(pc *layout.PaintContext, w *layout.Widget, contentBox graphics.Rect) {
	button := pc.Theme.ButtonThemeOf()
	fill := button.Background
	switch {
	case w.Pressed():
		fill = button.PressedBackground
	case w.Hovered():
		fill = button.HoverBackground
	}
	pc.Canvas.DrawRect(contentBox, graphics.Paint{Color: fill})

	if b.layout == nil {
		return
	}
	center := contentBox.Center()
	origin := graphics.Offset{
		X: center.X - b.layout.Size.Width/2,
		Y: center.Y - b.layout.Size.Height/2,
	}
	pc.Canvas.DrawText(b.layout, origin)
}

func (b *ButtonContent) HandleEvent(w *layout.Widget, e events.Event) bool {
	switch e.Kind {
	case events.KindClick:
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	case events.KindPointerDown, events.KindPointerUp:
		return true
	}
	return false
}
