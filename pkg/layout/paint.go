package layout

import (
	"time"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/style"
)

// PaintContext carries what contents need while painting.
type PaintContext struct {
	Canvas graphics.Canvas
	Theme  *style.ThemeData
}

// PaintRoot paints one subtree onto the canvas and returns the widgets whose
// paint-dirty bit was set, in paint order. The canvas is translated to the
// root's absolute position first so subtree repaints land where the full
// tree would put them. A panic inside the walk is reported and leaves the
// rest of the frame unaffected.
func (e *Engine) PaintRoot(root *Widget, canvas graphics.Canvas) (repainted []*Widget, err error) {
	const op = "layout.Engine.PaintRoot"
	defer func() {
		if r := recover(); r != nil {
			perr := &errors.PanicError{
				Op:         op,
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportPanic(perr)
			err = errors.New(op, errors.KindPaint, perr)
		}
	}()

	pc := &PaintContext{Canvas: canvas, Theme: e.theme}
	abs := root.AbsoluteFrame()
	canvas.Save()
	canvas.Translate(abs.Left-root.frame.Left, abs.Top-root.frame.Top)
	e.paintWidget(pc, root, &repainted)
	canvas.Restore()

	recomputeAncestorBits(root)
	return repainted, nil
}

func (e *Engine) paintWidget(pc *PaintContext, w *Widget, repainted *[]*Widget) {
	if w.disposed {
		return
	}
	if !w.visible {
		clearPaintBits(w)
		return
	}
	if w.paintDirty {
		*repainted = append(*repainted, w)
	}

	canvas := pc.Canvas
	bounds := graphics.RectFromLTWH(0, 0, w.frame.Width(), w.frame.Height())

	canvas.Save()
	canvas.Translate(w.frame.Left, w.frame.Top)
	canvas.ClipRect(bounds)

	resolved := w.resolved
	if !resolved.Background.IsTransparent() {
		canvas.DrawRect(bounds, graphics.Paint{Color: resolved.Background})
	}
	if resolved.BorderWidth > 0 && !resolved.BorderColor.IsTransparent() {
		canvas.DrawRect(bounds, graphics.Paint{
			Color:       resolved.BorderColor,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: resolved.BorderWidth,
		})
	}

	if w.content != nil {
		w.content.Paint(pc, w, resolved.Padding.Deflate(bounds))
	}
	for _, child := range w.children {
		e.paintWidget(pc, child, repainted)
	}
	canvas.Restore()

	w.paintDirty = false
	w.childPaintDirty = false
}

// clearPaintBits drops the paint-dirty state of an invisible subtree so it
// never lingers as a dirty root.
func clearPaintBits(w *Widget) {
	w.Walk(func(c *Widget) bool {
		c.paintDirty = false
		c.childPaintDirty = false
		return true
	})
}
