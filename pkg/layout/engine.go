package layout

import (
	"fmt"
	"time"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/style"
)

// Engine runs the two-pass measure/arrange protocol over dirty subtrees.
// One engine serves one tree; it is not safe for concurrent use.
type Engine struct {
	text  graphics.Measurer
	theme *style.ThemeData
}

// NewEngine creates a layout engine. A nil measurer falls back to the
// deterministic built-in face; a nil theme falls back to the light theme.
func NewEngine(text graphics.Measurer, theme *style.ThemeData) *Engine {
	if text == nil {
		text = graphics.DefaultMeasurer()
	}
	if theme == nil {
		theme = style.DefaultLightTheme()
	}
	return &Engine{text: text, theme: theme}
}

// Theme returns the active theme.
func (e *Engine) Theme() *style.ThemeData { return e.theme }

// SetTheme swaps the theme. Theme replacement is wholesale: every widget in
// the given tree is re-resolved and re-laid-out.
func (e *Engine) SetTheme(theme *style.ThemeData, root *Widget) {
	if theme == nil || theme == e.theme {
		return
	}
	e.theme = theme
	if root == nil {
		return
	}
	root.Walk(func(w *Widget) bool {
		w.styleValid = false
		w.layoutDirty = true
		w.paintDirty = true
		w.measureValid = false
		w.childLayoutDirty = len(w.children) > 0
		w.childPaintDirty = len(w.children) > 0
		return true
	})
}

// Measurer returns the text measurer the engine lays text out with.
func (e *Engine) Measurer() graphics.Measurer { return e.text }

// LayoutRoot measures and arranges one dirty subtree. The root keeps its
// current origin; its size is the measured size under the given constraints.
// A panic or constraint violation inside the subtree is reported and leaves
// the subtree's previous geometry intact.
func (e *Engine) LayoutRoot(root *Widget, c Constraints) (err error) {
	const op = "layout.Engine.LayoutRoot"
	defer func() {
		if r := recover(); r != nil {
			perr := &errors.PanicError{
				Op:         op,
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportPanic(perr)
			err = errors.New(op, errors.KindPanic, perr)
		}
	}()

	if err := c.Validate(); err != nil {
		return err
	}
	if root.disposed {
		return report(errors.Newf(op, errors.KindTree,
			"layout of disposed widget %q", root.id))
	}

	e.resolveStyles(root, false)

	mc := &MeasureContext{Text: e.text, Theme: e.theme}
	size := mc.MeasureChild(root, c)

	ac := &ArrangeContext{mc: mc}
	origin := root.frame.Origin()
	ac.ArrangeChild(root, graphics.RectFromOffsetSize(origin, size))

	recomputeAncestorBits(root)
	return nil
}

// LayoutDirty collects the dirty roots under the tree root and lays out
// those needing layout. The tree root itself is constrained tight to the
// window size; interior roots reuse their cached constraints so their slot
// in the parent stays stable. Failures are isolated per root.
func (e *Engine) LayoutDirty(treeRoot *Widget, window graphics.Size) ([]*Widget, error) {
	roots := CollectDirtyRoots(treeRoot)
	var firstErr error
	for _, root := range roots {
		if !root.NeedsLayout() {
			continue
		}
		c := root.lastConstraints
		if root == treeRoot {
			c = Tight(window)
		} else if !root.measureValid && c == (Constraints{}) {
			c = Loose(window)
		}
		if err := e.LayoutRoot(root, c); err != nil {
			errors.Report(errors.New("layout.Engine.LayoutDirty", errors.KindLayout,
				fmt.Errorf("subtree %q: %w", root.id, err)))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return roots, firstErr
}

// resolveStyles recomputes resolved styles for the subtree. force cascades
// recomputation downward whenever a parent's resolved record changed, since
// inherited text attributes may differ.
func (e *Engine) resolveStyles(w *Widget, force bool) {
	if !force && w.styleValid && !subtreeStyleInvalid(w) {
		return
	}
	base := e.theme.BaseStyle()
	if w.parent != nil {
		base = w.parent.resolved.ChildBase(e.theme)
	}
	e.resolveStylesFrom(w, base, force)
}

func (e *Engine) resolveStylesFrom(w *Widget, base style.Resolved, force bool) {
	if force || !w.styleValid {
		next := style.Resolve(w.overrides, base)
		if next != w.resolved {
			w.resolved = next
			force = true
		}
		w.styleValid = true
	}
	childBase := w.resolved.ChildBase(e.theme)
	for _, child := range w.children {
		e.resolveStylesFrom(child, childBase, force)
	}
}

func subtreeStyleInvalid(w *Widget) bool {
	invalid := false
	w.Walk(func(c *Widget) bool {
		if !c.styleValid {
			invalid = true
			return false
		}
		return true
	})
	return invalid
}
