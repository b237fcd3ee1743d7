// Package layout implements the widget tree, the invalidation tracker, and
// the two-pass measure/arrange engine together with hit testing and the
// paint walk.
//
// Everything in this package is single-threaded: all tree mutation, layout,
// and painting happen on the frame-loop goroutine.
package layout

import (
	stderrors "errors"
	"fmt"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/style"
)

// Widget is the single concrete node type of the tree. Behavior lives in the
// attached Content; the record itself carries identity, tree links, style,
// cached geometry, and dirty state.
type Widget struct {
	id       string
	parent   *Widget
	children []*Widget
	content  Content

	overrides  style.Style
	resolved   style.Resolved
	styleValid bool

	// frame is the widget's rectangle in its parent's coordinate space.
	// Valid only while the widget is layout-clean.
	frame graphics.Rect

	// Measure cache. preferred is the last result of the measure pass for
	// lastConstraints.
	preferred       graphics.Size
	lastConstraints Constraints
	measureValid    bool

	visible     bool
	interactive bool

	layoutDirty      bool
	paintDirty       bool
	childLayoutDirty bool
	childPaintDirty  bool

	hovered  bool
	pressed  bool
	disposed bool

	disposers []func()

	// OnEvent, when set, sees events before the widget's content and may
	// consume them by returning true.
	OnEvent func(*Widget, events.Event) bool
}

// NewWidget creates a detached widget. Content may be nil, in which case the
// widget is a plain box that sizes itself to the union of its children.
func NewWidget(id string, content Content) *Widget {
	return &Widget{
		id:          id,
		content:     content,
		visible:     true,
		interactive: true,
		layoutDirty: true,
		paintDirty:  true,
	}
}

// ID returns the widget's identifier.
func (w *Widget) ID() string { return w.id }

// Parent returns the widget's parent, or nil when detached.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the ordered child list. Callers must not mutate it.
func (w *Widget) Children() []*Widget { return w.children }

// Content returns the widget's content, or nil.
func (w *Widget) Content() Content { return w.content }

// SetContent replaces the widget's content and invalidates layout.
func (w *Widget) SetContent(content Content) {
	w.content = content
	w.MarkLayoutDirty()
}

// Frame returns the widget's rectangle in its parent's coordinate space.
// Valid only after a layout pass.
func (w *Widget) Frame() graphics.Rect { return w.frame }

// Preferred returns the size cached by the last measure pass.
func (w *Widget) Preferred() graphics.Size { return w.preferred }

// AbsoluteFrame returns the widget's rectangle in root coordinates by
// accumulating ancestor origins.
func (w *Widget) AbsoluteFrame() graphics.Rect {
	frame := w.frame
	for p := w.parent; p != nil; p = p.parent {
		frame = frame.Translate(p.frame.Left, p.frame.Top)
	}
	return frame
}

// Style returns the widget's explicit overrides.
func (w *Widget) Style() style.Style { return w.overrides }

// SetStyle replaces the widget's overrides. Inherited attributes flow down,
// so the whole subtree is re-resolved.
func (w *Widget) SetStyle(overrides style.Style) {
	w.overrides = overrides
	w.invalidateStyleTree()
	w.MarkLayoutDirty()
}

// Resolved returns the merged style. Valid only after a frame has resolved
// styles for the widget's subtree.
func (w *Widget) Resolved() style.Resolved { return w.resolved }

// Visible reports whether the widget and its subtree are painted and
// hit-testable.
func (w *Widget) Visible() bool { return w.visible }

// SetVisible toggles visibility. Hidden widgets keep their layout slot.
func (w *Widget) SetVisible(visible bool) {
	if w.visible == visible {
		return
	}
	w.visible = visible
	w.MarkPaintDirty()
}

// Interactive reports whether the widget itself can be a hit-test target.
// Non-interactive widgets are skipped, but their children still participate.
func (w *Widget) Interactive() bool { return w.interactive }

// SetInteractive toggles hit-test participation.
func (w *Widget) SetInteractive(interactive bool) { w.interactive = interactive }

// Hovered reports whether the pointer is currently over the widget.
func (w *Widget) Hovered() bool { return w.hovered }

// SetHovered records pointer hover state, invalidating paint on change.
func (w *Widget) SetHovered(hovered bool) {
	if w.hovered == hovered {
		return
	}
	w.hovered = hovered
	w.MarkPaintDirty()
}

// Pressed reports whether a pointer press started on the widget and has not
// yet been released.
func (w *Widget) Pressed() bool { return w.pressed }

// SetPressed records press state, invalidating paint on change.
func (w *Widget) SetPressed(pressed bool) {
	if w.pressed == pressed {
		return
	}
	w.pressed = pressed
	w.MarkPaintDirty()
}

// IsDisposed reports whether Dispose has run.
func (w *Widget) IsDisposed() bool { return w.disposed }

// AppendChild adds a child at the end of the child list.
func (w *Widget) AppendChild(child *Widget) error {
	return w.InsertChild(len(w.children), child)
}

// InsertChild adds a child at the given index. Attaching a widget that
// already has a parent, is disposed, or would create a cycle is a
// KindTree error.
func (w *Widget) InsertChild(index int, child *Widget) error {
	const op = "layout.Widget.InsertChild"
	if err := w.checkAttach(op, child); err != nil {
		return err
	}
	if index < 0 || index > len(w.children) {
		return report(errors.Newf(op, errors.KindTree,
			"index %d out of range for %d children", index, len(w.children)))
	}
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
	child.parent = w
	child.invalidateStyleTree()
	child.MarkLayoutDirty()
	w.MarkLayoutDirty()
	return nil
}

func (w *Widget) checkAttach(op string, child *Widget) error {
	switch {
	case child == nil:
		return report(errors.New(op, errors.KindTree, stderrors.New("nil child")))
	case w.disposed || child.disposed:
		return report(errors.New(op, errors.KindTree, stderrors.New("widget is disposed")))
	case child.parent != nil:
		return report(errors.Newf(op, errors.KindTree,
			"widget %q already has parent %q", child.id, child.parent.id))
	}
	for p := w; p != nil; p = p.parent {
		if p == child {
			return report(errors.Newf(op, errors.KindTree,
				"attaching %q under itself", child.id))
		}
	}
	return nil
}

// RemoveChild detaches a child, leaving it reusable. Removing a widget that
// is not a child is a KindTree error.
func (w *Widget) RemoveChild(child *Widget) error {
	const op = "layout.Widget.RemoveChild"
	for i, c := range w.children {
		if c != child {
			continue
		}
		w.children = append(w.children[:i], w.children[i+1:]...)
		child.parent = nil
		child.MarkLayoutDirty()
		w.MarkLayoutDirty()
		return nil
	}
	return report(errors.Newf(op, errors.KindTree,
		"widget %q is not a child of %q", childID(child), w.id))
}

// OnDispose registers cleanup run when the widget is disposed. Disposers run
// in reverse registration order.
func (w *Widget) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if w.disposed {
		errors.Report(errors.New("layout.Widget.OnDispose", errors.KindDispose,
			fmt.Errorf("widget %q is disposed", w.id)))
		return
	}
	w.disposers = append(w.disposers, fn)
}

// Dispose tears down the widget's subtree depth-first, children before the
// widget itself, and then detaches it from its parent. Disposers run in
// reverse registration order. Dispose is idempotent.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	parent := w.parent
	w.dispose()
	if parent != nil {
		_ = parent.RemoveChild(w)
	}
}

func (w *Widget) dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	for _, child := range w.children {
		child.parent = nil
		child.dispose()
	}
	w.children = nil
	for i := len(w.disposers) - 1; i >= 0; i-- {
		w.disposers[i]()
	}
	w.disposers = nil
	w.content = nil
	w.OnEvent = nil
}

// Walk visits the widget and its subtree pre-order, stopping descent where
// fn returns false.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if !fn(w) {
		return
	}
	for _, child := range w.children {
		child.Walk(fn)
	}
}

// FindByID returns the first widget in the subtree with the given id, in
// pre-order, or nil.
func (w *Widget) FindByID(id string) *Widget {
	var found *Widget
	w.Walk(func(c *Widget) bool {
		if found != nil {
			return false
		}
		if c.id == id {
			found = c
			return false
		}
		return true
	})
	return found
}

func (w *Widget) invalidateStyleTree() {
	w.Walk(func(c *Widget) bool {
		c.styleValid = false
		return true
	})
}

func childID(w *Widget) string {
	if w == nil {
		return "<nil>"
	}
	return w.id
}

func report(err *errors.Error) error {
	errors.Report(err)
	return err
}
