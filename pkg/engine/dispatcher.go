package engine

import (
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/layout"
)

// Focusable is implemented by contents that accept keyboard focus. The
// dispatcher moves focus on pointer press; key events route to the focused
// widget first.
type Focusable interface {
	SetFocused(focused bool)
	Focused() bool
}

// dispatchEvent routes one event through hit testing, the hover/press state
// machine, and bubbling. Click, enter, and leave are synthesized here and
// never accepted from outside.
func (s *Shell) dispatchEvent(e events.Event) {
	if s.root == nil {
		return
	}
	s.dropDisposedRefs()

	switch e.Kind {
	case events.KindPointerMove:
		target := layout.HitTest(s.root, e.Position)
		s.updateHover(target, e)
		s.bubble(target, e)
	case events.KindScroll:
		s.bubble(layout.HitTest(s.root, e.Position), e)
	case events.KindPointerDown:
		s.pointerDown(e)
	case events.KindPointerUp:
		s.pointerUp(e)
	case events.KindKeyDown, events.KindKeyUp:
		s.key(e)
	}
}

func (s *Shell) pointerDown(e events.Event) {
	target := layout.HitTest(s.root, e.Position)
	s.updateHover(target, e)
	s.pressed = target
	if target != nil {
		target.SetPressed(true)
	}
	s.updateFocus(target)
	s.bubble(target, e)
}

// pointerUp releases the press. A click is synthesized only when the press
// started and ended inside the same widget; releasing after dragging off
// produces no click.
func (s *Shell) pointerUp(e events.Event) {
	target := layout.HitTest(s.root, e.Position)
	s.updateHover(target, e)
	s.bubble(target, e)

	pressed := s.pressed
	s.pressed = nil
	if pressed == nil || pressed.IsDisposed() {
		return
	}
	pressed.SetPressed(false)
	if pressed.AbsoluteFrame().Contains(e.Position) {
		click := e
		click.Kind = events.KindClick
		s.bubble(pressed, click)
	}
}

func (s *Shell) key(e events.Event) {
	target := s.focused
	if target == nil {
		target = s.root
	}
	s.bubble(target, e)
}

// updateHover synthesizes enter/leave as the hovered widget changes.
// Enter and leave are delivered to their widget directly, without bubbling.
func (s *Shell) updateHover(target *layout.Widget, e events.Event) {
	if target == s.hovered {
		return
	}
	if old := s.hovered; old != nil && !old.IsDisposed() {
		old.SetHovered(false)
		leave := e
		leave.Kind = events.KindPointerLeave
		s.deliver(old, leave)
	}
	s.hovered = target
	if target != nil {
		target.SetHovered(true)
		enter := e
		enter.Kind = events.KindPointerEnter
		s.deliver(target, enter)
	}
}

// updateFocus moves keyboard focus to the nearest focusable content at or
// above the press target, or clears it when there is none.
func (s *Shell) updateFocus(target *layout.Widget) {
	var next *layout.Widget
	var nextContent Focusable
	for w := target; w != nil; w = w.Parent() {
		if f, ok := w.Content().(Focusable); ok {
			next, nextContent = w, f
			break
		}
	}
	if next == s.focused {
		return
	}
	if old := s.focused; old != nil && !old.IsDisposed() {
		if f, ok := old.Content().(Focusable); ok {
			f.SetFocused(false)
		}
		old.MarkPaintDirty()
	}
	s.focused = next
	if next != nil {
		nextContent.SetFocused(true)
		next.MarkPaintDirty()
	}
}

// bubble walks from the target to the root, stopping at the first consumer.
func (s *Shell) bubble(target *layout.Widget, e events.Event) {
	for w := target; w != nil; w = w.Parent() {
		if s.deliver(w, e) {
			return
		}
	}
}

// deliver offers the event to one widget: the OnEvent hook first, then the
// content.
func (s *Shell) deliver(w *layout.Widget, e events.Event) bool {
	if w == nil || w.IsDisposed() {
		return false
	}
	if w.OnEvent != nil && w.OnEvent(w, e) {
		return true
	}
	if content := w.Content(); content != nil {
		return content.HandleEvent(w, e)
	}
	return false
}

// Focused returns the widget holding keyboard focus, or nil.
func (s *Shell) Focused() *layout.Widget { return s.focused }

// Hovered returns the widget currently under the pointer, or nil.
func (s *Shell) Hovered() *layout.Widget { return s.hovered }
