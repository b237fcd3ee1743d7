// Package engine owns the frame loop: it drains input, dispatches events,
// runs the layout engine over dirty roots, and drives the paint walk.
//
// The shell is single-threaded. Everything except Dispatch and the event
// queue's Push must run on the frame-loop goroutine.
package engine

import (
	stderrors "errors"
	"image"
	"sync"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
	"github.com/lumina-ui/lumina/pkg/style"
)

// Config configures a Shell. Zero values get working defaults: a discarding
// canvas, the built-in measurer, and the light theme.
type Config struct {
	// Canvas receives the paint walk. When it also implements
	// graphics.Surface, Present is called after frames that repainted.
	Canvas graphics.Canvas

	Measurer graphics.Measurer
	Theme    *style.ThemeData

	// Size is the window size the root is laid out against.
	Size graphics.Size
}

// Shell drives one widget tree through the frame protocol.
type Shell struct {
	engine *layout.Engine
	root   *layout.Widget
	canvas graphics.Canvas
	size   graphics.Size

	queue events.Queue

	mu            sync.Mutex
	continuations []func()

	hovered *layout.Widget
	pressed *layout.Widget
	focused *layout.Widget
}

// FrameResult reports what one RunFrame call did.
type FrameResult struct {
	// Repainted lists the widgets whose paint-dirty bit was set, in paint
	// order. Widgets redrawn only because an ancestor repainted are not
	// listed.
	Repainted []*layout.Widget

	// Err is the first failure of the frame. Failures are isolated per
	// dirty root; the rest of the frame still ran.
	Err error
}

// NewShell creates a shell from the config.
func NewShell(cfg Config) *Shell {
	canvas := cfg.Canvas
	if canvas == nil {
		canvas = &discardCanvas{size: cfg.Size}
	}
	return &Shell{
		engine: layout.NewEngine(cfg.Measurer, cfg.Theme),
		canvas: canvas,
		size:   cfg.Size,
	}
}

// Root returns the attached root widget, or nil.
func (s *Shell) Root() *layout.Widget { return s.root }

// Theme returns the active theme.
func (s *Shell) Theme() *style.ThemeData { return s.engine.Theme() }

// Engine returns the underlying layout engine.
func (s *Shell) Engine() *layout.Engine { return s.engine }

// AttachRoot installs the tree root. The widget must be detached, undisposed,
// and not already rooted elsewhere.
func (s *Shell) AttachRoot(root *layout.Widget) error {
	const op = "engine.Shell.AttachRoot"
	switch {
	case root == nil:
		err := errors.New(op, errors.KindTree, stderrors.New("nil root"))
		errors.Report(err)
		return err
	case root.Parent() != nil:
		err := errors.Newf(op, errors.KindTree, "widget %q has a parent", root.ID())
		errors.Report(err)
		return err
	case root.IsDisposed():
		err := errors.Newf(op, errors.KindTree, "widget %q is disposed", root.ID())
		errors.Report(err)
		return err
	}
	s.root = root
	root.MarkLayoutDirty()
	return nil
}

// SetSize updates the window size, invalidating the whole root layout.
func (s *Shell) SetSize(size graphics.Size) {
	size = size.Sanitize()
	if s.size == size {
		return
	}
	s.size = size
	if s.root != nil {
		s.root.MarkLayoutDirty()
	}
}

// Size returns the current window size.
func (s *Shell) Size() graphics.Size { return s.size }

// SetTheme replaces the theme wholesale and invalidates the full tree.
// There is no partial theme mutation.
func (s *Shell) SetTheme(theme *style.ThemeData) {
	s.engine.SetTheme(theme, s.root)
}

// PushEvent queues an input event for the next frame. Safe from any
// goroutine.
func (s *Shell) PushEvent(e events.Event) {
	s.queue.Push(e)
}

// Dispatch queues a continuation to run at the start of the next frame.
// This is the hand-off point for background goroutines that need to touch
// cells or widgets.
func (s *Shell) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.continuations = append(s.continuations, fn)
	s.mu.Unlock()
}

// DisposeWidget disposes a widget and drops any dispatcher references to it
// so no further events are routed there.
func (s *Shell) DisposeWidget(w *layout.Widget) {
	if w == nil {
		return
	}
	if s.root == w {
		s.root = nil
	}
	w.Dispose()
	s.dropDisposedRefs()
}

// RunFrame executes one frame: continuations, event dispatch, layout over
// dirty roots, then paint. Extra events are dispatched after the queued
// ones. Returns the repainted widgets.
func (s *Shell) RunFrame(extra ...events.Event) FrameResult {
	var result FrameResult

	s.mu.Lock()
	continuations := s.continuations
	s.continuations = nil
	s.mu.Unlock()
	for _, fn := range continuations {
		s.runContinuation(fn)
	}

	for _, e := range s.queue.Drain() {
		s.dispatchEvent(e)
	}
	for _, e := range extra {
		s.dispatchEvent(e)
	}
	s.dropDisposedRefs()

	if s.root == nil {
		return result
	}

	if _, err := s.engine.LayoutDirty(s.root, s.size); err != nil {
		result.Err = err
	}

	for _, root := range layout.CollectDirtyRoots(s.root) {
		repainted, err := s.engine.PaintRoot(root, s.canvas)
		result.Repainted = append(result.Repainted, repainted...)
		if err != nil && result.Err == nil {
			result.Err = err
		}
	}

	if surface, ok := s.canvas.(graphics.Surface); ok && len(result.Repainted) > 0 {
		surface.Present()
	}
	return result
}

// RecordFrame paints the full tree into a replayable display list, for
// embedders that retain a command buffer instead of drawing immediately.
// The tree should be layout-clean; callers typically RunFrame first.
func (s *Shell) RecordFrame() (*graphics.DisplayList, error) {
	var rec graphics.Recorder
	canvas := rec.BeginRecording(s.size)
	var err error
	if s.root != nil {
		_, err = s.engine.PaintRoot(s.root, canvas)
	}
	return rec.EndRecording(), err
}

func (s *Shell) runContinuation(fn func()) {
	defer errors.Recover("engine.Shell.RunFrame")
	fn()
}

func (s *Shell) dropDisposedRefs() {
	if s.hovered != nil && s.hovered.IsDisposed() {
		s.hovered = nil
	}
	if s.pressed != nil && s.pressed.IsDisposed() {
		s.pressed = nil
	}
	if s.focused != nil && s.focused.IsDisposed() {
		s.focused = nil
	}
}

// discardCanvas satisfies graphics.Canvas for headless shells.
type discardCanvas struct {
	size graphics.Size
}

func (c *discardCanvas) Save()                                           {}
func (c *discardCanvas) Restore()                                        {}
func (c *discardCanvas) Translate(dx, dy float64)                        {}
func (c *discardCanvas) ClipRect(graphics.Rect)                          {}
func (c *discardCanvas) Clear(graphics.Color)                            {}
func (c *discardCanvas) DrawRect(graphics.Rect, graphics.Paint)          {}
func (c *discardCanvas) DrawLine(_, _ graphics.Offset, _ graphics.Paint) {}
func (c *discardCanvas) DrawText(*graphics.TextLayout, graphics.Offset)  {}
func (c *discardCanvas) DrawImage(image.Image, graphics.Offset)          {}
func (c *discardCanvas) Size() graphics.Size                             { return c.size }
