// Package uitest provides a headless harness for driving widget trees
// through frames: deterministic text metrics, a recording canvas, and
// pointer/keyboard simulation.
package uitest

import (
	"testing"
	"time"

	"github.com/lumina-ui/lumina/pkg/engine"
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
	"github.com/lumina-ui/lumina/pkg/style"
)

const (
	// DefaultTestWidth is the default logical width for the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test window.
	DefaultTestHeight = 600
)

// Harness drives one widget tree through the same frame protocol the shell
// runs in production, with a recording canvas instead of a real surface.
type Harness struct {
	shell  *engine.Shell
	canvas *RecordingCanvas
	now    time.Time
}

// NewHarness creates a harness with the default window size, the built-in
// deterministic measurer, and the light theme.
func NewHarness() *Harness {
	return NewHarnessWithConfig(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}, nil)
}

// NewHarnessWithT creates a harness that disposes its tree via t.Cleanup.
// This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T) *Harness {
	h := NewHarness()
	t.Cleanup(h.Cleanup)
	return h
}

// NewHarnessWithConfig creates a harness with an explicit window size and
// theme. A nil theme means the default light theme.
func NewHarnessWithConfig(size graphics.Size, theme *style.ThemeData) *Harness {
	canvas := NewRecordingCanvas(size)
	return &Harness{
		shell: engine.NewShell(engine.Config{
			Canvas: canvas,
			Theme:  theme,
			Size:   size,
		}),
		canvas: canvas,
		now:    time.Unix(0, 0),
	}
}

// Cleanup disposes the mounted tree.
func (h *Harness) Cleanup() {
	if root := h.shell.Root(); root != nil {
		h.shell.DisposeWidget(root)
	}
}

// Shell returns the underlying shell.
func (h *Harness) Shell() *engine.Shell { return h.shell }

// Canvas returns the recording canvas the paint walk draws into.
func (h *Harness) Canvas() *RecordingCanvas { return h.canvas }

// SetSize resizes the window, invalidating the root layout.
func (h *Harness) SetSize(size graphics.Size) {
	h.shell.SetSize(size)
	h.canvas.size = size
}

// SetTheme replaces the theme wholesale.
func (h *Harness) SetTheme(theme *style.ThemeData) {
	h.shell.SetTheme(theme)
}

// PumpWidget mounts (or remounts) a root widget and runs one frame.
func (h *Harness) PumpWidget(root *layout.Widget) engine.FrameResult {
	if old := h.shell.Root(); old != nil && old != root {
		h.shell.DisposeWidget(old)
	}
	if h.shell.Root() == nil {
		if err := h.shell.AttachRoot(root); err != nil {
			return engine.FrameResult{Err: err}
		}
	}
	return h.Pump()
}

// Pump runs one frame: queued continuations, event dispatch, layout, paint.
func (h *Harness) Pump() engine.FrameResult {
	return h.shell.RunFrame()
}

// PumpUntilClean pumps until no widget is dirty, up to maxFrames. Returns
// the number of frames run.
func (h *Harness) PumpUntilClean(maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		h.Pump()
		root := h.shell.Root()
		if root == nil || (!root.NeedsLayout() && !root.NeedsPaint()) {
			return i + 1
		}
	}
	return maxFrames
}

// FindByID returns the widget with the given id in the mounted tree, or nil.
func (h *Harness) FindByID(id string) *layout.Widget {
	root := h.shell.Root()
	if root == nil {
		return nil
	}
	return root.FindByID(id)
}

func (h *Harness) tick() time.Time {
	h.now = h.now.Add(time.Millisecond)
	return h.now
}

// MoveTo dispatches a pointer move to the given root-space position and
// runs a frame.
func (h *Harness) MoveTo(pos graphics.Offset) engine.FrameResult {
	return h.shell.RunFrame(events.Event{
		Kind:      events.KindPointerMove,
		Timestamp: h.tick(),
		Position:  pos,
	})
}

// PressAt dispatches a pointer down at the position and runs a frame.
func (h *Harness) PressAt(pos graphics.Offset) engine.FrameResult {
	return h.shell.RunFrame(events.Event{
		Kind:      events.KindPointerDown,
		Timestamp: h.tick(),
		Position:  pos,
	})
}

// ReleaseAt dispatches a pointer up at the position and runs a frame.
func (h *Harness) ReleaseAt(pos graphics.Offset) engine.FrameResult {
	return h.shell.RunFrame(events.Event{
		Kind:      events.KindPointerUp,
		Timestamp: h.tick(),
		Position:  pos,
	})
}

// TapAt presses and releases at the same position, across two frames.
func (h *Harness) TapAt(pos graphics.Offset) {
	h.PressAt(pos)
	h.ReleaseAt(pos)
}

// Tap taps the center of the widget with the given id. No-op when the
// widget is missing.
func (h *Harness) Tap(id string) {
	w := h.FindByID(id)
	if w == nil {
		return
	}
	h.TapAt(w.AbsoluteFrame().Center())
}

// ScrollAt dispatches a scroll with the given delta at the position and
// runs a frame.
func (h *Harness) ScrollAt(pos, delta graphics.Offset) engine.FrameResult {
	return h.shell.RunFrame(events.Event{
		Kind:      events.KindScroll,
		Timestamp: h.tick(),
		Position:  pos,
		Delta:     delta,
	})
}

// TypeKey dispatches a key down for a named key ("enter", "backspace").
func (h *Harness) TypeKey(key string) engine.FrameResult {
	return h.shell.RunFrame(events.Event{
		Kind:      events.KindKeyDown,
		Timestamp: h.tick(),
		Key:       key,
	})
}

// TypeText dispatches one key down per rune, then runs a final frame.
func (h *Harness) TypeText(text string) {
	for _, r := range text {
		h.shell.PushEvent(events.Event{
			Kind:      events.KindKeyDown,
			Timestamp: h.tick(),
			Key:       string(r),
			Rune:      r,
		})
	}
	h.Pump()
}
