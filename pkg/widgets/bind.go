package widgets

import (
	"github.com/lumina-ui/lumina/pkg/layout"
	"github.com/lumina-ui/lumina/pkg/reactive"
)

// Listenable is any reactive source a widget can observe. Both Cell and
// Computed satisfy it.
type Listenable interface {
	Subscribe(fn func()) *reactive.Subscription
}

// ObserveLayout re-lays-out the widget whenever the source changes. The
// subscription is torn down with the widget.
func ObserveLayout(w *layout.Widget, src Listenable) {
	sub := src.Subscribe(w.MarkLayoutDirty)
	w.OnDispose(sub.Dispose)
}

// ObservePaint repaints the widget whenever the source changes.
func ObservePaint(w *layout.Widget, src Listenable) {
	sub := src.Subscribe(w.MarkPaintDirty)
	w.OnDispose(sub.Dispose)
}

// BindText keeps a text widget's content in sync with a string source. The
// widget shows the source's current value immediately and follows every
// change until it is disposed.
func BindText[S interface {
	Listenable
	Get() string
}](w *layout.Widget, src S) {
	tc, ok := w.Content().(*TextContent)
	if !ok {
		return
	}
	tc.SetText(w, src.Get())
	sub := src.Subscribe(func() {
		tc.SetText(w, src.Get())
	})
	w.OnDispose(sub.Dispose)
}
