package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/style"
)

func quietErrors(t *testing.T) {
	t.Helper()
	errors.SetHandler(nopHandler{})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

type nopHandler struct{}

func (nopHandler) HandleError(*errors.Error)      {}
func (nopHandler) HandlePanic(*errors.PanicError) {}

func TestAttachRejectsParentedChild(t *testing.T) {
	quietErrors(t)
	a := NewWidget("a", nil)
	b := NewWidget("b", nil)
	child := NewWidget("child", nil)
	mustAttach(t, a, child)

	err := b.AppendChild(child)
	if !errors.IsMalformedTreeOperation(err) {
		t.Fatalf("AppendChild = %v, want KindTree", err)
	}
	if child.Parent() != a {
		t.Error("failed attach changed the child's parent")
	}
}

func TestAttachRejectsCycle(t *testing.T) {
	quietErrors(t)
	root := NewWidget("root", nil)
	child := NewWidget("child", nil)
	mustAttach(t, root, child)

	if err := child.AppendChild(root); !errors.IsMalformedTreeOperation(err) {
		t.Fatalf("cycle attach = %v, want KindTree", err)
	}
}

func TestRemoveChildNotAChild(t *testing.T) {
	quietErrors(t)
	a := NewWidget("a", nil)
	stranger := NewWidget("stranger", nil)
	if err := a.RemoveChild(stranger); !errors.IsMalformedTreeOperation(err) {
		t.Fatalf("RemoveChild = %v, want KindTree", err)
	}
}

func TestRemoveChildInvalidatesParent(t *testing.T) {
	root, a, b, _ := buildChain(t)
	if err := a.RemoveChild(b); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	if !a.layoutDirty {
		t.Error("removal left the parent layout-clean")
	}
	if b.Parent() != nil {
		t.Error("removed child kept its parent pointer")
	}
	_ = root
}

func TestInsertChildOrdering(t *testing.T) {
	root := NewWidget("root", nil)
	first := NewWidget("first", nil)
	third := NewWidget("third", nil)
	second := NewWidget("second", nil)
	mustAttach(t, root, first)
	mustAttach(t, root, third)
	if err := root.InsertChild(1, second); err != nil {
		t.Fatalf("InsertChild: %v", err)
	}

	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, ids(root.Children())); diff != "" {
		t.Errorf("child order mismatch (-want +got):\n%s", diff)
	}
}

func TestDisposeCascadesDepthFirstWithLIFODisposers(t *testing.T) {
	root, a, _, leaf := buildChain(t)
	var order []string
	root.OnDispose(func() { order = append(order, "root-1") })
	root.OnDispose(func() { order = append(order, "root-2") })
	leaf.OnDispose(func() { order = append(order, "leaf") })

	root.Dispose()

	// Children tear down before their parents; within a widget, disposers
	// run in reverse registration order.
	want := []string{"leaf", "root-2", "root-1"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("dispose order mismatch (-want +got):\n%s", diff)
	}
	for _, w := range []*Widget{root, a, leaf} {
		if !w.IsDisposed() {
			t.Errorf("%s not disposed", w.ID())
		}
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	w := NewWidget("w", nil)
	calls := 0
	w.OnDispose(func() { calls++ })
	w.Dispose()
	w.Dispose()
	if calls != 1 {
		t.Errorf("disposers ran %d times, want 1", calls)
	}
}

func TestDisposeDetachesFromParent(t *testing.T) {
	_, a, b, _ := buildChain(t)
	b.Dispose()
	if len(a.Children()) != 0 {
		t.Error("disposed child still attached")
	}
	if !a.layoutDirty {
		t.Error("parent not invalidated by child disposal")
	}
}

func TestDisposeTearsDownChildrenBeforeDetaching(t *testing.T) {
	root, a, b, leaf := buildChain(t)
	var parentAtLeafTeardown *Widget
	leaf.OnDispose(func() { parentAtLeafTeardown = b.Parent() })

	b.Dispose()

	// The subtree tears down while the widget is still attached; the parent
	// link is severed last.
	if parentAtLeafTeardown != a {
		t.Errorf("parent during subtree teardown = %v, want %q", parentAtLeafTeardown, a.ID())
	}
	if b.Parent() != nil {
		t.Error("disposed widget still has a parent")
	}
	_ = root
}

func TestDisposeOfAttachedWidgetReportsNothing(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	_, a, b, _ := buildChain(t)
	b.Dispose()

	if len(handler.errs) != 0 || len(handler.panics) != 0 {
		t.Errorf("dispose reported %d errors, %d panics, want none",
			len(handler.errs), len(handler.panics))
	}
	if len(a.Children()) != 0 {
		t.Error("disposed child still attached")
	}
}

func TestOnDisposeAfterDisposeReports(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	w := NewWidget("w", nil)
	w.Dispose()
	w.OnDispose(func() {})

	if len(handler.errs) != 1 || handler.errs[0].Kind != errors.KindDispose {
		t.Errorf("errors = %+v, want one KindDispose", handler.errs)
	}
}

func TestFindByID(t *testing.T) {
	root, _, _, leaf := buildChain(t)
	if got := root.FindByID("leaf"); got != leaf {
		t.Errorf("FindByID(leaf) = %v", got)
	}
	if got := root.FindByID("missing"); got != nil {
		t.Errorf("FindByID(missing) = %v, want nil", got)
	}
}

func TestSetStyleInvalidatesSubtree(t *testing.T) {
	root, a, _, leaf := buildChain(t)
	root.Walk(func(w *Widget) bool {
		w.styleValid = true
		return true
	})

	bg := style.ColorPtr(0xFF123456)
	a.SetStyle(style.Style{Background: bg})

	if root.styleValid != true {
		t.Error("style change climbed above the widget")
	}
	if a.styleValid || leaf.styleValid {
		t.Error("style change did not ripple down the subtree")
	}
	if !a.layoutDirty {
		t.Error("style change did not invalidate layout")
	}
}

type captureHandler struct {
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.Error)      { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }
