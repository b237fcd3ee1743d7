package layout

import (
	"testing"
)

// buildChain returns root -> a -> b -> leaf, all clean.
func buildChain(t *testing.T) (root, a, b, leaf *Widget) {
	t.Helper()
	root = NewWidget("root", nil)
	a = NewWidget("a", nil)
	b = NewWidget("b", nil)
	leaf = NewWidget("leaf", nil)
	mustAttach(t, root, a)
	mustAttach(t, a, b)
	mustAttach(t, b, leaf)
	clean(root)
	return root, a, b, leaf
}

func mustAttach(t *testing.T, parent, child *Widget) {
	t.Helper()
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild(%s, %s): %v", parent.ID(), child.ID(), err)
	}
}

// clean drops all dirty state, simulating a completed frame.
func clean(w *Widget) {
	w.Walk(func(c *Widget) bool {
		c.layoutDirty = false
		c.paintDirty = false
		c.childLayoutDirty = false
		c.childPaintDirty = false
		return true
	})
}

func TestMarkLayoutDirtySetsAncestorBits(t *testing.T) {
	root, a, b, leaf := buildChain(t)

	leaf.MarkLayoutDirty()

	if !leaf.layoutDirty || !leaf.paintDirty {
		t.Error("marked widget missing its own dirty bits")
	}
	for _, anc := range []*Widget{b, a, root} {
		if anc.layoutDirty {
			t.Errorf("%s: ancestor got layoutDirty, want descendant bit only", anc.ID())
		}
		if !anc.childLayoutDirty || !anc.childPaintDirty {
			t.Errorf("%s: missing has-dirty-descendant bits", anc.ID())
		}
	}
}

func TestMarkPaintDirtyLeavesLayoutClean(t *testing.T) {
	root, _, _, leaf := buildChain(t)

	leaf.MarkPaintDirty()

	if leaf.layoutDirty {
		t.Error("paint mark set layoutDirty")
	}
	if !leaf.paintDirty {
		t.Error("paint mark missing paintDirty")
	}
	if root.childLayoutDirty {
		t.Error("paint mark set ancestor layout bit")
	}
	if !root.childPaintDirty {
		t.Error("paint mark missing ancestor paint bit")
	}
}

func TestCollectDirtyRootsReturnsTopmost(t *testing.T) {
	root, a, _, leaf := buildChain(t)

	a.MarkLayoutDirty()
	leaf.MarkLayoutDirty()

	roots := CollectDirtyRoots(root)
	if len(roots) != 1 || roots[0] != a {
		t.Fatalf("roots = %v, want [a]: a dirty ancestor covers its dirty descendants", ids(roots))
	}
}

func TestCollectDirtyRootsPreOrder(t *testing.T) {
	root := NewWidget("root", nil)
	first := NewWidget("first", nil)
	second := NewWidget("second", nil)
	nested := NewWidget("nested", nil)
	mustAttach(t, root, first)
	mustAttach(t, root, second)
	mustAttach(t, second, nested)
	clean(root)

	nested.MarkPaintDirty()
	first.MarkLayoutDirty()

	roots := CollectDirtyRoots(root)
	want := []string{"first", "nested"}
	got := ids(roots)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("roots = %v, want %v", got, want)
	}
}

func TestCollectDirtyRootsCleanTree(t *testing.T) {
	root, _, _, _ := buildChain(t)
	if roots := CollectDirtyRoots(root); len(roots) != 0 {
		t.Errorf("clean tree produced roots %v", ids(roots))
	}
}

func TestMarkDisposedWidgetIsNoOp(t *testing.T) {
	root, _, _, leaf := buildChain(t)
	leaf.Dispose()
	clean(root)

	leaf.MarkLayoutDirty()
	if roots := CollectDirtyRoots(root); len(roots) != 0 {
		t.Errorf("disposed widget produced dirty roots %v", ids(roots))
	}
}

func ids(ws []*Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID()
	}
	return out
}
