package layout

// MarkLayoutDirty flags the widget for re-measure and re-arrange. Layout
// dirt implies paint dirt. Ancestors get a has-dirty-descendant bit; the
// walk stops early at the first ancestor that already carries it, keeping
// marking O(depth) worst case and O(1) amortized for repeated marks.
func (w *Widget) MarkLayoutDirty() {
	if w.disposed {
		return
	}
	w.layoutDirty = true
	w.paintDirty = true
	w.measureValid = false
	for p := w.parent; p != nil; p = p.parent {
		if p.childLayoutDirty && p.childPaintDirty {
			break
		}
		p.childLayoutDirty = true
		p.childPaintDirty = true
	}
}

// MarkPaintDirty flags the widget for repaint without touching layout.
func (w *Widget) MarkPaintDirty() {
	if w.disposed {
		return
	}
	w.paintDirty = true
	for p := w.parent; p != nil; p = p.parent {
		if p.childPaintDirty {
			break
		}
		p.childPaintDirty = true
	}
}

// NeedsLayout reports whether the widget or a descendant is layout-dirty.
func (w *Widget) NeedsLayout() bool {
	return w.layoutDirty || w.childLayoutDirty
}

// NeedsPaint reports whether the widget or a descendant is paint-dirty.
func (w *Widget) NeedsPaint() bool {
	return w.paintDirty || w.childPaintDirty
}

// CollectDirtyRoots returns the topmost dirty widgets of the tree in
// pre-order: each result is dirty (layout or paint) while none of its
// ancestors are, so processing a root covers its whole subtree. Clean
// branches without the descendant bit are never visited.
func CollectDirtyRoots(root *Widget) []*Widget {
	var roots []*Widget
	var walk func(w *Widget)
	walk = func(w *Widget) {
		if w.layoutDirty || w.paintDirty {
			roots = append(roots, w)
			return
		}
		if !w.childLayoutDirty && !w.childPaintDirty {
			return
		}
		for _, child := range w.children {
			walk(child)
		}
	}
	walk(root)
	return roots
}

// recomputeAncestorBits refreshes the has-dirty-descendant bits above a
// processed root. Bits are derived from the children again so siblings that
// are still dirty keep their path marked.
func recomputeAncestorBits(root *Widget) {
	for p := root.parent; p != nil; p = p.parent {
		layoutBit := false
		paintBit := false
		for _, child := range p.children {
			if child.layoutDirty || child.childLayoutDirty {
				layoutBit = true
			}
			if child.paintDirty || child.childPaintDirty {
				paintBit = true
			}
		}
		if p.childLayoutDirty == layoutBit && p.childPaintDirty == paintBit {
			break
		}
		p.childLayoutDirty = layoutBit
		p.childPaintDirty = paintBit
	}
}
