package layout

import "github.com/lumina-ui/lumina/pkg/graphics"

// HitTest returns the deepest interactive visible widget containing the
// point, in root coordinates, or nil. Children are tested in reverse paint
// order so the topmost sibling wins. A non-interactive widget is never the
// target itself but its children still participate.
func HitTest(root *Widget, point graphics.Offset) *Widget {
	if root == nil {
		return nil
	}
	return hitTest(root, point)
}

// hitTest takes the point in the widget's parent coordinate space.
func hitTest(w *Widget, point graphics.Offset) *Widget {
	if w.disposed || !w.visible || !w.frame.Contains(point) {
		return nil
	}
	local := point.Sub(w.frame.Origin())
	for i := len(w.children) - 1; i >= 0; i-- {
		if target := hitTest(w.children[i], local); target != nil {
			return target
		}
	}
	if !w.interactive {
		return nil
	}
	return w
}
