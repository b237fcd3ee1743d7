package widgets

import (
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
	"github.com/lumina-ui/lumina/pkg/style"
)

// Text creates a text widget.
func Text(id, text string) *layout.Widget {
	return layout.NewWidget(id, NewText(text))
}

// Box creates a plain container with no content behavior.
func Box(id string, children ...*layout.Widget) *layout.Widget {
	return withChildren(layout.NewWidget(id, nil), children)
}

// Row creates a horizontal flex container.
func Row(id string, children ...*layout.Widget) *layout.Widget {
	return withChildren(layout.NewWidget(id, &FlexContent{Axis: AxisHorizontal}), children)
}

// Column creates a vertical flex container.
func Column(id string, children ...*layout.Widget) *layout.Widget {
	return withChildren(layout.NewWidget(id, &FlexContent{Axis: AxisVertical}), children)
}

// Overlap creates a stacking container.
func Overlap(id string, children ...*layout.Widget) *layout.Widget {
	return withChildren(layout.NewWidget(id, &OverlapContent{}), children)
}

// Button creates a clickable button widget.
func Button(id, label string, onClick func()) *layout.Widget {
	return layout.NewWidget(id, &ButtonContent{Label: label, OnClick: onClick})
}

// Input creates a text-input widget. Edits flow through the content's value
// cell; the cell is disposed with the widget.
func Input(id, initial string) *layout.Widget {
	content := NewInput(initial)
	w := layout.NewWidget(id, content)
	ObserveLayout(w, content.Value())
	w.OnDispose(content.Value().Dispose)
	return w
}

// Scrollable creates a vertically scrolling viewport around the child.
func Scrollable(id string, child *layout.Widget) *layout.Widget {
	return withChildren(layout.NewWidget(id, NewScrollable()), []*layout.Widget{child})
}

// DataTable creates a data-table widget with the default padding.
func DataTable(id string, columns []TableColumn, rows [][]string) *layout.Widget {
	w := layout.NewWidget(id, NewDataTable(columns, rows))
	w.SetStyle(style.Style{Padding: style.InsetsPtr(graphics.EdgeInsetsAll(16))})
	return w
}

// Spacer creates a fixed-size filler widget.
func Spacer(id string, size graphics.Size) *layout.Widget {
	w := layout.NewWidget(id, &SpacerContent{Size: size})
	w.SetInteractive(false)
	return w
}

func withChildren(w *layout.Widget, children []*layout.Widget) *layout.Widget {
	for _, child := range children {
		if err := w.AppendChild(child); err != nil {
			child.Dispose()
		}
	}
	return w
}
