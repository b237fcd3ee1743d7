package widgets

import (
	"testing"

	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
	"github.com/lumina-ui/lumina/pkg/style"
	"github.com/lumina-ui/lumina/pkg/uitest"
)

// fruitTable mounts a two-column table with two rows per page. With the
// default 16px padding the content box starts at (16,16): the header band
// covers y 16-72 and the two visible rows cover y 72-168.
func fruitTable(t *testing.T) (*uitest.Harness, *layout.Widget, *DataTableContent) {
	t.Helper()
	table := DataTable("table",
		[]TableColumn{{Title: "Name", Width: 100}, {Title: "Qty", Width: 100}},
		[][]string{
			{"banana", "3"},
			{"apple", "1"},
			{"cherry", "2"},
			{"date", "4"},
		})
	content := table.Content().(*DataTableContent)
	content.RowsPerPage = 2
	h := pumpSized(t, table, graphics.Size{Width: 400, Height: 400})
	return h, table, content
}

func TestDataTableRendersHeaderAndCurrentPage(t *testing.T) {
	h, _, _ := fruitTable(t)
	canvas := h.Canvas()

	for _, text := range []string{"Name", "Qty", "banana", "apple", "Page 1 of 2"} {
		if !canvas.HasText(text) {
			t.Errorf("missing %q on the first page", text)
		}
	}
	if canvas.HasText("cherry") {
		t.Error("second-page cell painted on the first page")
	}
}

func TestHeaderClickSortsAndTogglesDirection(t *testing.T) {
	h, _, content := fruitTable(t)

	h.TapAt(graphics.Offset{X: 66, Y: 40})
	if got := content.Rows()[0].Cells[0]; got != "apple" {
		t.Errorf("first row after ascending sort = %q, want apple", got)
	}

	h.TapAt(graphics.Offset{X: 66, Y: 40})
	if got := content.Rows()[0].Cells[0]; got != "date" {
		t.Errorf("first row after descending sort = %q, want date", got)
	}
}

func TestRowClickSelectsAndNotifies(t *testing.T) {
	h, _, content := fruitTable(t)

	var clicked *TableRow
	var selection []*TableRow
	content.OnRowClick = func(row *TableRow) { clicked = row }
	content.OnSelectionChange = func(rows []*TableRow) { selection = rows }

	h.TapAt(graphics.Offset{X: 100, Y: 96})

	if clicked == nil || clicked.Cells[0] != "banana" {
		t.Fatalf("clicked row = %+v, want banana", clicked)
	}
	if len(selection) != 1 || selection[0] != clicked {
		t.Errorf("selection = %v, want the clicked row only", selection)
	}
	if !h.Canvas().FillsWith(style.LightColorScheme().Primary.WithAlpha(0x1E)) {
		t.Error("selected row painted without the selection fill")
	}
}

func TestSelectionFollowsRowThroughSort(t *testing.T) {
	h, _, content := fruitTable(t)

	h.TapAt(graphics.Offset{X: 100, Y: 96}) // banana, first row of page one
	h.TapAt(graphics.Offset{X: 66, Y: 40})  // sort ascending by name

	selected := content.Selected()
	if len(selected) != 1 || selected[0].Cells[0] != "banana" {
		t.Errorf("selection after sorting = %+v, want banana", selected)
	}
	if got := content.Page(); got != 0 {
		t.Errorf("page after sorting = %d, want 0", got)
	}
}

func TestPaginationMovesBetweenPages(t *testing.T) {
	h, _, content := fruitTable(t)
	next := graphics.Offset{X: 150, Y: 354}
	previous := graphics.Offset{X: 60, Y: 354}

	h.Canvas().Reset()
	h.TapAt(next)
	if got := content.Page(); got != 1 {
		t.Fatalf("page after next = %d, want 1", got)
	}
	canvas := h.Canvas()
	if !canvas.HasText("cherry") || !canvas.HasText("Page 2 of 2") {
		t.Error("second page cells not painted after next")
	}

	h.Canvas().Reset()
	h.TapAt(next)
	if got := content.Page(); got != 1 {
		t.Errorf("page after next on the last page = %d, want 1", got)
	}

	h.TapAt(previous)
	if got := content.Page(); got != 0 {
		t.Errorf("page after previous = %d, want 0", got)
	}
}

func TestHoveredRowHighlights(t *testing.T) {
	h, _, _ := fruitTable(t)

	h.MoveTo(graphics.Offset{X: 100, Y: 96})
	h.Pump()
	if !h.Canvas().FillsWith(style.LightColorScheme().OnBackground.WithAlpha(0x0A)) {
		t.Error("hovered row painted without the hover fill")
	}

	h.MoveTo(graphics.Offset{X: 100, Y: 40})
	hover := h.FindByID("table").Content().(*DataTableContent).hoveredRow
	if hover != -1 {
		t.Errorf("hoveredRow over the header = %d, want -1", hover)
	}
}
