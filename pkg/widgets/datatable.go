package widgets

import (
	"fmt"
	"sort"

	"github.com/lumina-ui/lumina/pkg/errors"
	"github.com/lumina-ui/lumina/pkg/events"
	"github.com/lumina-ui/lumina/pkg/graphics"
	"github.com/lumina-ui/lumina/pkg/layout"
)

const (
	tableRowHeight        = 48
	tableHeaderHeight     = 56
	tablePaginationHeight = 60
	tableCellInset        = 12
	tableColumnWidth      = 150

	pageButtonWidth  = 80
	pageButtonHeight = 30
)

// TableColumn describes one column of a data table.
type TableColumn struct {
	Title string
	// Width is the column width in logical pixels; zero means the default.
	Width float64
}

// TableRow is one row of cell values, column-ordered. Rows are identified by
// pointer, so selection follows a row through sorting.
type TableRow struct {
	Cells []string
}

// DataTableContent renders rows of string cells under a sortable header,
// with single-row selection and page navigation. Clicking a header sorts by
// that column, toggling direction on repeat clicks; sorting resets to the
// first page.
type DataTableContent struct {
	Columns     []TableColumn
	Selectable  bool
	Sortable    bool
	Paginated   bool
	RowsPerPage int

	OnRowClick        func(*TableRow)
	OnSelectionChange func([]*TableRow)

	rows       []*TableRow
	sortColumn int
	sortDesc   bool
	page       int
	selected   map[*TableRow]struct{}
	hoveredRow int

	headerLayouts []*graphics.TextLayout
	cellLayouts   [][]*graphics.TextLayout
	pageInfo      *graphics.TextLayout
	prevLabel     *graphics.TextLayout
	nextLabel     *graphics.TextLayout
}

// NewDataTable creates table content with selection, sorting, and pagination
// enabled.
func NewDataTable(columns []TableColumn, rows [][]string) *DataTableContent {
	d := &DataTableContent{
		Columns:     columns,
		Selectable:  true,
		Sortable:    true,
		Paginated:   true,
		RowsPerPage: 10,
		sortColumn:  -1,
		selected:    map[*TableRow]struct{}{},
		hoveredRow:  -1,
	}
	for _, cells := range rows {
		d.rows = append(d.rows, &TableRow{Cells: cells})
	}
	return d
}

// Rows returns the backing rows in their current (possibly sorted) order.
func (d *DataTableContent) Rows() []*TableRow { return d.rows }

// Selected returns the selected rows in data order.
func (d *DataTableContent) Selected() []*TableRow {
	var out []*TableRow
	for _, row := range d.rows {
		if _, ok := d.selected[row]; ok {
			out = append(out, row)
		}
	}
	return out
}

// Page returns the zero-based current page.
func (d *DataTableContent) Page() int { return d.page }

// TotalPages returns the page count; an unpaginated table has one page.
func (d *DataTableContent) TotalPages() int {
	if !d.paginationActive() {
		return 1
	}
	return (len(d.rows) + d.RowsPerPage - 1) / d.RowsPerPage
}

// SetPage moves to the given page, clamped to the valid range.
func (d *DataTableContent) SetPage(w *layout.Widget, page int) {
	if page < 0 {
		page = 0
	}
	if last := d.TotalPages() - 1; page > last {
		page = last
	}
	if page == d.page {
		return
	}
	d.page = page
	w.MarkLayoutDirty()
}

// SortBy sorts the rows by the given column, toggling direction when the
// column is already the sort key, and returns to the first page.
func (d *DataTableContent) SortBy(w *layout.Widget, column int) {
	if column < 0 || column >= len(d.Columns) {
		return
	}
	if d.sortColumn == column {
		d.sortDesc = !d.sortDesc
	} else {
		d.sortColumn = column
		d.sortDesc = false
	}
	desc := d.sortDesc
	sort.SliceStable(d.rows, func(i, j int) bool {
		a, b := d.rows[i].cell(column), d.rows[j].cell(column)
		if desc {
			return a > b
		}
		return a < b
	})
	d.page = 0
	w.MarkLayoutDirty()
}

func (r *TableRow) cell(column int) string {
	if column < len(r.Cells) {
		return r.Cells[column]
	}
	return ""
}

func (d *DataTableContent) paginationActive() bool {
	return d.Paginated && d.RowsPerPage > 0 && len(d.rows) > d.RowsPerPage
}

func (d *DataTableContent) pageRows() []*TableRow {
	if !d.paginationActive() {
		return d.rows
	}
	start := d.page * d.RowsPerPage
	if start > len(d.rows) {
		start = len(d.rows)
	}
	end := start + d.RowsPerPage
	if end > len(d.rows) {
		end = len(d.rows)
	}
	return d.rows[start:end]
}

func (d *DataTableContent) columnWidth(column int) float64 {
	if w := d.Columns[column].Width; w > 0 {
		return w
	}
	return tableColumnWidth
}

func (d *DataTableContent) totalColumnWidth() float64 {
	var total float64
	for i := range d.Columns {
		total += d.columnWidth(i)
	}
	return total
}

func (d *DataTableContent) Measure(mc *layout.MeasureContext, w *layout.Widget, c layout.Constraints) graphics.Size {
	const op = "widgets.DataTableContent.Measure"
	ts := w.Resolved().TextStyle()
	headerStyle := ts
	headerStyle.FontWeight = graphics.FontWeightBold

	layoutOne := func(text string, style graphics.TextStyle) *graphics.TextLayout {
		tl, err := graphics.LayoutText(text, style, mc.Text)
		if err != nil {
			errors.Report(errors.New(op, errors.KindLayout, err))
			return nil
		}
		return tl
	}

	d.headerLayouts = d.headerLayouts[:0]
	for _, col := range d.Columns {
		d.headerLayouts = append(d.headerLayouts, layoutOne(col.Title, headerStyle))
	}

	rows := d.pageRows()
	d.cellLayouts = d.cellLayouts[:0]
	for _, row := range rows {
		cells := make([]*graphics.TextLayout, len(d.Columns))
		for i := range d.Columns {
			cells[i] = layoutOne(row.cell(i), ts)
		}
		d.cellLayouts = append(d.cellLayouts, cells)
	}

	height := float64(tableHeaderHeight) + float64(len(rows))*tableRowHeight
	if d.paginationActive() {
		height += tablePaginationHeight
		scheme := mc.Theme.ColorScheme
		infoStyle := ts
		infoStyle.Color = scheme.Outline
		d.pageInfo = layoutOne(fmt.Sprintf("Page %d of %d", d.page+1, d.TotalPages()), infoStyle)
		navStyle := ts
		navStyle.Color = scheme.Primary
		d.prevLabel = layoutOne("Previous", navStyle)
		d.nextLabel = layoutOne("Next", navStyle)
	}
	return c.Constrain(graphics.Size{Width: d.totalColumnWidth(), Height: height})
}

func (d *DataTableContent) Arrange(*layout.ArrangeContext, *layout.Widget, graphics.Rect) {}

func (d *DataTableContent) Paint(pc *layout.PaintContext, w *layout.Widget, contentBox graphics.Rect) {
	scheme := pc.Theme.ColorScheme
	canvas := pc.Canvas

	canvas.DrawRect(contentBox, graphics.Paint{Color: scheme.Surface})
	canvas.DrawRect(contentBox, graphics.Paint{
		Color:       scheme.Outline,
		Style:       graphics.PaintStyleStroke,
		StrokeWidth: 1,
	})

	d.paintHeader(pc, contentBox)
	d.paintRows(pc, contentBox)
	if d.paginationActive() {
		d.paintPagination(pc, contentBox)
	}
}

func (d *DataTableContent) paintHeader(pc *layout.PaintContext, contentBox graphics.Rect) {
	scheme := pc.Theme.ColorScheme
	canvas := pc.Canvas
	header := graphics.RectFromLTWH(contentBox.Left, contentBox.Top, contentBox.Width(), tableHeaderHeight)

	canvas.DrawRect(header, graphics.Paint{Color: scheme.Background})
	canvas.DrawLine(
		graphics.Offset{X: header.Left, Y: header.Bottom},
		graphics.Offset{X: header.Right, Y: header.Bottom},
		graphics.Paint{Color: scheme.Outline, StrokeWidth: 1},
	)

	x := header.Left
	for i := range d.Columns {
		width := d.columnWidth(i)
		if i > 0 {
			canvas.DrawLine(
				graphics.Offset{X: x, Y: header.Top + 8},
				graphics.Offset{X: x, Y: header.Bottom - 8},
				graphics.Paint{Color: scheme.Outline, StrokeWidth: 1},
			)
		}
		if tl := d.headerLayouts[i]; tl != nil {
			canvas.DrawText(tl, graphics.Offset{
				X: x + tableCellInset,
				Y: header.Top + (header.Height()-tl.Size.Height)/2,
			})
		}
		if d.Sortable && d.sortColumn == i {
			d.paintSortArrow(pc, graphics.Offset{X: x + width - 20, Y: header.Top + header.Height()/2})
		}
		x += width
	}
}

// paintSortArrow draws a chevron pointing up for ascending order and down
// for descending.
func (d *DataTableContent) paintSortArrow(pc *layout.PaintContext, at graphics.Offset) {
	tip := -3.0
	if d.sortDesc {
		tip = 3.0
	}
	paint := graphics.Paint{Color: pc.Theme.ColorScheme.OnBackground, StrokeWidth: 1}
	pc.Canvas.DrawLine(graphics.Offset{X: at.X, Y: at.Y - tip},
		graphics.Offset{X: at.X + 6, Y: at.Y + tip}, paint)
	pc.Canvas.DrawLine(graphics.Offset{X: at.X + 6, Y: at.Y + tip},
		graphics.Offset{X: at.X + 12, Y: at.Y - tip}, paint)
}

func (d *DataTableContent) paintRows(pc *layout.PaintContext, contentBox graphics.Rect) {
	scheme := pc.Theme.ColorScheme
	canvas := pc.Canvas
	rows := d.pageRows()

	y := contentBox.Top + tableHeaderHeight
	for rowIndex, row := range rows {
		rowRect := graphics.RectFromLTWH(contentBox.Left, y, contentBox.Width(), tableRowHeight)

		var fill graphics.Color
		switch {
		case d.isSelected(row):
			fill = scheme.Primary.WithAlpha(0x1E)
		case rowIndex == d.hoveredRow:
			fill = scheme.OnBackground.WithAlpha(0x0A)
		case rowIndex%2 == 1:
			fill = scheme.OnBackground.WithAlpha(0x05)
		}
		if !fill.IsTransparent() {
			canvas.DrawRect(rowRect, graphics.Paint{Color: fill})
		}
		if rowIndex < len(rows)-1 {
			canvas.DrawLine(
				graphics.Offset{X: rowRect.Left, Y: rowRect.Bottom},
				graphics.Offset{X: rowRect.Right, Y: rowRect.Bottom},
				graphics.Paint{Color: scheme.Outline, StrokeWidth: 1},
			)
		}

		x := rowRect.Left
		for i := range d.Columns {
			width := d.columnWidth(i)
			if i > 0 {
				canvas.DrawLine(
					graphics.Offset{X: x, Y: rowRect.Top},
					graphics.Offset{X: x, Y: rowRect.Bottom},
					graphics.Paint{Color: scheme.Outline, StrokeWidth: 1},
				)
			}
			if tl := d.cellLayouts[rowIndex][i]; tl != nil {
				cell := graphics.RectFromLTWH(x, rowRect.Top, width, rowRect.Height())
				canvas.Save()
				canvas.ClipRect(cell)
				canvas.DrawText(tl, graphics.Offset{
					X: x + tableCellInset,
					Y: rowRect.Top + (rowRect.Height()-tl.Size.Height)/2,
				})
				canvas.Restore()
			}
			x += width
		}
		y += tableRowHeight
	}
}

func (d *DataTableContent) paintPagination(pc *layout.PaintContext, contentBox graphics.Rect) {
	scheme := pc.Theme.ColorScheme
	canvas := pc.Canvas
	bar := d.paginationRect(contentBox)

	canvas.DrawLine(
		graphics.Offset{X: bar.Left, Y: bar.Top},
		graphics.Offset{X: bar.Right, Y: bar.Top},
		graphics.Paint{Color: scheme.Outline, StrokeWidth: 1},
	)

	if d.pageInfo != nil {
		canvas.DrawText(d.pageInfo, graphics.Offset{
			X: bar.Right - d.pageInfo.Size.Width - tableCellInset,
			Y: bar.Top + (bar.Height()-d.pageInfo.Size.Height)/2,
		})
	}

	d.paintPageButton(pc, d.prevButtonRect(contentBox), d.prevLabel, d.page > 0)
	d.paintPageButton(pc, d.nextButtonRect(contentBox), d.nextLabel, d.page < d.TotalPages()-1)
}

func (d *DataTableContent) paintPageButton(pc *layout.PaintContext, rect graphics.Rect, label *graphics.TextLayout, enabled bool) {
	scheme := pc.Theme.ColorScheme
	fill := scheme.Primary.WithAlpha(0x14)
	if !enabled {
		fill = scheme.Outline.WithAlpha(0x14)
	}
	pc.Canvas.DrawRect(rect, graphics.Paint{Color: fill})
	if label == nil {
		return
	}
	tl := label
	if !enabled {
		ghost := *label
		ghost.Style.Color = scheme.Outline
		tl = &ghost
	}
	pc.Canvas.DrawText(tl, graphics.Offset{
		X: rect.Left + (rect.Width()-tl.Size.Width)/2,
		Y: rect.Top + (rect.Height()-tl.Size.Height)/2,
	})
}

func (d *DataTableContent) paginationRect(contentBox graphics.Rect) graphics.Rect {
	return graphics.RectFromLTWH(contentBox.Left, contentBox.Bottom-tablePaginationHeight,
		contentBox.Width(), tablePaginationHeight)
}

func (d *DataTableContent) prevButtonRect(contentBox graphics.Rect) graphics.Rect {
	bar := d.paginationRect(contentBox)
	return graphics.RectFromLTWH(bar.Left+tableCellInset, bar.Top+15, pageButtonWidth, pageButtonHeight)
}

func (d *DataTableContent) nextButtonRect(contentBox graphics.Rect) graphics.Rect {
	bar := d.paginationRect(contentBox)
	return graphics.RectFromLTWH(bar.Left+100, bar.Top+15, pageButtonWidth, pageButtonHeight)
}

func (d *DataTableContent) isSelected(row *TableRow) bool {
	_, ok := d.selected[row]
	return ok
}

// contentBoxAbs maps the widget's padded content box into root coordinates
// for event geometry.
func (d *DataTableContent) contentBoxAbs(w *layout.Widget) graphics.Rect {
	abs := w.AbsoluteFrame()
	box := w.Resolved().Padding.Deflate(graphics.RectFromLTWH(0, 0, abs.Width(), abs.Height()))
	return box.Translate(abs.Left, abs.Top)
}

func (d *DataTableContent) rowAt(contentBox graphics.Rect, p graphics.Offset) int {
	rows := d.pageRows()
	top := contentBox.Top + tableHeaderHeight
	if !contentBox.Contains(p) || p.Y < top {
		return -1
	}
	index := int((p.Y - top) / tableRowHeight)
	if index >= len(rows) {
		return -1
	}
	return index
}

func (d *DataTableContent) columnAt(contentBox graphics.Rect, x float64) int {
	offset := x - contentBox.Left
	var cursor float64
	for i := range d.Columns {
		width := d.columnWidth(i)
		if offset >= cursor && offset < cursor+width {
			return i
		}
		cursor += width
	}
	return -1
}

func (d *DataTableContent) HandleEvent(w *layout.Widget, e events.Event) bool {
	switch e.Kind {
	case events.KindPointerMove:
		box := d.contentBoxAbs(w)
		if row := d.rowAt(box, e.Position); row != d.hoveredRow {
			d.hoveredRow = row
			w.MarkPaintDirty()
		}
		return false
	case events.KindPointerLeave:
		if d.hoveredRow != -1 {
			d.hoveredRow = -1
			w.MarkPaintDirty()
		}
		return false
	case events.KindPointerDown:
		return d.handlePress(w, e.Position)
	case events.KindClick, events.KindPointerUp:
		return true
	}
	return false
}

func (d *DataTableContent) handlePress(w *layout.Widget, p graphics.Offset) bool {
	box := d.contentBoxAbs(w)

	header := graphics.RectFromLTWH(box.Left, box.Top, box.Width(), tableHeaderHeight)
	if header.Contains(p) {
		if col := d.columnAt(box, p.X); d.Sortable && col >= 0 {
			d.SortBy(w, col)
		}
		return true
	}

	if row := d.rowAt(box, p); row >= 0 {
		d.pressRow(w, d.pageRows()[row])
		return true
	}

	if d.paginationActive() && d.paginationRect(box).Contains(p) {
		switch {
		case d.prevButtonRect(box).Contains(p):
			d.SetPage(w, d.page-1)
		case d.nextButtonRect(box).Contains(p):
			d.SetPage(w, d.page+1)
		}
		return true
	}
	return false
}

func (d *DataTableContent) pressRow(w *layout.Widget, row *TableRow) {
	if d.Selectable {
		d.selected = map[*TableRow]struct{}{row: {}}
		if d.OnSelectionChange != nil {
			d.OnSelectionChange(d.Selected())
		}
		w.MarkPaintDirty()
	}
	if d.OnRowClick != nil {
		d.OnRowClick(row)
	}
}
