package tableblock

// SelectionType distinguishes single-cell selections from whole-column
// selections.
type SelectionType string

const (
	SelectionCell   SelectionType = "cell"
	SelectionColumn SelectionType = "column"
)

// Selection addresses the target of a cell attribute operation: either one
// cell by section, row and column, or an entire column across every
// section. Indices are 0-based. Selections are transient interaction
// state, never persisted with the table.
type Selection struct {
	Type        SelectionType
	SectionName SectionName
	RowIndex    int
	ColumnIndex int
}

// CellSelection addresses a single cell.
func CellSelection(name SectionName, rowIndex, columnIndex int) Selection {
	return Selection{Type: SelectionCell, SectionName: name, RowIndex: rowIndex, ColumnIndex: columnIndex}
}

// ColumnSelection addresses every cell of a column across all sections,
// used to broadcast an attribute such as alignment.
func ColumnSelection(columnIndex int) Selection {
	return Selection{Type: SelectionColumn, ColumnIndex: columnIndex}
}

// UpdateSelectedCell returns a copy of t with update applied to the cell
// or column addressed by sel. A cell selection updates exactly one cell; a
// column selection updates the cell at sel.ColumnIndex in every row of
// every section. Out-of-range selections and a nil update return t
// unchanged.
func UpdateSelectedCell(t Table, sel Selection, update func(Cell) Cell) Table {
	if update == nil {
		return t
	}

	switch sel.Type {
	case SelectionCell:
		sec, ok := t.Section(sel.SectionName)
		if !ok || sel.RowIndex < 0 || sel.RowIndex >= len(sec) {
			return t
		}
		row := sec[sel.RowIndex]
		if sel.ColumnIndex < 0 || sel.ColumnIndex >= len(row.Cells) {
			return t
		}
		next := cloneSection(sec)
		next[sel.RowIndex].Cells[sel.ColumnIndex] = update(row.Cells[sel.ColumnIndex])
		return t.withSection(sel.SectionName, next)

	case SelectionColumn:
		if sel.ColumnIndex < 0 || sel.ColumnIndex >= t.ColumnCount() {
			return t
		}
		for _, name := range sectionOrder {
			sec, _ := t.Section(name)
			if IsEmptySection(sec) {
				continue
			}
			next := cloneSection(sec)
			for i := range next {
				if sel.ColumnIndex < len(next[i].Cells) {
					next[i].Cells[sel.ColumnIndex] = update(next[i].Cells[sel.ColumnIndex])
				}
			}
			t = t.withSection(name, next)
		}
		return t
	}
	return t
}

// GetCellAttribute reads a named attribute off the cell addressed by sel.
// A column selection reads from the first row of the first non-empty
// section. ok is false when the selection is out of range or the attribute
// name is unknown. Recognized names: content, tag, scope, align, colspan,
// rowspan.
func GetCellAttribute(t Table, sel Selection, name string) (any, bool) {
	cell, ok := selectedCell(t, sel)
	if !ok {
		return nil, false
	}
	switch name {
	case "content":
		return cell.Content, true
	case "tag":
		return cell.Tag, true
	case "scope":
		return cell.Scope, true
	case "align":
		return cell.Align, true
	case "colspan":
		return cell.Colspan, true
	case "rowspan":
		return cell.Rowspan, true
	}
	return nil, false
}

// selectedCell resolves sel to a concrete cell.
func selectedCell(t Table, sel Selection) (Cell, bool) {
	switch sel.Type {
	case SelectionCell:
		sec, ok := t.Section(sel.SectionName)
		if !ok || sel.RowIndex < 0 || sel.RowIndex >= len(sec) {
			return Cell{}, false
		}
		row := sec[sel.RowIndex]
		if sel.ColumnIndex < 0 || sel.ColumnIndex >= len(row.Cells) {
			return Cell{}, false
		}
		return row.Cells[sel.ColumnIndex], true

	case SelectionColumn:
		for _, name := range sectionOrder {
			sec, _ := t.Section(name)
			if IsEmptySection(sec) {
				continue
			}
			if sel.ColumnIndex >= 0 && sel.ColumnIndex < len(sec[0].Cells) {
				return sec[0].Cells[sel.ColumnIndex], true
			}
			return Cell{}, false
		}
	}
	return Cell{}, false
}
