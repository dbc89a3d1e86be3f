package tableblock

// InsertColumn returns a copy of t with a new cell inserted at columnIndex
// into every row of every non-empty section, keeping row lengths uniform
// across sections. columnIndex may equal the current column count (append).
// Out-of-range indices return t unchanged.
func InsertColumn(t Table, columnIndex int) Table {
	if columnIndex < 0 || columnIndex > t.ColumnCount() {
		return t
	}

	for _, name := range sectionOrder {
		sec, _ := t.Section(name)
		if IsEmptySection(sec) {
			continue
		}
		next := make(Section, len(sec))
		for i, row := range sec {
			next[i] = insertCell(row, columnIndex, name)
		}
		t = t.withSection(name, next)
	}
	return t
}

// DeleteColumn returns a copy of t with the cell at columnIndex removed
// from every row of every section, not just the named one, preserving
// uniform row length. A row whose last cell is removed is retained with
// zero cells. The index is validated against the named section;
// out-of-range indices and unknown section names return t unchanged.
func DeleteColumn(t Table, name SectionName, columnIndex int) Table {
	sec, ok := t.Section(name)
	if !ok || columnIndex < 0 || columnIndex >= columnCount(sec) {
		return t
	}

	for _, sName := range sectionOrder {
		s, _ := t.Section(sName)
		if IsEmptySection(s) {
			continue
		}
		next := make(Section, len(s))
		for i, row := range s {
			next[i] = deleteCell(row, columnIndex)
		}
		t = t.withSection(sName, next)
	}
	return t
}

// insertCell returns a copy of row with a fresh cell spliced in at idx.
// Rows narrower than idx are returned unchanged.
func insertCell(row Row, idx int, name SectionName) Row {
	if idx > len(row.Cells) {
		return cloneRow(row)
	}
	cells := make([]Cell, 0, len(row.Cells)+1)
	cells = append(cells, row.Cells[:idx]...)
	cells = append(cells, Cell{Content: emptyContent, Tag: DefaultTag(name)})
	cells = append(cells, row.Cells[idx:]...)
	return Row{Cells: cells}
}

// deleteCell returns a copy of row without the cell at idx. Rows narrower
// than idx are returned unchanged.
func deleteCell(row Row, idx int) Row {
	if idx >= len(row.Cells) {
		return cloneRow(row)
	}
	cells := make([]Cell, 0, len(row.Cells)-1)
	cells = append(cells, row.Cells[:idx]...)
	cells = append(cells, row.Cells[idx+1:]...)
	return Row{Cells: cells}
}
