package tableblock

// InsertRow returns a copy of t with a new row inserted at rowIndex in the
// named section. The new row's width matches the section's existing column
// count; if the section is empty, the width of the first non-empty section
// is used, or 1 when every section is empty. Out-of-range indices and
// unknown section names return t unchanged.
func InsertRow(t Table, name SectionName, rowIndex int) Table {
	sec, ok := t.Section(name)
	if !ok || rowIndex < 0 || rowIndex > len(sec) {
		return t
	}

	width := columnCount(sec)
	if width == 0 {
		width = t.ColumnCount()
	}
	if width == 0 {
		width = 1
	}

	next := make(Section, 0, len(sec)+1)
	next = append(next, cloneSection(sec[:rowIndex])...)
	next = append(next, newRow(width, name))
	next = append(next, cloneSection(sec[rowIndex:])...)
	return t.withSection(name, next)
}

// DeleteRow returns a copy of t with the row at rowIndex removed from the
// named section. Removing the last row leaves the section empty.
// Out-of-range indices and unknown section names return t unchanged.
func DeleteRow(t Table, name SectionName, rowIndex int) Table {
	sec, ok := t.Section(name)
	if !ok || rowIndex < 0 || rowIndex >= len(sec) {
		return t
	}

	next := make(Section, 0, len(sec)-1)
	next = append(next, cloneSection(sec[:rowIndex])...)
	next = append(next, cloneSection(sec[rowIndex+1:])...)
	if len(next) == 0 {
		next = nil
	}
	return t.withSection(name, next)
}

// ToggleSection returns a copy of t with the named section cleared when it
// has rows, or populated with a single row when it is empty. The new row's
// width matches the most populous existing section, with a minimum of 1.
// Unknown section names return t unchanged.
func ToggleSection(t Table, name SectionName) Table {
	sec, ok := t.Section(name)
	if !ok {
		return t
	}
	if !IsEmptySection(sec) {
		return t.withSection(name, nil)
	}

	width := t.ColumnCount()
	if width == 0 {
		width = 1
	}
	return t.withSection(name, Section{newRow(width, name)})
}
