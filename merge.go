package tableblock

// Coord addresses a cell with 1-based row and column numbers, the
// convention of the drag/merge subsystem. The 0-based Selection indices
// are translated to Coords at the editor boundary.
type Coord struct {
	Row int
	Col int
}

// MergeRecord describes one merge rectangle: a 1-based top-left anchor
// plus extents on each axis.
type MergeRecord struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Contains reports whether the 1-based coordinate lies inside the record's
// rectangle, anchor included.
func (r MergeRecord) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.RowSpan &&
		col >= r.Col && col < r.Col+r.ColSpan
}

// ComputeMergeRegion normalizes two drag corners into a merge record. The
// anchor is the component-wise minimum of the corners; spans are the
// absolute coordinate difference plus one on each axis, so corner order
// does not matter.
func ComputeMergeRegion(start, end Coord) MergeRecord {
	return MergeRecord{
		Row:     min(start.Row, end.Row),
		Col:     min(start.Col, end.Col),
		RowSpan: abs(start.Row-end.Row) + 1,
		ColSpan: abs(start.Col-end.Col) + 1,
	}
}

// ApplyMerge returns a copy of t with the record's rectangle merged in the
// body section: the anchor cell receives the record's spans and every
// other cell in the rectangle has its content nulled out, marking it
// suppressed. Merging is body-only. Records that are degenerate or not
// fully inside the body return t unchanged.
func ApplyMerge(t Table, rec MergeRecord) Table {
	if rec.Row < 1 || rec.Col < 1 || rec.RowSpan < 1 || rec.ColSpan < 1 {
		return t
	}
	if rec.Row-1+rec.RowSpan > len(t.Body) {
		return t
	}
	for r := rec.Row - 1; r < rec.Row-1+rec.RowSpan; r++ {
		if rec.Col-1+rec.ColSpan > len(t.Body[r].Cells) {
			return t
		}
	}

	body := cloneSection(t.Body)
	for r := rec.Row - 1; r < rec.Row-1+rec.RowSpan; r++ {
		for c := rec.Col - 1; c < rec.Col-1+rec.ColSpan; c++ {
			if r == rec.Row-1 && c == rec.Col-1 {
				body[r].Cells[c].Rowspan = rec.RowSpan
				body[r].Cells[c].Colspan = rec.ColSpan
				continue
			}
			body[r].Cells[c].Content = nil
		}
	}
	t.Body = body
	return t
}

// IsSuppressed reports whether the 1-based coordinate lies inside some
// record's rectangle without being that record's anchor. Suppressed cells
// are omitted from rendered output entirely.
func IsSuppressed(records []MergeRecord, row, col int) bool {
	for _, rec := range records {
		if rec.Contains(row, col) && !(row == rec.Row && col == rec.Col) {
			return true
		}
	}
	return false
}

// MergeRecords rebuilds the merge record list by scanning the body
// section's persisted cell spans. The cell data is the source of truth
// for merge state; the record list is a cache derived from it.
func MergeRecords(t Table) []MergeRecord {
	var records []MergeRecord
	for r, row := range t.Body {
		for c, cell := range row.Cells {
			if cell.Content == nil {
				continue
			}
			if cell.Colspan > 1 || cell.Rowspan > 1 {
				records = append(records, MergeRecord{
					Row:     r + 1,
					Col:     c + 1,
					RowSpan: max(cell.Rowspan, 1),
					ColSpan: max(cell.Colspan, 1),
				})
			}
		}
	}
	return records
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
