// Package editor implements the interaction layer of the table block: a
// selection tracker for cell/column selections and drag ranges, a command
// registry with enablement predicates, and a controller binding user
// events to the pure transformations of the tableblock package.
package editor

import "github.com/Sidsector9/tableblock"

// Tracker holds the transient selection and drag-range state for a single
// editing session. Drag coordinates are 1-based Coords; the retained range
// survives pointer-up so that a later merge command can consume it.
type Tracker struct {
	selection    tableblock.Selection
	hasSelection bool

	dragging bool
	hasRange bool
	start    tableblock.Coord
	end      tableblock.Coord
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker { return &Tracker{} }

// Select records sel as the current selection.
func (tr *Tracker) Select(sel tableblock.Selection) {
	tr.selection = sel
	tr.hasSelection = true
}

// Clear drops the current selection.
func (tr *Tracker) Clear() {
	tr.selection = tableblock.Selection{}
	tr.hasSelection = false
}

// Selection returns the current selection, if any.
func (tr *Tracker) Selection() (tableblock.Selection, bool) {
	return tr.selection, tr.hasSelection
}

// BeginDrag starts a drag range at the given 1-based coordinate.
func (tr *Tracker) BeginDrag(row, col int) {
	tr.dragging = true
	tr.hasRange = true
	tr.start = tableblock.Coord{Row: row, Col: col}
	tr.end = tr.start
}

// ExtendDrag moves the range's end corner. It is a no-op unless a drag is
// in progress.
func (tr *Tracker) ExtendDrag(row, col int) {
	if !tr.dragging {
		return
	}
	tr.end = tableblock.Coord{Row: row, Col: col}
}

// EndDrag finishes the drag. The range is retained until consumed by a
// merge command or cleared.
func (tr *Tracker) EndDrag() {
	tr.dragging = false
}

// ClearRange drops the drag range and any drag in progress.
func (tr *Tracker) ClearRange() {
	tr.dragging = false
	tr.hasRange = false
	tr.start = tableblock.Coord{}
	tr.end = tableblock.Coord{}
}

// Dragging reports whether a drag is in progress.
func (tr *Tracker) Dragging() bool { return tr.dragging }

// Range returns the drag range corners in the order they were dragged.
// ok is false when no range exists.
func (tr *Tracker) Range() (start, end tableblock.Coord, ok bool) {
	return tr.start, tr.end, tr.hasRange
}

// IsInRange reports whether the 1-based coordinate falls within the closed
// rectangle spanned by the drag corners. Corner order does not matter.
func (tr *Tracker) IsInRange(row, col int) bool {
	if !tr.hasRange {
		return false
	}
	return row >= min(tr.start.Row, tr.end.Row) && row <= max(tr.start.Row, tr.end.Row) &&
		col >= min(tr.start.Col, tr.end.Col) && col <= max(tr.start.Col, tr.end.Col)
}

// HasMultiCellRange reports whether the drag corners differ in row or
// column, i.e. whether a merge would cover more than one cell.
func (tr *Tracker) HasMultiCellRange() bool {
	return tr.hasRange && (tr.start.Row != tr.end.Row || tr.start.Col != tr.end.Col)
}
