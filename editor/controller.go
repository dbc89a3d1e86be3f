package editor

import (
	"github.com/Sidsector9/tableblock"
)

// options holds configuration for a Controller.
type options struct {
	table    tableblock.Table
	hasTable bool
	onChange func(tableblock.Table)
	commands []Command
}

// Option configures a Controller.
type Option func(*options)

// WithTable starts the session with an existing table instead of the
// create-table placeholder state.
func WithTable(t tableblock.Table) Option {
	return func(o *options) {
		o.table = t
		o.hasTable = true
	}
}

// WithOnChange sets a callback invoked with the new attribute structure
// after every transformation, the channel through which the host persists
// and re-renders.
func WithOnChange(fn func(tableblock.Table)) Option {
	return func(o *options) { o.onChange = fn }
}

// WithCommand registers a host command alongside the built-ins.
func WithCommand(cmd Command) Option {
	return func(o *options) { o.commands = append(o.commands, cmd) }
}

// Controller orchestrates one editing session: it owns the current table
// snapshot, the selection tracker, the merge-record cache and the command
// registry, and translates user events into model transformations.
type Controller struct {
	table    tableblock.Table
	hasTable bool
	tracker  *Tracker
	registry *commandRegistry
	merges   []tableblock.MergeRecord
	onChange func(tableblock.Table)

	// pendingFocus is a one-shot focus target armed when a table is
	// first created and consumed exactly once by the presentation layer.
	pendingFocus *tableblock.Selection
}

// New creates a Controller. The returned error reports invalid host
// commands, e.g. an unparseable When predicate.
func New(opts ...Option) (*Controller, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	c := &Controller{
		table:    o.table,
		hasTable: o.hasTable,
		tracker:  NewTracker(),
		registry: newCommandRegistry(),
		onChange: o.onChange,
	}
	if c.hasTable {
		c.merges = tableblock.MergeRecords(c.table)
	}

	for _, cmd := range c.builtinCommands() {
		if err := c.registry.register(cmd); err != nil {
			return nil, err
		}
	}
	for _, cmd := range o.commands {
		if err := c.registry.register(cmd); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Table returns the current table snapshot.
func (c *Controller) Table() tableblock.Table { return c.table }

// HasTable reports whether a table has been created or supplied.
func (c *Controller) HasTable() bool { return c.hasTable }

// Selection returns the current selection, if any.
func (c *Controller) Selection() (tableblock.Selection, bool) {
	return c.tracker.Selection()
}

// MergeRecords returns the cached merge records for the current table.
func (c *Controller) MergeRecords() []tableblock.MergeRecord {
	out := make([]tableblock.MergeRecord, len(c.merges))
	copy(out, c.merges)
	return out
}

// IsSuppressed reports whether the 1-based body coordinate is hidden by a
// merge rectangle.
func (c *Controller) IsSuppressed(row, col int) bool {
	return tableblock.IsSuppressed(c.merges, row, col)
}

// IsInRange reports whether the 1-based coordinate is inside the current
// drag range.
func (c *Controller) IsInRange(row, col int) bool {
	return c.tracker.IsInRange(row, col)
}

// IsDragging reports whether a drag is in progress.
func (c *Controller) IsDragging() bool {
	return c.tracker.Dragging()
}

// CreateTable builds a fresh table from the placeholder form's row and
// column counts; unparseable or non-positive counts fall back to 2. The
// first body cell becomes the one-shot pending focus target.
func (c *Controller) CreateTable(rowCount, columnCount string) {
	c.hasTable = true
	c.tracker.Clear()
	c.tracker.ClearRange()
	focus := tableblock.CellSelection(tableblock.SectionBody, 0, 0)
	c.pendingFocus = &focus
	c.setTable(tableblock.CreateTable(tableblock.ParseCount(rowCount), tableblock.ParseCount(columnCount)))
}

// ConsumePendingFocus returns the post-creation focus target. It yields a
// value exactly once per table creation.
func (c *Controller) ConsumePendingFocus() (tableblock.Selection, bool) {
	if c.pendingFocus == nil {
		return tableblock.Selection{}, false
	}
	focus := *c.pendingFocus
	c.pendingFocus = nil
	return focus, true
}

// CellFocused records a cell gaining focus.
func (c *Controller) CellFocused(sel tableblock.Selection) {
	c.tracker.Select(sel)
}

// ColumnSelected records a whole-column selection used to broadcast an
// attribute across the column.
func (c *Controller) ColumnSelected(columnIndex int) {
	c.tracker.Select(tableblock.ColumnSelection(columnIndex))
}

// CaptionFocused clears the cell selection when the caption gains focus.
func (c *Controller) CaptionFocused() {
	c.tracker.Clear()
}

// Deselected clears all interaction state when the block loses selection.
func (c *Controller) Deselected() {
	c.tracker.Clear()
	c.tracker.ClearRange()
}

// PointerDown starts a drag range at the given 1-based cell coordinate.
func (c *Controller) PointerDown(row, col int) {
	c.tracker.BeginDrag(row, col)
}

// PointerMove extends the drag range while a drag is in progress.
func (c *Controller) PointerMove(row, col int) {
	c.tracker.ExtendDrag(row, col)
}

// PointerUp ends the drag, retaining the range for a merge command.
func (c *Controller) PointerUp() {
	c.tracker.EndDrag()
}

// Commands returns the current state of every registered command in
// registration order, for the host to render as a command palette.
func (c *Controller) Commands() []CommandState {
	env := c.enablement()
	states := make([]CommandState, 0, len(c.registry.order))
	for _, name := range c.registry.order {
		cmd := c.registry.byName[name]
		states = append(states, CommandState{
			Name:     cmd.Name,
			Label:    cmd.Label,
			Disabled: !c.registry.enabled(cmd, env),
		})
	}
	return states
}

// Dispatch runs the named command if it exists and is currently enabled,
// and reports whether it ran.
func (c *Controller) Dispatch(name string) bool {
	cmd, ok := c.registry.byName[name]
	if !ok || !c.registry.enabled(cmd, c.enablement()) {
		return false
	}
	cmd.run(c)
	return true
}

// enablement snapshots the state command predicates are evaluated against.
func (c *Controller) enablement() Enablement {
	sel, hasSel := c.tracker.Selection()
	return Enablement{
		HasTable:          c.hasTable,
		HasSelection:      hasSel,
		IsColumnSelection: hasSel && sel.Type == tableblock.SelectionColumn,
		HasRange:          c.tracker.hasRange,
		HasMultiCellRange: c.tracker.HasMultiCellRange(),
		RowCount:          len(c.table.Body),
		ColumnCount:       c.table.ColumnCount(),
		HasHeader:         !tableblock.IsEmptySection(c.table.Head),
		HasFooter:         !tableblock.IsEmptySection(c.table.Foot),
	}
}

// setTable installs a new table snapshot, rebuilds the merge-record cache
// from the persisted cell spans, and notifies the host.
func (c *Controller) setTable(t tableblock.Table) {
	c.table = t
	c.merges = tableblock.MergeRecords(t)
	if c.onChange != nil {
		c.onChange(t)
	}
}

// builtinCommands returns the standard toolbar commands.
func (c *Controller) builtinCommands() []Command {
	return []Command{
		{Name: "insert-row-before", Label: "Insert row before", When: "HasSelection && !IsColumnSelection",
			run: func(c *Controller) { c.insertRow(0) }},
		{Name: "insert-row-after", Label: "Insert row after", When: "HasSelection && !IsColumnSelection",
			run: func(c *Controller) { c.insertRow(1) }},
		{Name: "delete-row", Label: "Delete row", When: "HasSelection && !IsColumnSelection",
			run: (*Controller).deleteRow},
		{Name: "insert-column-before", Label: "Insert column before", When: "HasSelection",
			run: func(c *Controller) { c.insertColumn(0) }},
		{Name: "insert-column-after", Label: "Insert column after", When: "HasSelection",
			run: func(c *Controller) { c.insertColumn(1) }},
		{Name: "delete-column", Label: "Delete column", When: "HasSelection",
			run: (*Controller).deleteColumn},
		{Name: "toggle-header", Label: "Toggle header section", When: "HasTable",
			run: func(c *Controller) { c.toggleSection(tableblock.SectionHead) }},
		{Name: "toggle-footer", Label: "Toggle footer section", When: "HasTable",
			run: func(c *Controller) { c.toggleSection(tableblock.SectionFoot) }},
		{Name: "merge-cells", Label: "Merge cells", When: "HasMultiCellRange",
			run: (*Controller).mergeCells},
		{Name: "align-left", Label: "Align column left", When: "HasSelection",
			run: func(c *Controller) { c.align("left") }},
		{Name: "align-center", Label: "Align column center", When: "HasSelection",
			run: func(c *Controller) { c.align("center") }},
		{Name: "align-right", Label: "Align column right", When: "HasSelection",
			run: func(c *Controller) { c.align("right") }},
	}
}

// insertRow inserts a row at the selected row plus offset and selects the
// first cell of the new row.
func (c *Controller) insertRow(offset int) {
	sel, ok := c.tracker.Selection()
	if !ok || sel.Type != tableblock.SelectionCell {
		return
	}
	idx := sel.RowIndex + offset
	c.setTable(tableblock.InsertRow(c.table, sel.SectionName, idx))
	c.tracker.Select(tableblock.CellSelection(sel.SectionName, idx, 0))
}

// deleteRow removes the selected row. The selection is cleared because its
// cell no longer exists.
func (c *Controller) deleteRow() {
	sel, ok := c.tracker.Selection()
	if !ok || sel.Type != tableblock.SelectionCell {
		return
	}
	c.setTable(tableblock.DeleteRow(c.table, sel.SectionName, sel.RowIndex))
	c.tracker.Clear()
}

// insertColumn inserts a column at the selected column plus offset and
// selects row 0 at the new column index.
func (c *Controller) insertColumn(offset int) {
	sel, ok := c.tracker.Selection()
	if !ok {
		return
	}
	idx := sel.ColumnIndex + offset
	c.setTable(tableblock.InsertColumn(c.table, idx))
	section := sel.SectionName
	if sel.Type != tableblock.SelectionCell {
		section = tableblock.SectionBody
	}
	c.tracker.Select(tableblock.CellSelection(section, 0, idx))
}

// deleteColumn removes the selected column from every section and clears
// the selection.
func (c *Controller) deleteColumn() {
	sel, ok := c.tracker.Selection()
	if !ok {
		return
	}
	section := sel.SectionName
	if sel.Type != tableblock.SelectionCell {
		section = tableblock.SectionBody
	}
	c.setTable(tableblock.DeleteColumn(c.table, section, sel.ColumnIndex))
	c.tracker.Clear()
}

func (c *Controller) toggleSection(name tableblock.SectionName) {
	c.setTable(tableblock.ToggleSection(c.table, name))
}

// mergeCells consumes the drag range: it computes the merge region,
// applies it to the body and clears the range.
func (c *Controller) mergeCells() {
	if !c.tracker.HasMultiCellRange() {
		return
	}
	start, end, _ := c.tracker.Range()
	c.setTable(tableblock.ApplyMerge(c.table, tableblock.ComputeMergeRegion(start, end)))
	c.tracker.ClearRange()
}

// align broadcasts an alignment over the selected cell or column.
func (c *Controller) align(align string) {
	sel, ok := c.tracker.Selection()
	if !ok {
		return
	}
	c.setTable(tableblock.UpdateSelectedCell(c.table, sel, func(cell tableblock.Cell) tableblock.Cell {
		cell.Align = align
		return cell
	}))
}
