package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidsector9/tableblock"
)

// newTestController builds a controller with a freshly created table and a
// change counter.
func newTestController(t *testing.T, rows, cols string) (*Controller, *int) {
	t.Helper()
	changes := 0
	c, err := New(WithOnChange(func(tableblock.Table) { changes++ }))
	require.NoError(t, err)
	c.CreateTable(rows, cols)
	return c, &changes
}

func TestController_CreateTable(t *testing.T) {
	c, changes := newTestController(t, "3", "4")

	require.True(t, c.HasTable())
	assert.Len(t, c.Table().Body, 3)
	assert.Len(t, c.Table().Body[0].Cells, 4)
	assert.Equal(t, 1, *changes)
}

func TestController_CreateTable_FallbackCounts(t *testing.T) {
	c, _ := newTestController(t, "lots", "-1")
	assert.Len(t, c.Table().Body, 2)
	assert.Len(t, c.Table().Body[0].Cells, 2)
}

func TestController_PendingFocusConsumedOnce(t *testing.T) {
	c, _ := newTestController(t, "2", "2")

	focus, ok := c.ConsumePendingFocus()
	require.True(t, ok)
	assert.Equal(t, tableblock.CellSelection(tableblock.SectionBody, 0, 0), focus)

	_, ok = c.ConsumePendingFocus()
	assert.False(t, ok, "pending focus is one-shot")
}

func TestController_CommandsDisabledWithoutSelection(t *testing.T) {
	c, _ := newTestController(t, "2", "2")

	disabled := map[string]bool{}
	for _, state := range c.Commands() {
		disabled[state.Name] = state.Disabled
	}

	assert.True(t, disabled["insert-row-before"])
	assert.True(t, disabled["delete-column"])
	assert.True(t, disabled["merge-cells"])
	assert.False(t, disabled["toggle-header"], "section toggles need only a table")
	assert.False(t, disabled["toggle-footer"])
}

func TestController_RowCommandsNeedCellSelection(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.ColumnSelected(1)

	disabled := map[string]bool{}
	for _, state := range c.Commands() {
		disabled[state.Name] = state.Disabled
	}

	assert.True(t, disabled["insert-row-after"], "row commands need a cell selection")
	assert.False(t, disabled["insert-column-after"])
	assert.False(t, disabled["align-center"])
}

func TestController_InsertRowRederivesSelection(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.CellFocused(tableblock.CellSelection(tableblock.SectionBody, 1, 1))

	require.True(t, c.Dispatch("insert-row-before"))

	assert.Len(t, c.Table().Body, 3)
	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, tableblock.CellSelection(tableblock.SectionBody, 1, 0), sel)
}

func TestController_InsertRowAfter(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.CellFocused(tableblock.CellSelection(tableblock.SectionBody, 0, 1))

	require.True(t, c.Dispatch("insert-row-after"))

	sel, _ := c.Selection()
	assert.Equal(t, tableblock.CellSelection(tableblock.SectionBody, 1, 0), sel)
}

func TestController_DeleteRowClearsSelection(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.CellFocused(tableblock.CellSelection(tableblock.SectionBody, 0, 0))

	require.True(t, c.Dispatch("delete-row"))

	assert.Len(t, c.Table().Body, 1)
	_, ok := c.Selection()
	assert.False(t, ok)
}

func TestController_InsertColumnSelectsRowZero(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.CellFocused(tableblock.CellSelection(tableblock.SectionBody, 1, 1))

	require.True(t, c.Dispatch("insert-column-after"))

	assert.Len(t, c.Table().Body[0].Cells, 3)
	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, tableblock.CellSelection(tableblock.SectionBody, 0, 2), sel)
}

func TestController_DeleteColumnFromColumnSelection(t *testing.T) {
	c, _ := newTestController(t, "2", "3")
	c.ColumnSelected(1)

	require.True(t, c.Dispatch("delete-column"))

	assert.Len(t, c.Table().Body[0].Cells, 2)
	_, ok := c.Selection()
	assert.False(t, ok)
}

func TestController_MergeFlow(t *testing.T) {
	c, changes := newTestController(t, "3", "3")
	before := *changes

	c.PointerDown(1, 1)
	c.PointerMove(2, 2)
	c.PointerUp()
	require.True(t, c.IsInRange(2, 2))

	require.True(t, c.Dispatch("merge-cells"))

	anchor := c.Table().Body[0].Cells[0]
	assert.Equal(t, 2, anchor.Colspan)
	assert.Equal(t, 2, anchor.Rowspan)
	assert.Nil(t, c.Table().Body[1].Cells[1].Content)

	// The merge-record cache was rebuilt from the cell data.
	assert.True(t, c.IsSuppressed(1, 2))
	assert.False(t, c.IsSuppressed(1, 1))

	// The range was consumed.
	assert.False(t, c.IsInRange(2, 2))
	assert.False(t, c.Dispatch("merge-cells"), "no range left to merge")
	assert.Equal(t, before+1, *changes)
}

func TestController_MergeNeedsMultiCellRange(t *testing.T) {
	c, _ := newTestController(t, "2", "2")

	c.PointerDown(1, 1)
	c.PointerUp()

	assert.False(t, c.Dispatch("merge-cells"))
	assert.Equal(t, 0, c.Table().Body[0].Cells[0].Colspan)
}

func TestController_AlignColumnBroadcast(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.ColumnSelected(0)

	require.True(t, c.Dispatch("align-right"))

	for _, row := range c.Table().Body {
		assert.Equal(t, "right", row.Cells[0].Align)
		assert.Empty(t, row.Cells[1].Align)
	}
}

func TestController_ToggleSections(t *testing.T) {
	c, _ := newTestController(t, "2", "3")

	require.True(t, c.Dispatch("toggle-header"))
	require.Len(t, c.Table().Head, 1)
	assert.Len(t, c.Table().Head[0].Cells, 3)

	require.True(t, c.Dispatch("toggle-header"))
	assert.True(t, tableblock.IsEmptySection(c.Table().Head))
}

func TestController_DeselectedClearsEverything(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.CellFocused(tableblock.CellSelection(tableblock.SectionBody, 0, 0))
	c.PointerDown(1, 1)
	c.PointerMove(2, 2)
	c.PointerUp()

	c.Deselected()

	_, ok := c.Selection()
	assert.False(t, ok)
	assert.False(t, c.IsInRange(1, 1))
}

func TestController_CaptionFocusClearsSelection(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	c.CellFocused(tableblock.CellSelection(tableblock.SectionBody, 0, 0))

	c.CaptionFocused()

	_, ok := c.Selection()
	assert.False(t, ok)
}

func TestController_CustomCommand(t *testing.T) {
	c, err := New(WithCommand(Command{
		Name:  "fix-layout",
		Label: "Fixed layout",
		When:  "HasTable && RowCount > 1",
		Apply: func(tbl tableblock.Table, _ tableblock.Selection) tableblock.Table {
			tbl.HasFixedLayout = true
			return tbl
		},
	}))
	require.NoError(t, err)

	assert.False(t, c.Dispatch("fix-layout"), "no table yet")

	c.CreateTable("2", "2")
	require.True(t, c.Dispatch("fix-layout"))
	assert.True(t, c.Table().HasFixedLayout)
}

func TestController_CustomCommandBadPredicate(t *testing.T) {
	_, err := New(WithCommand(Command{
		Name:  "broken",
		When:  "RowCount +",
		Apply: func(tbl tableblock.Table, _ tableblock.Selection) tableblock.Table { return tbl },
	}))
	assert.Error(t, err)
}

func TestController_CustomCommandNeedsApply(t *testing.T) {
	_, err := New(WithCommand(Command{Name: "noop"}))
	assert.Error(t, err)
}

func TestController_DispatchUnknownCommand(t *testing.T) {
	c, _ := newTestController(t, "2", "2")
	assert.False(t, c.Dispatch("format-disk"))
}

func TestController_WithTable(t *testing.T) {
	tbl := tableblock.ApplyMerge(tableblock.CreateTable(2, 2),
		tableblock.MergeRecord{Row: 1, Col: 1, RowSpan: 1, ColSpan: 2})

	c, err := New(WithTable(tbl))
	require.NoError(t, err)

	require.True(t, c.HasTable())
	assert.True(t, c.IsSuppressed(1, 2), "merge cache rebuilt from supplied table")

	_, ok := c.ConsumePendingFocus()
	assert.False(t, ok, "no pending focus without a creation event")
}
