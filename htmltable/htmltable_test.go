package htmltable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidsector9/tableblock"
)

func TestRenderString_Sections(t *testing.T) {
	tbl := tableblock.CreateTable(2, 2)
	tbl = tableblock.ToggleSection(tbl, tableblock.SectionHead)

	out, err := RenderString(tbl)
	require.NoError(t, err)

	assert.Contains(t, out, "<thead>")
	assert.Contains(t, out, "<tbody>")
	assert.NotContains(t, out, "<tfoot>", "empty sections are omitted")
	assert.Contains(t, out, "<th>")
	assert.Contains(t, out, "<td>")
}

func TestRenderString_CellAttributes(t *testing.T) {
	tbl := tableblock.CreateTable(1, 2)
	tbl = tableblock.UpdateSelectedCell(tbl, tableblock.CellSelection(tableblock.SectionBody, 0, 0), func(c tableblock.Cell) tableblock.Cell {
		c.Content = tableblock.Text("total")
		c.Align = "right"
		c.Scope = "row"
		return c
	})

	out, err := RenderString(tbl)
	require.NoError(t, err)

	assert.Contains(t, out, `scope="row"`)
	assert.Contains(t, out, `data-align="right"`)
	assert.Contains(t, out, ">total</td>")
}

func TestRenderString_MergeOmitsSuppressedCells(t *testing.T) {
	tbl := tableblock.CreateTable(2, 2)
	tbl = tableblock.ApplyMerge(tbl, tableblock.MergeRecord{Row: 1, Col: 1, RowSpan: 2, ColSpan: 2})

	out, err := RenderString(tbl)
	require.NoError(t, err)

	assert.Contains(t, out, `colspan="2"`)
	assert.Contains(t, out, `rowspan="2"`)
	// One anchor cell; the three suppressed cells are not rendered at all.
	assert.Equal(t, 1, strings.Count(out, "<td"))
}

func TestRenderString_FixedLayoutAndCaption(t *testing.T) {
	tbl := tableblock.CreateTable(1, 1)
	tbl.HasFixedLayout = true
	tbl.Caption = tableblock.Text("Quarterly results")

	out, err := RenderString(tbl)
	require.NoError(t, err)

	assert.Contains(t, out, `class="has-fixed-layout"`)
	assert.Contains(t, out, "<caption>Quarterly results</caption>")
}

func TestParse_RoundTrip(t *testing.T) {
	tbl := tableblock.CreateTable(2, 3)
	tbl = tableblock.ToggleSection(tbl, tableblock.SectionHead)
	tbl = tableblock.ToggleSection(tbl, tableblock.SectionFoot)
	tbl.HasFixedLayout = true
	tbl.Caption = tableblock.Text("caption text")
	tbl = tableblock.UpdateSelectedCell(tbl, tableblock.CellSelection(tableblock.SectionBody, 1, 2), func(c tableblock.Cell) tableblock.Cell {
		c.Content = tableblock.Text("value")
		c.Align = "center"
		return c
	})

	out, err := RenderString(tbl)
	require.NoError(t, err)

	got, err := Parse(strings.NewReader(out))
	require.NoError(t, err)

	assert.True(t, got.HasFixedLayout)
	assert.Equal(t, tableblock.Text("caption text"), got.Caption)
	require.Len(t, got.Head, 1)
	require.Len(t, got.Body, 2)
	require.Len(t, got.Foot, 1)
	assert.Equal(t, tableblock.TagHeader, got.Head[0].Cells[0].Tag)
	assert.Equal(t, tableblock.Text("value"), got.Body[1].Cells[2].Content)
	assert.Equal(t, "center", got.Body[1].Cells[2].Align)
}

func TestParse_SpansAndScope(t *testing.T) {
	markup := `<table><tbody>
		<tr><td colspan="2" rowspan="3">a</td><th scope="col">b</th></tr>
	</tbody></table>`

	got, err := Parse(strings.NewReader(markup))
	require.NoError(t, err)

	require.Len(t, got.Body, 1)
	require.Len(t, got.Body[0].Cells, 2)
	assert.Equal(t, 2, got.Body[0].Cells[0].Colspan)
	assert.Equal(t, 3, got.Body[0].Cells[0].Rowspan)
	assert.Equal(t, tableblock.TagHeader, got.Body[0].Cells[1].Tag)
	assert.Equal(t, "col", got.Body[0].Cells[1].Scope)
}

func TestParse_NoTable(t *testing.T) {
	_, err := Parse(strings.NewReader("<p>nothing here</p>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no table element")
}
