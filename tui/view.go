package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Sidsector9/tableblock"
)

// View renders the current UI state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeCreate {
		return m.viewCreate()
	}
	return m.viewEdit()
}

// viewCreate renders the table placeholder form.
func (m Model) viewCreate() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("tabledit — new table"))
	sb.WriteString("\n\n")

	rows := m.rowsInput
	if rows == "" {
		rows = "2"
	}
	cols := m.colsInput
	if cols == "" {
		cols = "2"
	}
	rowField := fmt.Sprintf("rows: %s", rows)
	colField := fmt.Sprintf("columns: %s", cols)
	if m.colsFocus {
		colField = m.styles.SelectedCell.Render(colField)
	} else {
		rowField = m.styles.SelectedCell.Render(rowField)
	}

	sb.WriteString(rowField + "   " + colField + "\n\n")
	sb.WriteString(m.styles.Status.Render("type digits, tab to switch, enter to create, q to quit"))
	return sb.String()
}

// viewEdit renders the table grid, one line per row, then the command
// palette and status line. Line geometry must match bodyCellAt.
func (m Model) viewEdit() string {
	t := m.ctrl.Table()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("tabledit — %d×%d", len(t.Body), t.ColumnCount())))
	sb.WriteString("\n\n")

	for _, sr := range m.sectionRows() {
		sec, _ := t.Section(sr.section)
		sb.WriteString(m.renderRow(sr, sec[sr.row]))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderCommands())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(m.status))
	return sb.String()
}

// renderRow renders one table row as fixed-width segments separated by a
// vertical rule.
func (m Model) renderRow(sr sectionRow, row tableblock.Row) string {
	segments := make([]string, 0, len(row.Cells))
	for c, cell := range row.Cells {
		segments = append(segments, m.renderCell(sr, c, cell))
	}
	return strings.Join(segments, "│")
}

func (m Model) renderCell(sr sectionRow, c int, cell tableblock.Cell) string {
	inBody := sr.section == tableblock.SectionBody

	// Merge-suppressed cells render as blank continuations of the anchor.
	if inBody && cell.Content == nil {
		return m.styles.MergedBlank.Render(pad("·", cellWidth))
	}

	text := cellText(cell)
	switch cell.Align {
	case "center":
		text = center(text, cellWidth)
	case "right":
		text = runewidth.FillLeft(text, cellWidth)
	default:
		text = pad(text, cellWidth)
	}

	style := m.styles.Cell
	if cell.Tag == tableblock.TagHeader {
		style = m.styles.HeaderCell
	}
	if inBody && m.ctrl.IsInRange(sr.row+1, c+1) {
		style = m.styles.RangeCell
	}
	if sr.section == m.cursorSection && sr.row == m.cursorRow && c == m.cursorCol {
		style = m.styles.SelectedCell
	}
	return style.Render(text)
}

// cellText flattens cell content for display, marking merge anchors with
// their extent.
func cellText(cell tableblock.Cell) string {
	text := ""
	if s, ok := cell.Content.(fmt.Stringer); ok {
		text = s.String()
	}
	if cell.Colspan > 1 || cell.Rowspan > 1 {
		text = fmt.Sprintf("%s ⤢%d×%d", text, max(cell.Rowspan, 1), max(cell.Colspan, 1))
	}
	return runewidth.Truncate(text, cellWidth, "…")
}

// renderCommands renders the palette, dimming disabled commands.
func (m Model) renderCommands() string {
	keyFor := map[string]string{}
	for key, name := range editKeyCommands {
		keyFor[name] = key
	}

	parts := make([]string, 0, 8)
	for _, state := range m.ctrl.Commands() {
		key, ok := keyFor[state.Name]
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s:%s", key, state.Label)
		if state.Disabled {
			parts = append(parts, m.styles.CommandDisabled.Render(label))
		} else {
			parts = append(parts, m.styles.Command.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func center(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	gap := width - runewidth.StringWidth(s)
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
