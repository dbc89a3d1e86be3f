package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sidsector9/tableblock"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeCreate {
			return m.handleCreateKey(msg)
		}
		return m.handleEditKey(msg)

	case tea.MouseMsg:
		if m.mode == modeEdit {
			return m.handleMouse(msg)
		}
	}
	return m, nil
}

// handleCreateKey drives the placeholder form: two numeric fields and
// enter to create the table.
func (m Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.colsFocus = !m.colsFocus
		return m, nil

	case "backspace":
		field := m.activeField()
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
		return m, nil

	case "enter":
		// Unparseable counts fall back to the model default of 2.
		m.ctrl.CreateTable(m.rowsInput, m.colsInput)
		if focus, ok := m.ctrl.ConsumePendingFocus(); ok {
			m.cursorSection = focus.SectionName
			m.cursorRow = focus.RowIndex
			m.cursorCol = focus.ColumnIndex
			m.focusCursor()
		}
		m.mode = modeEdit
		m.status = "table created"
		return m, nil
	}

	if len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
		field := m.activeField()
		*field += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) activeField() *string {
	if m.colsFocus {
		return &m.colsInput
	}
	return &m.rowsInput
}

// editKeyCommands maps edit-mode keys to controller command names.
var editKeyCommands = map[string]string{
	"R": "insert-row-before",
	"r": "insert-row-after",
	"d": "delete-row",
	"C": "insert-column-before",
	"c": "insert-column-after",
	"D": "delete-column",
	"h": "toggle-header",
	"f": "toggle-footer",
	"m": "merge-cells",
	"1": "align-left",
	"2": "align-center",
	"3": "align-right",
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "down", "left", "right":
		m.ctrl.PointerUp()
		m.moveCursor(key)
		m.focusCursor()
		return m, nil

	case "shift+up", "shift+down", "shift+left", "shift+right":
		m.extendRange(key)
		return m, nil

	case "a":
		m.ctrl.ColumnSelected(m.cursorCol)
		m.status = fmt.Sprintf("column %d selected", m.cursorCol+1)
		return m, nil
	}

	if name, ok := editKeyCommands[key]; ok {
		if m.ctrl.Dispatch(name) {
			m.status = name
			m.syncCursor()
		} else {
			m.status = name + " unavailable"
		}
	}
	return m, nil
}

// handleMouse maps pointer events onto the drag state machine: press
// focuses a body cell and begins the range, motion extends it, release
// retains it for a merge command.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if row, col, ok := m.bodyCellAt(msg.X, msg.Y); ok {
			m.cursorSection = tableblock.SectionBody
			m.cursorRow = row - 1
			m.cursorCol = col - 1
			m.focusCursor()
			m.ctrl.PointerDown(row, col)
		}

	case tea.MouseActionMotion:
		if row, col, ok := m.bodyCellAt(msg.X, msg.Y); ok {
			m.ctrl.PointerMove(row, col)
		}

	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
	return m, nil
}

// bodyCellAt translates terminal coordinates into a 1-based body cell.
func (m Model) bodyCellAt(x, y int) (row, col int, ok bool) {
	rows := m.sectionRows()
	visual := y - gridTop
	if visual < 0 || visual >= len(rows) {
		return 0, 0, false
	}
	sr := rows[visual]
	if sr.section != tableblock.SectionBody {
		return 0, 0, false
	}

	c := x / (cellWidth + 1)
	t := m.ctrl.Table()
	if c < 0 || c >= len(t.Body[sr.row].Cells) {
		return 0, 0, false
	}
	return sr.row + 1, c + 1, true
}

// moveCursor moves the focused cell across section boundaries in visual
// order.
func (m *Model) moveCursor(key string) {
	rows := m.sectionRows()
	if len(rows) == 0 {
		return
	}
	idx := m.visualIndex(rows)

	switch key {
	case "up":
		if idx > 0 {
			idx--
		}
	case "down":
		if idx < len(rows)-1 {
			idx++
		}
	case "left":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right":
		m.cursorCol++
	}

	m.cursorSection = rows[idx].section
	m.cursorRow = rows[idx].row
	m.clampCursorCol()
}

// extendRange grows the drag range from the cursor with shifted arrows.
// Ranges only exist in the body.
func (m *Model) extendRange(key string) {
	if m.cursorSection != tableblock.SectionBody {
		return
	}
	if !m.ctrl.IsDragging() {
		m.ctrl.PointerDown(m.cursorRow+1, m.cursorCol+1)
	}
	m.moveCursor(key[len("shift+"):])
	if m.cursorSection != tableblock.SectionBody {
		return
	}
	m.ctrl.PointerMove(m.cursorRow+1, m.cursorCol+1)
	m.focusCursor()
}

// syncCursor re-reads the controller's selection after a command so the
// cursor follows re-derived selections (new row/column) and survives
// deletions.
func (m *Model) syncCursor() {
	sel, ok := m.ctrl.Selection()
	if ok && sel.Type == tableblock.SelectionCell {
		m.cursorSection = sel.SectionName
		m.cursorRow = sel.RowIndex
		m.cursorCol = sel.ColumnIndex
	}
	rows := m.sectionRows()
	if len(rows) == 0 {
		m.cursorSection = tableblock.SectionBody
		m.cursorRow = 0
		m.cursorCol = 0
		return
	}
	idx := m.visualIndex(rows)
	m.cursorSection = rows[idx].section
	m.cursorRow = rows[idx].row
	m.clampCursorCol()
}

// visualIndex finds the cursor's line in the visual row list, clamped to
// valid range.
func (m Model) visualIndex(rows []sectionRow) int {
	for i, sr := range rows {
		if sr.section == m.cursorSection && sr.row == m.cursorRow {
			return i
		}
	}
	// Cursor row no longer exists (deleted); clamp to the nearest line.
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].section == m.cursorSection && rows[i].row <= m.cursorRow {
			return i
		}
	}
	return len(rows) - 1
}

func (m *Model) clampCursorCol() {
	t := m.ctrl.Table()
	sec, _ := t.Section(m.cursorSection)
	if m.cursorRow >= len(sec) {
		return
	}
	width := len(sec[m.cursorRow].Cells)
	if width == 0 {
		m.cursorCol = 0
		return
	}
	if m.cursorCol >= width {
		m.cursorCol = width - 1
	}
}
