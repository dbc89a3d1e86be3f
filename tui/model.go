// Package tui is a terminal host for the table block editor. It drives an
// editor.Controller from keyboard and mouse events and renders the table
// structure with merge and range highlighting.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sidsector9/tableblock"
	"github.com/Sidsector9/tableblock/editor"
)

// cellWidth is the fixed rendered width of one table column, and gridTop
// the number of lines above the first table row. Mouse-to-cell mapping
// depends on both.
const (
	cellWidth = 12
	gridTop   = 2
)

// mode is the top-level UI state: the table-creation placeholder form or
// the editing grid.
type mode int

const (
	modeCreate mode = iota
	modeEdit
)

// Model is the bubbletea model wrapping one editing session.
type Model struct {
	ctrl *editor.Controller

	mode      mode
	rowsInput string
	colsInput string
	colsFocus bool // placeholder form focus: false = rows field

	// cursor is the focused cell while editing.
	cursorSection tableblock.SectionName
	cursorRow     int
	cursorCol     int

	status   string
	quitting bool
	styles   Styles
}

// Styles contains the lipgloss styles for the UI.
type Styles struct {
	Title           lipgloss.Style
	HeaderCell      lipgloss.Style
	Cell            lipgloss.Style
	SelectedCell    lipgloss.Style
	RangeCell       lipgloss.Style
	MergedBlank     lipgloss.Style
	Command         lipgloss.Style
	CommandDisabled lipgloss.Style
	Status          lipgloss.Style
}

// DefaultStyles returns the default UI styles.
func DefaultStyles() Styles {
	primary := lipgloss.Color("86")
	muted := lipgloss.Color("241")

	return Styles{
		Title:           lipgloss.NewStyle().Bold(true).Foreground(primary),
		HeaderCell:      lipgloss.NewStyle().Bold(true),
		Cell:            lipgloss.NewStyle(),
		SelectedCell:    lipgloss.NewStyle().Reverse(true),
		RangeCell:       lipgloss.NewStyle().Background(lipgloss.Color("238")),
		MergedBlank:     lipgloss.NewStyle().Foreground(muted),
		Command:         lipgloss.NewStyle().Foreground(primary),
		CommandDisabled: lipgloss.NewStyle().Foreground(muted),
		Status:          lipgloss.NewStyle().Foreground(muted),
	}
}

// NewModel creates a model starting at the table-creation form.
func NewModel() Model {
	ctrl, err := editor.New()
	if err != nil {
		// Built-in commands always compile; reaching this is a bug.
		panic(err)
	}
	return Model{
		ctrl:          ctrl,
		mode:          modeCreate,
		cursorSection: tableblock.SectionBody,
		styles:        DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// focusCursor pushes the cursor position into the controller as the
// current cell selection.
func (m *Model) focusCursor() {
	m.ctrl.CellFocused(tableblock.CellSelection(m.cursorSection, m.cursorRow, m.cursorCol))
}

// sectionRows returns the (section, row) pairs in visual order, one per
// rendered grid line.
func (m Model) sectionRows() []sectionRow {
	t := m.ctrl.Table()
	var rows []sectionRow
	for i := range t.Head {
		rows = append(rows, sectionRow{tableblock.SectionHead, i})
	}
	for i := range t.Body {
		rows = append(rows, sectionRow{tableblock.SectionBody, i})
	}
	for i := range t.Foot {
		rows = append(rows, sectionRow{tableblock.SectionFoot, i})
	}
	return rows
}

type sectionRow struct {
	section tableblock.SectionName
	row     int
}
