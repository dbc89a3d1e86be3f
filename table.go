package tableblock

import "strconv"

// SectionName identifies one of the three table sections.
type SectionName string

const (
	SectionHead SectionName = "head"
	SectionBody SectionName = "body"
	SectionFoot SectionName = "foot"
)

// Cell tags.
const (
	TagData   = "td"
	TagHeader = "th"
)

// DefaultCount is the row/column count used when table creation receives a
// non-positive or unparseable count.
const DefaultCount = 2

// Cell holds the attributes of a single table cell. A nil Content marks a
// cell subsumed by a merge; such cells must not be rendered at all, not
// even as an empty cell.
type Cell struct {
	Content RichText `json:"content"`
	Tag     string   `json:"tag"`
	Scope   string   `json:"scope,omitempty"`
	Align   string   `json:"align,omitempty"`
	Colspan int      `json:"colspan,omitempty"`
	Rowspan int      `json:"rowspan,omitempty"`
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells []Cell `json:"cells"`
}

// Section is an ordered sequence of rows. A section with zero rows is
// absent from rendered output.
type Section []Row

// Table is the persisted attribute structure of a table block. Every
// transformation in this package returns a new Table value; callers must
// treat each returned Table as an immutable snapshot.
type Table struct {
	HasFixedLayout bool     `json:"hasFixedLayout"`
	Head           Section  `json:"head"`
	Body           Section  `json:"body"`
	Foot           Section  `json:"foot"`
	Caption        RichText `json:"caption"`
}

// sectionOrder is the rendering and scanning order of sections.
var sectionOrder = []SectionName{SectionHead, SectionBody, SectionFoot}

// CreateTable builds a table with rowCount body rows of columnCount cells
// each. Head and foot start empty. Non-positive counts fall back to
// DefaultCount.
func CreateTable(rowCount, columnCount int) Table {
	if rowCount <= 0 {
		rowCount = DefaultCount
	}
	if columnCount <= 0 {
		columnCount = DefaultCount
	}
	body := make(Section, rowCount)
	for i := range body {
		body[i] = newRow(columnCount, SectionBody)
	}
	return Table{Body: body, Caption: emptyContent}
}

// ParseCount parses a row/column count from a form field. Unparseable or
// non-positive input falls back to DefaultCount.
func ParseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return DefaultCount
	}
	return n
}

// IsEmptySection reports whether the section has zero rows. A section
// whose rows have zero cells is not empty.
func IsEmptySection(s Section) bool { return len(s) == 0 }

// DefaultTag returns the cell tag used for new cells in the named
// section: header cells for head and foot, data cells for the body.
func DefaultTag(name SectionName) string {
	if name == SectionHead || name == SectionFoot {
		return TagHeader
	}
	return TagData
}

// Section returns the named section. ok is false for unknown names.
func (t Table) Section(name SectionName) (Section, bool) {
	switch name {
	case SectionHead:
		return t.Head, true
	case SectionBody:
		return t.Body, true
	case SectionFoot:
		return t.Foot, true
	}
	return nil, false
}

// withSection returns a copy of t with the named section replaced.
func (t Table) withSection(name SectionName, s Section) Table {
	switch name {
	case SectionHead:
		t.Head = s
	case SectionBody:
		t.Body = s
	case SectionFoot:
		t.Foot = s
	}
	return t
}

// columnCount returns the cell count of the section's first row, or 0 for
// an empty section. Rows within a section share one length, so the first
// row is representative.
func columnCount(s Section) int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0].Cells)
}

// ColumnCount returns the widest section's column count.
func (t Table) ColumnCount() int {
	width := 0
	for _, name := range sectionOrder {
		sec, _ := t.Section(name)
		if w := columnCount(sec); w > width {
			width = w
		}
	}
	return width
}

// newRow builds a row of width cells with empty content and the section's
// default tag.
func newRow(width int, name SectionName) Row {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = Cell{Content: emptyContent, Tag: DefaultTag(name)}
	}
	return Row{Cells: cells}
}

// cloneSection copies a section and each row's cell slice so that edits to
// the copy never alias the original snapshot.
func cloneSection(s Section) Section {
	if s == nil {
		return nil
	}
	out := make(Section, len(s))
	for i, row := range s {
		out[i] = cloneRow(row)
	}
	return out
}

func cloneRow(r Row) Row {
	cells := make([]Cell, len(r.Cells))
	copy(cells, r.Cells)
	return Row{Cells: cells}
}
