package tableblock

import "fmt"

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // structure violates a model invariant
	SeverityWarning                 // structure is legal but suspicious
)

// ValidationIssue represents a single problem found while checking a
// table's structural invariants.
type ValidationIssue struct {
	Severity Severity
	Section  SectionName
	Row      int // 0-based, -1 when the issue is section-wide
	Message  string
}

// String formats the issue as "[ERROR] body[2]: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	if v.Row < 0 {
		return fmt.Sprintf("[%s] %s: %s", sev, v.Section, v.Message)
	}
	return fmt.Sprintf("[%s] %s[%d]: %s", sev, v.Section, v.Row, v.Message)
}

// Validate checks t against the model's structural invariants: uniform row
// length within each section, legal cell tags, non-negative spans, merge
// rectangles contained in the body, and suppressed cells covered by some
// merge rectangle. It returns the issues found; an empty slice means the
// table is well formed.
func Validate(t Table) []ValidationIssue {
	var issues []ValidationIssue

	for _, name := range sectionOrder {
		sec, _ := t.Section(name)
		issues = append(issues, validateSection(name, sec)...)
	}

	records := MergeRecords(t)
	for _, rec := range records {
		if rec.Row-1+rec.RowSpan > len(t.Body) {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Section:  SectionBody,
				Row:      rec.Row - 1,
				Message:  fmt.Sprintf("merge at (%d,%d) spans %d rows past the body", rec.Row, rec.Col, rec.RowSpan),
			})
		}
	}

	// Every nulled-out cell should be accounted for by a merge rectangle.
	for r, row := range t.Body {
		for c, cell := range row.Cells {
			if cell.Content == nil && !IsSuppressed(records, r+1, c+1) {
				issues = append(issues, ValidationIssue{
					Severity: SeverityWarning,
					Section:  SectionBody,
					Row:      r,
					Message:  fmt.Sprintf("cell %d has null content outside any merge rectangle", c),
				})
			}
		}
	}

	return issues
}

func validateSection(name SectionName, sec Section) []ValidationIssue {
	var issues []ValidationIssue
	width := columnCount(sec)
	for i, row := range sec {
		if len(row.Cells) != width {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Section:  name,
				Row:      i,
				Message:  fmt.Sprintf("row has %d cells, expected %d", len(row.Cells), width),
			})
		}
		for c, cell := range row.Cells {
			if cell.Tag != TagData && cell.Tag != TagHeader {
				issues = append(issues, ValidationIssue{
					Severity: SeverityError,
					Section:  name,
					Row:      i,
					Message:  fmt.Sprintf("cell %d has unknown tag %q", c, cell.Tag),
				})
			}
			if cell.Colspan < 0 || cell.Rowspan < 0 {
				issues = append(issues, ValidationIssue{
					Severity: SeverityError,
					Section:  name,
					Row:      i,
					Message:  fmt.Sprintf("cell %d has negative span", c),
				})
			}
		}
	}
	return issues
}
