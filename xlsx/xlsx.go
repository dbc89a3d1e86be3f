// Package xlsx exports a table block's attribute structure to an XLSX
// worksheet. Head, body and foot rows are written in order; merged
// anchors become worksheet merge ranges and cell alignment becomes cell
// styles.
package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Sidsector9/tableblock"
)

// options holds export configuration.
type options struct {
	sheet string
}

// Option configures an export.
type Option func(*options)

// WithSheet sets the worksheet name (default "Sheet1").
func WithSheet(name string) Option {
	return func(o *options) { o.sheet = name }
}

// Export builds a workbook containing t. The caller owns the returned
// file and must Close it.
func Export(t tableblock.Table, opts ...Option) (*excelize.File, error) {
	o := &options{sheet: "Sheet1"}
	for _, opt := range opts {
		opt(o)
	}

	f := excelize.NewFile()
	if o.sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", o.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	if t.Caption != nil && !t.Caption.IsEmpty() {
		if err := f.SetDocProps(&excelize.DocProperties{Title: contentText(t.Caption)}); err != nil {
			f.Close()
			return nil, fmt.Errorf("set caption: %w", err)
		}
	}

	rowCursor := 1
	sections := []tableblock.Section{t.Head, t.Body, t.Foot}
	for _, sec := range sections {
		for _, row := range sec {
			if err := writeRow(f, o.sheet, rowCursor, row); err != nil {
				f.Close()
				return nil, err
			}
			rowCursor++
		}
	}
	return f, nil
}

// Write exports t and writes the workbook to w.
func Write(t tableblock.Table, w io.Writer, opts ...Option) error {
	f, err := Export(t, opts...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// writeRow writes one table row at the 1-based worksheet row. Cells nulled
// out by a merge are skipped; their area is covered by the anchor's merge
// range.
func writeRow(f *excelize.File, sheet string, worksheetRow int, row tableblock.Row) error {
	for col, cell := range row.Cells {
		if cell.Content == nil {
			continue
		}
		name, err := excelize.CoordinatesToCellName(col+1, worksheetRow)
		if err != nil {
			return fmt.Errorf("cell coordinates (%d,%d): %w", col+1, worksheetRow, err)
		}
		if err := f.SetCellValue(sheet, name, contentText(cell.Content)); err != nil {
			return fmt.Errorf("write cell %s: %w", name, err)
		}

		if cell.Colspan > 1 || cell.Rowspan > 1 {
			bottomRight, err := excelize.CoordinatesToCellName(col+max(cell.Colspan, 1), worksheetRow+max(cell.Rowspan, 1)-1)
			if err != nil {
				return fmt.Errorf("merge coordinates for %s: %w", name, err)
			}
			if err := f.MergeCell(sheet, name, bottomRight); err != nil {
				return fmt.Errorf("merge cells %s:%s: %w", name, bottomRight, err)
			}
		}

		if err := styleCell(f, sheet, name, cell); err != nil {
			return err
		}
	}
	return nil
}

// styleCell applies alignment and header emphasis.
func styleCell(f *excelize.File, sheet, name string, cell tableblock.Cell) error {
	style := &excelize.Style{}
	styled := false
	if cell.Align != "" {
		style.Alignment = &excelize.Alignment{Horizontal: cell.Align}
		styled = true
	}
	if cell.Tag == tableblock.TagHeader {
		style.Font = &excelize.Font{Bold: true}
		styled = true
	}
	if !styled {
		return nil
	}

	styleID, err := f.NewStyle(style)
	if err != nil {
		return fmt.Errorf("build style for %s: %w", name, err)
	}
	if err := f.SetCellStyle(sheet, name, name, styleID); err != nil {
		return fmt.Errorf("style cell %s: %w", name, err)
	}
	return nil
}

// contentText renders an opaque RichText value as plain text.
func contentText(content tableblock.RichText) string {
	if content == nil {
		return ""
	}
	if s, ok := content.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(content)
}
