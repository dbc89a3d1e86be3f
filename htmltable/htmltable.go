// Package htmltable serializes a table block's attribute structure to
// semantic table markup and parses existing markup back into the
// structure.
package htmltable

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Sidsector9/tableblock"
)

// fixedLayoutClass marks tables rendered with a fixed column layout.
const fixedLayoutClass = "has-fixed-layout"

// Render writes t as a semantic <table> element to w.
func Render(w io.Writer, t tableblock.Table) error {
	return html.Render(w, Node(t))
}

// RenderString returns t as semantic table markup.
func RenderString(t tableblock.Table) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, t); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Node builds the <table> element tree for t. Sections with zero rows are
// omitted, as are cells whose content was nulled out by a merge.
func Node(t tableblock.Table) *html.Node {
	table := element(atom.Table)
	if t.HasFixedLayout {
		table.Attr = append(table.Attr, html.Attribute{Key: "class", Val: fixedLayoutClass})
	}

	if t.Caption != nil && !t.Caption.IsEmpty() {
		caption := element(atom.Caption)
		caption.AppendChild(textNode(contentText(t.Caption)))
		table.AppendChild(caption)
	}

	sections := []struct {
		a atom.Atom
		s tableblock.Section
	}{
		{atom.Thead, t.Head},
		{atom.Tbody, t.Body},
		{atom.Tfoot, t.Foot},
	}
	for _, sec := range sections {
		if tableblock.IsEmptySection(sec.s) {
			continue
		}
		wrapper := element(sec.a)
		for _, row := range sec.s {
			wrapper.AppendChild(rowNode(row))
		}
		table.AppendChild(wrapper)
	}
	return table
}

// rowNode builds a <tr> element, skipping merge-suppressed cells entirely.
func rowNode(row tableblock.Row) *html.Node {
	tr := element(atom.Tr)
	for _, cell := range row.Cells {
		if cell.Content == nil {
			continue
		}
		tr.AppendChild(cellNode(cell))
	}
	return tr
}

func cellNode(cell tableblock.Cell) *html.Node {
	a := atom.Td
	if cell.Tag == tableblock.TagHeader {
		a = atom.Th
	}
	n := element(a)
	if cell.Scope != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "scope", Val: cell.Scope})
	}
	if cell.Align != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "data-align", Val: cell.Align})
	}
	if cell.Colspan > 1 {
		n.Attr = append(n.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(cell.Colspan)})
	}
	if cell.Rowspan > 1 {
		n.Attr = append(n.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(cell.Rowspan)})
	}
	if text := contentText(cell.Content); text != "" {
		n.AppendChild(textNode(text))
	}
	return n
}

// Parse reads markup from r and rebuilds the attribute structure from the
// first <table> element found. Cell content is flattened to plain text.
func Parse(r io.Reader) (tableblock.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return tableblock.Table{}, fmt.Errorf("parse markup: %w", err)
	}
	tableNode := findElement(doc, atom.Table)
	if tableNode == nil {
		return tableblock.Table{}, fmt.Errorf("no table element found")
	}

	t := tableblock.Table{Caption: tableblock.Text("")}
	for _, attr := range tableNode.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, fixedLayoutClass) {
			t.HasFixedLayout = true
		}
	}

	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Caption:
			t.Caption = tableblock.Text(nodeText(c))
		case atom.Thead:
			t.Head = parseSection(c)
		case atom.Tbody:
			t.Body = parseSection(c)
		case atom.Tfoot:
			t.Foot = parseSection(c)
		}
	}
	return t, nil
}

func parseSection(n *html.Node) tableblock.Section {
	var sec tableblock.Section
	for tr := n.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != html.ElementNode || tr.DataAtom != atom.Tr {
			continue
		}
		var row tableblock.Row
		for td := tr.FirstChild; td != nil; td = td.NextSibling {
			if td.Type != html.ElementNode || (td.DataAtom != atom.Td && td.DataAtom != atom.Th) {
				continue
			}
			row.Cells = append(row.Cells, parseCell(td))
		}
		sec = append(sec, row)
	}
	return sec
}

func parseCell(n *html.Node) tableblock.Cell {
	cell := tableblock.Cell{
		Content: tableblock.Text(nodeText(n)),
		Tag:     tableblock.TagData,
	}
	if n.DataAtom == atom.Th {
		cell.Tag = tableblock.TagHeader
	}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "scope":
			cell.Scope = attr.Val
		case "data-align":
			cell.Align = attr.Val
		case "colspan":
			if v, err := strconv.Atoi(attr.Val); err == nil {
				cell.Colspan = v
			}
		case "rowspan":
			if v, err := strconv.Atoi(attr.Val); err == nil {
				cell.Rowspan = v
			}
		}
	}
	return cell
}

// findElement walks the tree depth-first for the first element with the
// given atom.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// nodeText flattens the text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// contentText renders an opaque RichText value as plain text. Host types
// that implement fmt.Stringer control their own flattening.
func contentText(content tableblock.RichText) string {
	if content == nil {
		return ""
	}
	if s, ok := content.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(content)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
