package schedule

import (
	"bytes"
	"strings"

	"shiftsync/models"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" || a == atom.Td {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func cellClass(role Role, col int, value string) string {
	switch {
	case role == RoleHeader:
		return "sheet-header"
	case col == 0:
		return "shift-column"
	case strings.TrimSpace(value) != "":
		return "has-employee"
	default:
		return ""
	}
}

// RenderTab renders the header and shift rows of a tab as a spreadsheet-like HTML table.
func (p *GridParser) RenderTab(tab models.WeekTab) (string, error) {
	div := element(atom.Div, "sheet-tab")
	h3 := element(atom.H3, "")
	h3.AppendChild(text(tab.ID))
	div.AppendChild(h3)

	table := element(atom.Table, "google-sheet-table")
	div.AppendChild(table)

	for index, row := range tab.Rows {
		role := p.rows.Classify(index)
		if role != RoleHeader && !role.IsShift() {
			continue
		}
		tr := element(atom.Tr, "")
		for col, value := range row {
			td := element(atom.Td, cellClass(role, col, value))
			if value != "" {
				td.AppendChild(text(value))
			}
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, div); err != nil {
		return "", err
	}
	return buf.String(), nil
}
