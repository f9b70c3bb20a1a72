// Package report turns store contents into spreadsheet rows and writes them
// as xlsx or csv.
package report

import "strings"

type Kind string

const (
	KindGeneral  Kind = "general"
	KindDetailed Kind = "detailed"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(s)) {
	case "", KindGeneral:
		return KindGeneral, true
	case KindDetailed:
		return KindDetailed, true
	}
	return "", false
}

// Sheet is one tab. Title, when set, is written above the header and merged
// across the sheet's columns. Rows listed in Sections are section captions:
// bold and merged like the title.
type Sheet struct {
	Name     string
	Title    string
	Header   []string
	Rows     [][]string
	Widths   []float64
	Sections []int
}

// Columns is the widest of header, rows and widths.
func (s Sheet) Columns() int {
	n := len(s.Header)
	if len(s.Widths) > n {
		n = len(s.Widths)
	}
	for _, r := range s.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}

type Workbook struct {
	Kind   Kind
	Sheets []Sheet
}

// Sheet finds a tab by name, ignoring case.
func (w Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Sheet{}, false
}

func (w Workbook) SheetNames() []string {
	out := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		out = append(out, s.Name)
	}
	return out
}
