package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	titleColor  = "E91E63"
	headerColor = "F8BBD0"
)

// WriteXLSX writes every sheet of wb as one workbook.
func WriteXLSX(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, s := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return fmt.Errorf("rename sheet %q: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("new sheet %q: %w", s.Name, err)
		}

		if err := writeSheet(f, s, styles); err != nil {
			return fmt.Errorf("sheet %q: %w", s.Name, err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

type sheetStyles struct {
	title   int
	header  int
	section int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{titleColor}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, fmt.Errorf("title style: %w", err)
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
	})
	if err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}

	st.section, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return st, fmt.Errorf("section style: %w", err)
	}

	return st, nil
}

func writeSheet(f *excelize.File, s Sheet, st sheetStyles) error {
	cols := s.Columns()
	row := 1

	if s.Title != "" {
		if err := writeRow(f, s.Name, row, []string{s.Title}); err != nil {
			return err
		}
		if err := mergeRow(f, s.Name, row, cols, st.title); err != nil {
			return err
		}
		row++
	}

	if len(s.Header) > 0 {
		if err := writeRow(f, s.Name, row, s.Header); err != nil {
			return err
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(s.Header), row)
		if err := f.SetCellStyle(s.Name, first, last, st.header); err != nil {
			return err
		}
		row++
	}

	sections := make(map[int]bool, len(s.Sections))
	for _, i := range s.Sections {
		sections[i] = true
	}

	for i, r := range s.Rows {
		if err := writeRow(f, s.Name, row, r); err != nil {
			return err
		}
		if sections[i] {
			if err := mergeRow(f, s.Name, row, cols, st.section); err != nil {
				return err
			}
		}
		row++
	}

	for i, w := range s.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.Name, col, col, w); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func mergeRow(f *excelize.File, sheet string, row, cols, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(cols, row)

	if cols > 1 {
		if err := f.MergeCell(sheet, first, last); err != nil {
			return err
		}
	}
	return f.SetCellStyle(sheet, first, last, style)
}
