package report

import (
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes a single sheet. The title is only written for sheets
// without a header row.
func WriteCSV(w io.Writer, s Sheet) error {
	out := gocsv.NewSafeCSVWriter(csv.NewWriter(w))

	if len(s.Header) > 0 {
		if err := out.Write(s.Header); err != nil {
			return err
		}
	} else if s.Title != "" {
		if err := out.Write([]string{s.Title}); err != nil {
			return err
		}
	}

	for _, r := range s.Rows {
		if err := out.Write(r); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}
