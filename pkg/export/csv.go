// Package export renders classified records to tabular form.
package export

import (
	"encoding/csv"
	"io"

	"bip-scraper/pkg/models"
)

// Column headers matching the spreadsheet consumed by analysts.
var csvHeader = []string{
	"Lokalizacja",
	"Data obwieszczenia",
	"Etap postępowania",
	"Branża",
	"Przedsięwzięcie",
	"Sygnatura",
	"Źródło URL",
	"Źródło nazwa",
}

// WriteCSV renders records to w in catalog order. The writer is flushed
// before returning.
func WriteCSV(w io.Writer, records []models.ClassifiedRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Location,
			r.DateLabel(),
			r.Stage,
			r.IndustryLabel(),
			r.Title,
			r.Signature,
			r.SourceURL,
			r.SourceName,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
