package export

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

// CSVColumns is the fixed export column order. Audio never goes to CSV;
// it survives only in JSON backups.
var CSVColumns = []string{
	"id", "unit", "activityType", "manifestationType", "companions",
	"durationLabel", "difficulty", "urgent", "date", "time", "notes",
	"transcript",
}

// Urgent flag labels in the export locale
const (
	urgentYes = "Sim"
	urgentNo  = "Não"
)

// MarshalCSV renders the records as CSV with a header row. Fields containing
// a comma, double quote, or newline are quoted with internal quotes doubled;
// companions serialize as one cell joined with "; ".
func MarshalCSV(records []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVColumns); err != nil {
		return nil, err
	}
	for _, r := range records {
		urgent := urgentNo
		if r.Urgent {
			urgent = urgentYes
		}
		row := []string{
			r.ID, r.Unit, r.ActivityType, r.ManifestationType,
			strings.Join(r.Companions, "; "),
			r.DurationLabel, r.Difficulty, urgent, r.Date, r.Time,
			r.Notes, r.Transcript,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes the CSV export to path
func WriteCSV(path string, records []models.Record) error {
	data, err := MarshalCSV(records)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}
