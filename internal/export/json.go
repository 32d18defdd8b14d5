package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

// ErrInvalidImport is returned when a user-supplied backup file cannot be
// accepted. Existing state is left untouched by a failed import.
var ErrInvalidImport = errors.New("invalid backup file")

// MarshalRecords renders the full record list as a pretty-printed JSON backup
func MarshalRecords(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// WriteJSON writes the JSON backup to path
func WriteJSON(path string, records []models.Record) error {
	data, err := MarshalRecords(records)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// DecodeBackup parses a JSON backup in either the current or the immediately
// prior record shape, migrating legacy records. The whole payload is
// rejected if any record lacks an id, date, or time.
func DecodeBackup(data []byte) ([]models.Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of records", ErrInvalidImport)
	}

	records := make([]models.Record, 0, len(raw))
	for i, element := range raw {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(element, &probe); err != nil {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrInvalidImport, i+1)
		}

		var record models.Record
		if _, isLegacy := probe["recipient"]; isLegacy {
			var legacy models.LegacyRecord
			if err := json.Unmarshal(element, &legacy); err != nil {
				return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidImport, i+1, err)
			}
			record = legacy.Migrate()
		} else {
			if err := json.Unmarshal(element, &record); err != nil {
				return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidImport, i+1, err)
			}
		}

		record.Companions = models.NormalizeCompanions(record.Companions)

		if strings.TrimSpace(record.ID) == "" ||
			strings.TrimSpace(record.Date) == "" ||
			strings.TrimSpace(record.Time) == "" {
			return nil, fmt.Errorf("%w: record %d is missing id, date, or time", ErrInvalidImport, i+1)
		}
		records = append(records, record)
	}

	return records, nil
}

// ReadJSON reads and decodes a JSON backup file
func ReadJSON(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeBackup(data)
}

// MarshalOptions renders the pick-lists as a pretty-printed JSON backup
func MarshalOptions(options models.Options) ([]byte, error) {
	return json.MarshalIndent(options, "", "  ")
}

// WriteOptionsJSON writes the pick-list backup to path
func WriteOptionsJSON(path string, options models.Options) error {
	data, err := MarshalOptions(options)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// ReadOptionsJSON reads a pick-list backup. The result is merged over the
// built-in defaults, list by list.
func ReadOptionsJSON(path string) (models.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var imported models.Options
	if err := json.Unmarshal(data, &imported); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object of pick-lists", ErrInvalidImport)
	}
	return models.DefaultOptions().Merge(imported), nil
}

// writeFile writes data to path via a temp file and rename, so a failed
// export never leaves a truncated file behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "atilog-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}
	return os.Rename(temp.Name(), path)
}
