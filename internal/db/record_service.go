package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

// ErrRecordNotFound is returned when no stored record matches the given id
var ErrRecordNotFound = errors.New("record not found")

// ErrAmbiguousID is returned when an id prefix matches more than one record
var ErrAmbiguousID = errors.New("id prefix matches more than one record")

// LoadRecords reads the persisted record list. When the current key is
// absent it falls back to the legacy key, migrates each legacy record, and
// persists the migrated snapshot under the current key. Malformed data
// yields an empty list rather than an error; this is a local cache, not a
// system of record.
func LoadRecords() ([]models.Record, error) {
	raw, ok, err := getItem(RecordsKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var records []models.Record
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			return []models.Record{}, nil
		}
		return records, nil
	}

	// No current snapshot: try the prior schema version
	raw, ok, err = getItem(LegacyRecordsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Record{}, nil
	}

	var legacy []models.LegacyRecord
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		return []models.Record{}, nil
	}

	records := make([]models.Record, 0, len(legacy))
	for _, l := range legacy {
		records = append(records, l.Migrate())
	}

	// One-time migration: persist under the current key. The legacy key is
	// left in place.
	if err := SaveRecords(records); err != nil {
		return nil, fmt.Errorf("failed to persist migrated records: %w", err)
	}

	return records, nil
}

// SaveRecords persists the full record list, replacing any prior content
func SaveRecords(records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return setItem(RecordsKey, string(data))
}

// UpsertRecord inserts the record, or replaces the stored record with the
// same id in place, preserving list order.
func UpsertRecord(record models.Record) error {
	records, err := LoadRecords()
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	return SaveRecords(records)
}

// GetRecordByID finds a record by its full id or a unique id prefix
func GetRecordByID(id string) (*models.Record, error) {
	records, err := LoadRecords()
	if err != nil {
		return nil, err
	}

	var match *models.Record
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
		if strings.HasPrefix(records[i].ID, id) {
			if match != nil {
				return nil, ErrAmbiguousID
			}
			match = &records[i]
		}
	}
	if match == nil {
		return nil, ErrRecordNotFound
	}
	return match, nil
}

// DeleteRecord removes the record with the given id (or unique prefix)
func DeleteRecord(id string) (*models.Record, error) {
	record, err := GetRecordByID(id)
	if err != nil {
		return nil, err
	}

	records, err := LoadRecords()
	if err != nil {
		return nil, err
	}

	kept := records[:0]
	for _, r := range records {
		if r.ID != record.ID {
			kept = append(kept, r)
		}
	}

	if err := SaveRecords(kept); err != nil {
		return nil, err
	}
	return record, nil
}
