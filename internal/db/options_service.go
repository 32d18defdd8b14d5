package db

import (
	"encoding/json"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

// LoadOptions returns the pick-lists merged in increasing precedence:
// built-in defaults, legacy-key persisted options, current-key persisted
// options. A later source replaces a list wholesale. Malformed layers are
// skipped silently.
func LoadOptions() (models.Options, error) {
	merged := models.DefaultOptions()

	for _, key := range []string{LegacyOptionsKey, OptionsKey} {
		raw, ok, err := getItem(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var layer models.Options
		if err := json.Unmarshal([]byte(raw), &layer); err != nil {
			continue
		}
		merged = merged.Merge(layer)
	}

	return merged, nil
}

// SaveOptions persists the full pick-list set under the current key
func SaveOptions(options models.Options) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return setItem(OptionsKey, string(data))
}

// AddOptionValue inserts value into the named list and persists the result.
// Adding a duplicate is a no-op on the stored set.
func AddOptionValue(listName, value string) (bool, error) {
	options, err := LoadOptions()
	if err != nil {
		return false, err
	}
	changed := options.Add(listName, value)
	if !changed {
		return false, nil
	}
	return true, SaveOptions(options)
}

// RemoveOptionValue removes all matching entries from the named list and
// persists the result.
func RemoveOptionValue(listName, value string) (bool, error) {
	options, err := LoadOptions()
	if err != nil {
		return false, err
	}
	changed := options.Remove(listName, value)
	if !changed {
		return false, nil
	}
	return true, SaveOptions(options)
}
