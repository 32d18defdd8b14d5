package models

import "strings"

// Options holds the user-editable pick-lists, keyed by list name
type Options map[string][]string

// Pick-list names
const (
	ListUnits              = "UNITS"
	ListActivityTypes      = "ACTIVITY_TYPES"
	ListManifestationTypes = "MANIFESTATION_TYPES"
	ListContacts           = "CONTACTS"
	ListDurations          = "DURATIONS"
)

// DefaultOptions returns the built-in pick-lists
func DefaultOptions() Options {
	return Options{
		ListUnits:         {"CJ", "NLC"},
		ListActivityTypes: {"Reunião", "Ligação", "Atendimento", "Despacho"},
		ListManifestationTypes: {
			"Parecer", "Nota Técnica", "Ofício", "Relatório",
		},
		ListContacts: {},
		ListDurations: {
			"Até 5 min", "5 a 15 min", "15 a 30 min",
			"30 min a 1h", "1 a 2h", "Mais de 2h",
		},
	}
}

// Merge layers sources in increasing precedence over the receiver. A list
// present in a later source replaces the whole list, not individual entries.
func (o Options) Merge(sources ...Options) Options {
	out := make(Options, len(o))
	for name, values := range o {
		out[name] = append([]string(nil), values...)
	}
	for _, src := range sources {
		for name, values := range src {
			out[name] = append([]string(nil), values...)
		}
	}
	return out
}

// Add inserts value into the named list with set semantics: existing order
// is preserved and the new entry is appended. Empty values are ignored.
// Reports whether the list changed.
func (o Options) Add(listName, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, existing := range o[listName] {
		if existing == value {
			return false
		}
	}
	o[listName] = append(o[listName], value)
	return true
}

// Remove deletes all matching entries from the named list
func (o Options) Remove(listName, value string) bool {
	values := o[listName]
	var kept []string
	for _, v := range values {
		if v != value {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(values) {
		return false
	}
	o[listName] = kept
	return true
}
