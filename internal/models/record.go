package models

import (
	"strings"

	"github.com/google/uuid"
)

// Record represents one logged work activity
type Record struct {
	ID                string   `json:"id"`
	Unit              string   `json:"unit"`
	ActivityType      string   `json:"activityType"`
	ManifestationType string   `json:"manifestationType"`
	Companions        []string `json:"companions"`
	DurationLabel     string   `json:"durationLabel"`
	Difficulty        string   `json:"difficulty"` // "", Baixa, Média, Alta, Muito alta
	Urgent            bool     `json:"urgent"`
	Date              string   `json:"date"` // YYYY-MM-DD
	Time              string   `json:"time"` // HH:MM
	Notes             string   `json:"notes"`
	Audio             string   `json:"audio,omitempty"` // base64-encoded clip
	Transcript        string   `json:"transcript,omitempty"`
}

// MaxCompanions is the upper bound on named parties per record
const MaxCompanions = 3

// Difficulty levels accepted by the form
var Difficulties = []string{"Baixa", "Média", "Alta", "Muito alta"}

// DurationMinutes maps each duration bucket to its estimated minutes
// (bucket midpoint, not measured time).
var DurationMinutes = map[string]int{
	"Até 5 min":   5,
	"5 a 15 min":  10,
	"15 a 30 min": 22,
	"30 min a 1h": 45,
	"1 a 2h":      90,
	"Mais de 2h":  150,
}

// NewID generates an opaque unique record id
func NewID() string {
	return uuid.NewString()
}

// EstimatedMinutes returns the estimated duration for the record's bucket,
// or 0 for an unknown label.
func (r Record) EstimatedMinutes() int {
	return DurationMinutes[r.DurationLabel]
}

// NormalizeCompanions trims entries, drops empties and duplicates, and caps
// the list at MaxCompanions, preserving first-seen order.
func NormalizeCompanions(names []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
		if len(out) == MaxCompanions {
			break
		}
	}
	return out
}

// LegacyRecord is the prior persisted record shape, which carried a single
// recipient instead of the companions list.
type LegacyRecord struct {
	ID                string `json:"id"`
	Unit              string `json:"unit"`
	ActivityType      string `json:"activityType"`
	ManifestationType string `json:"manifestationType"`
	Recipient         string `json:"recipient"`
	DurationLabel     string `json:"durationLabel"`
	Difficulty        string `json:"difficulty"`
	Urgent            bool   `json:"urgent"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Notes             string `json:"notes"`
}

// Migrate converts a legacy record to the current shape. The single
// recipient becomes the first (and only) companion.
func (l LegacyRecord) Migrate() Record {
	r := Record{
		ID:                l.ID,
		Unit:              l.Unit,
		ActivityType:      l.ActivityType,
		ManifestationType: l.ManifestationType,
		DurationLabel:     l.DurationLabel,
		Difficulty:        l.Difficulty,
		Urgent:            l.Urgent,
		Date:              l.Date,
		Time:              l.Time,
		Notes:             l.Notes,
	}
	if recipient := strings.TrimSpace(l.Recipient); recipient != "" {
		r.Companions = []string{recipient}
	}
	return r
}
