package policy

import (
	"errors"
	"strings"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

// Field identifies one of the two classification fields
type Field int

const (
	FieldActivity Field = iota
	FieldManifestation
)

// Validation errors surfaced to the user on submit
var (
	ErrNoClassification   = errors.New("choose at least one classification (activity or manifestation)")
	ErrCompanionsRequired = errors.New("companions are required when a manifestation is set")
	ErrTooManyCompanions  = errors.New("at most 3 companions are allowed")
)

// Policy fixes the classification co-dependency rules. The captured product
// iterations disagreed on these rules, so exactly one configuration ships:
// see Default.
type Policy struct {
	// Exclusive makes the two classification fields mutually exclusive:
	// selecting one clears the other.
	Exclusive bool
	// CompanionsFor names the field whose selection requires a non-empty
	// companions list.
	CompanionsFor Field
}

// Default returns the deployed policy: classifications are mutually
// exclusive, and companions are required when the manifestation is set.
func Default() Policy {
	return Policy{Exclusive: true, CompanionsFor: FieldManifestation}
}

// companionField returns the value of the field that requires companions
func (p Policy) companionField(r models.Record) string {
	if p.CompanionsFor == FieldActivity {
		return r.ActivityType
	}
	return r.ManifestationType
}

// Validate is the record submission gate
func (p Policy) Validate(r models.Record) error {
	if strings.TrimSpace(r.ActivityType) == "" && strings.TrimSpace(r.ManifestationType) == "" {
		return ErrNoClassification
	}
	if len(r.Companions) > models.MaxCompanions {
		return ErrTooManyCompanions
	}
	if strings.TrimSpace(p.companionField(r)) != "" && len(r.Companions) == 0 {
		return ErrCompanionsRequired
	}
	return nil
}

// ApplySelection records a classification choice on the draft. Under an
// exclusive policy, picking one field clears the other; clearing the
// companion-bearing field also clears the companions list. This is a form
// side effect, not a stored-state invariant.
func (p Policy) ApplySelection(r *models.Record, selected Field, value string) {
	switch selected {
	case FieldActivity:
		r.ActivityType = value
		if p.Exclusive && value != "" {
			r.ManifestationType = ""
			if p.CompanionsFor == FieldManifestation {
				r.Companions = nil
			}
		}
	case FieldManifestation:
		r.ManifestationType = value
		if p.Exclusive && value != "" {
			r.ActivityType = ""
			if p.CompanionsFor == FieldActivity {
				r.Companions = nil
			}
		}
	}
}

// FormField names one conditional section of the record form
type FormField string

const (
	FormUnit          FormField = "unit"
	FormActivity      FormField = "activity"
	FormManifestation FormField = "manifestation"
	FormCompanions    FormField = "companions"
	FormDuration      FormField = "duration"
	FormDifficulty    FormField = "difficulty"
	FormUrgent        FormField = "urgent"
	FormDate          FormField = "date"
	FormTime          FormField = "time"
	FormNotes         FormField = "notes"
)

// FieldSet is the result of evaluating the policy against a draft record
type FieldSet struct {
	Visible  []FormField
	Required map[FormField]bool
}

// IsVisible reports whether the named field is part of the set
func (fs FieldSet) IsVisible(f FormField) bool {
	for _, v := range fs.Visible {
		if v == f {
			return true
		}
	}
	return false
}

// VisibleFields is a pure function from the current draft to the set of
// visible and required form fields, separate from rendering.
func (p Policy) VisibleFields(draft models.Record) FieldSet {
	fs := FieldSet{Required: map[FormField]bool{
		FormUnit:     true,
		FormDuration: true,
		FormDate:     true,
		FormTime:     true,
	}}

	fs.Visible = append(fs.Visible, FormUnit)

	// Under an exclusive policy, filling one classification hides the other
	// section until it is cleared again.
	hasActivity := strings.TrimSpace(draft.ActivityType) != ""
	hasManifestation := strings.TrimSpace(draft.ManifestationType) != ""
	if !p.Exclusive || !hasManifestation {
		fs.Visible = append(fs.Visible, FormActivity)
	}
	if !p.Exclusive || !hasActivity {
		fs.Visible = append(fs.Visible, FormManifestation)
	}

	if strings.TrimSpace(p.companionField(draft)) != "" {
		fs.Visible = append(fs.Visible, FormCompanions)
		fs.Required[FormCompanions] = true
	}

	fs.Visible = append(fs.Visible, FormDuration, FormDifficulty, FormUrgent, FormDate, FormTime, FormNotes)
	return fs
}

// NoClassification is the chart bucket for records without any
// classification value.
const NoClassification = "Sem classificação"

// GroupKey returns the chart grouping key for a record: the first non-empty
// value among the policy's priority list of classification fields.
func (p Policy) GroupKey(r models.Record) string {
	// The companion-bearing field leads the priority list.
	first, second := r.ManifestationType, r.ActivityType
	if p.CompanionsFor == FieldActivity {
		first, second = r.ActivityType, r.ManifestationType
	}
	if v := strings.TrimSpace(first); v != "" {
		return v
	}
	if v := strings.TrimSpace(second); v != "" {
		return v
	}
	return NoClassification
}

// GroupKeyBy groups by a single explicit field, used by the summary
// command's --by override.
func GroupKeyBy(r models.Record, field Field) string {
	var v string
	switch field {
	case FieldActivity:
		v = r.ActivityType
	case FieldManifestation:
		v = r.ManifestationType
	}
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return NoClassification
}
