package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

func TestValidateRequiresAClassification(t *testing.T) {
	pol := Default()

	err := pol.Validate(models.Record{Unit: "CJ", DurationLabel: "Até 5 min"})
	require.ErrorIs(t, err, ErrNoClassification)

	assert.NoError(t, pol.Validate(models.Record{ActivityType: "Reunião"}))
}

func TestValidateCompanionsRequiredForManifestation(t *testing.T) {
	pol := Default()

	err := pol.Validate(models.Record{ManifestationType: "Parecer"})
	require.ErrorIs(t, err, ErrCompanionsRequired)

	record := models.Record{
		ManifestationType: "Parecer",
		Companions:        []string{"Ana"},
	}
	assert.NoError(t, pol.Validate(record))

	// The activity field does not demand companions under the default policy
	assert.NoError(t, pol.Validate(models.Record{ActivityType: "Ligação"}))
}

func TestValidateCompanionLimit(t *testing.T) {
	record := models.Record{
		ActivityType: "Reunião",
		Companions:   []string{"A", "B", "C", "D"},
	}
	require.ErrorIs(t, Default().Validate(record), ErrTooManyCompanions)
}

func TestApplySelectionExclusivity(t *testing.T) {
	pol := Default()
	record := models.Record{
		ManifestationType: "Parecer",
		Companions:        []string{"Ana"},
	}

	// Picking an activity clears the manifestation and its companions
	pol.ApplySelection(&record, FieldActivity, "Reunião")
	assert.Equal(t, "Reunião", record.ActivityType)
	assert.Empty(t, record.ManifestationType)
	assert.Empty(t, record.Companions)

	// And back again
	pol.ApplySelection(&record, FieldManifestation, "Ofício")
	assert.Equal(t, "Ofício", record.ManifestationType)
	assert.Empty(t, record.ActivityType)
}

func TestApplySelectionNonExclusiveKeepsBoth(t *testing.T) {
	pol := Policy{Exclusive: false, CompanionsFor: FieldActivity}
	record := models.Record{ManifestationType: "Parecer"}

	pol.ApplySelection(&record, FieldActivity, "Reunião")
	assert.Equal(t, "Reunião", record.ActivityType)
	assert.Equal(t, "Parecer", record.ManifestationType)
}

func TestVisibleFieldsCompanionsFollowManifestation(t *testing.T) {
	pol := Default()

	fs := pol.VisibleFields(models.Record{})
	assert.False(t, fs.IsVisible(FormCompanions))
	assert.True(t, fs.IsVisible(FormActivity))
	assert.True(t, fs.IsVisible(FormManifestation))

	fs = pol.VisibleFields(models.Record{ManifestationType: "Parecer"})
	assert.True(t, fs.IsVisible(FormCompanions))
	assert.True(t, fs.Required[FormCompanions])
	// Exclusive policy hides the other classification once one is set
	assert.False(t, fs.IsVisible(FormActivity))

	fs = pol.VisibleFields(models.Record{ActivityType: "Reunião"})
	assert.False(t, fs.IsVisible(FormManifestation))
	assert.False(t, fs.IsVisible(FormCompanions))
}

func TestGroupKeyPriority(t *testing.T) {
	pol := Default()

	assert.Equal(t, "Parecer", pol.GroupKey(models.Record{
		ManifestationType: "Parecer",
		ActivityType:      "Reunião",
	}))
	assert.Equal(t, "Reunião", pol.GroupKey(models.Record{ActivityType: "Reunião"}))
	assert.Equal(t, NoClassification, pol.GroupKey(models.Record{}))
}

func TestGroupKeyBy(t *testing.T) {
	record := models.Record{ManifestationType: "Parecer"}

	assert.Equal(t, "Parecer", GroupKeyBy(record, FieldManifestation))
	assert.Equal(t, NoClassification, GroupKeyBy(record, FieldActivity))
}
