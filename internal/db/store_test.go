package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

// setupStore opens a fresh sqlite store in a temp dir for each test
func setupStore(t *testing.T) {
	t.Helper()
	require.NoError(t, InitializeAt(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() {
		require.NoError(t, Close())
		DB = nil
	})
}

func TestLoadRecordsEmptyStore(t *testing.T) {
	setupStore(t)

	records, err := LoadRecords()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveAndLoadRecords(t *testing.T) {
	setupStore(t)

	records := []models.Record{
		{ID: "id-1", Unit: "CJ", ActivityType: "Reunião", DurationLabel: "Até 5 min", Date: "2026-08-30", Time: "09:00"},
		{ID: "id-2", Unit: "NLC", ManifestationType: "Parecer", Companions: []string{"Ana"}, Date: "2026-08-30", Time: "10:00"},
	}
	require.NoError(t, SaveRecords(records))

	loaded, err := LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestLoadRecordsMigratesLegacyKey(t *testing.T) {
	setupStore(t)

	legacy := `[{"id":"id-1","unit":"CJ","activityType":"Reunião","recipient":"X",
		"durationLabel":"Até 5 min","date":"2026-08-30","time":"09:00"}]`
	require.NoError(t, setItem(LegacyRecordsKey, legacy))

	records, err := LoadRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"X"}, records[0].Companions)

	// The migrated snapshot is persisted under the current key
	_, ok, err := getItem(RecordsKey)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second load reads the current key directly
	again, err := LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestLoadRecordsMalformedYieldsEmpty(t *testing.T) {
	setupStore(t)

	require.NoError(t, setItem(RecordsKey, "not json"))

	records, err := LoadRecords()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpsertRecordReplacesInPlace(t *testing.T) {
	setupStore(t)

	require.NoError(t, SaveRecords([]models.Record{
		{ID: "id-1", Unit: "CJ"},
		{ID: "id-2", Unit: "CJ"},
	}))

	require.NoError(t, UpsertRecord(models.Record{ID: "id-1", Unit: "NLC"}))

	records, err := LoadRecords()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "NLC", records[0].Unit)
	assert.Equal(t, "id-2", records[1].ID)
}

func TestUpsertRecordAppendsNew(t *testing.T) {
	setupStore(t)

	require.NoError(t, UpsertRecord(models.Record{ID: "id-1"}))
	require.NoError(t, UpsertRecord(models.Record{ID: "id-2"}))

	records, err := LoadRecords()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGetRecordByIDPrefix(t *testing.T) {
	setupStore(t)

	require.NoError(t, SaveRecords([]models.Record{
		{ID: "abc12345"},
		{ID: "abd67890"},
	}))

	record, err := GetRecordByID("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc12345", record.ID)

	_, err = GetRecordByID("ab")
	require.ErrorIs(t, err, ErrAmbiguousID)

	_, err = GetRecordByID("zzz")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteRecord(t *testing.T) {
	setupStore(t)

	require.NoError(t, SaveRecords([]models.Record{
		{ID: "id-1"}, {ID: "id-2"},
	}))

	deleted, err := DeleteRecord("id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", deleted.ID)

	records, err := LoadRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id-2", records[0].ID)

	_, err = DeleteRecord("id-1")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestLoadOptionsDefaults(t *testing.T) {
	setupStore(t)

	options, err := LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultOptions(), options)
}

func TestLoadOptionsMergePrecedence(t *testing.T) {
	setupStore(t)

	require.NoError(t, setItem(LegacyOptionsKey, `{"UNITS":["CJ"]}`))
	require.NoError(t, setItem(OptionsKey, `{"UNITS":["CJ","NLC","X"]}`))

	options, err := LoadOptions()
	require.NoError(t, err)

	// Current key wins wholesale over legacy and defaults at the list level
	assert.Equal(t, []string{"CJ", "NLC", "X"}, options[models.ListUnits])
	// Lists only the defaults define survive the merge
	assert.Equal(t, models.DefaultOptions()[models.ListDurations], options[models.ListDurations])
}

func TestLoadOptionsSkipsMalformedLayer(t *testing.T) {
	setupStore(t)

	require.NoError(t, setItem(OptionsKey, "not json"))

	options, err := LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultOptions(), options)
}

func TestAddOptionValuePersists(t *testing.T) {
	setupStore(t)

	changed, err := AddOptionValue(models.ListUnits, "SEC")
	require.NoError(t, err)
	assert.True(t, changed)

	// Duplicate add is a no-op
	changed, err = AddOptionValue(models.ListUnits, "SEC")
	require.NoError(t, err)
	assert.False(t, changed)

	options, err := LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"CJ", "NLC", "SEC"}, options[models.ListUnits])
}

func TestRemoveOptionValuePersists(t *testing.T) {
	setupStore(t)

	changed, err := RemoveOptionValue(models.ListUnits, "NLC")
	require.NoError(t, err)
	assert.True(t, changed)

	options, err := LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"CJ"}, options[models.ListUnits])
}
