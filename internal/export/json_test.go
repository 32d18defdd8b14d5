package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{
			ID:                "id-1",
			Unit:              "CJ",
			ManifestationType: "Parecer",
			Companions:        []string{"Ana"},
			DurationLabel:     "15 a 30 min",
			Urgent:            true,
			Date:              "2026-08-30",
			Time:              "10:30",
			Notes:             "linha 1\nlinha 2",
			Transcript:        "transcrição",
		},
		{
			ID:            "id-2",
			Unit:          "NLC",
			ActivityType:  "Ligação",
			DurationLabel: "Até 5 min",
			Date:          "2026-08-29",
			Time:          "15:00",
		},
	}
}

func TestJSONBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	records := sampleRecords()

	require.NoError(t, WriteJSON(path, records))

	restored, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, records, restored)
}

func TestDecodeBackupAcceptsLegacyShape(t *testing.T) {
	payload := []byte(`[
		{"id":"id-1","unit":"CJ","activityType":"Reunião","recipient":"X",
		 "durationLabel":"Até 5 min","date":"2026-08-30","time":"09:00"}
	]`)

	records, err := DecodeBackup(payload)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"X"}, records[0].Companions)
	assert.Equal(t, "Reunião", records[0].ActivityType)
}

func TestDecodeBackupRejectsMissingIdentity(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing id", `[{"date":"2026-08-30","time":"09:00"}]`},
		{"missing date", `[{"id":"x","time":"09:00"}]`},
		{"missing time", `[{"id":"x","date":"2026-08-30"}]`},
		{"not an array", `{"id":"x"}`},
		{"not objects", `[42]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBackup([]byte(tt.payload))
			require.ErrorIs(t, err, ErrInvalidImport)
		})
	}
}

func TestReadOptionsJSONMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"UNITS":["SEC"]}`), 0644))

	options, err := ReadOptionsJSON(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"SEC"}, options[models.ListUnits])
	// Lists absent from the file keep their defaults
	assert.Equal(t, models.DefaultOptions()[models.ListDurations], options[models.ListDurations])
}

func TestReadOptionsJSONRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0644))

	_, err := ReadOptionsJSON(path)
	require.ErrorIs(t, err, ErrInvalidImport)
}

func TestWriteCSVCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, WriteCSV(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "id,unit,activityType")
}
