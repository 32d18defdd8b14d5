package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulioAlmeida83/atilog/internal/models"
	"github.com/JulioAlmeida83/atilog/internal/policy"
)

func TestTotalEstimatedMinutes(t *testing.T) {
	records := []models.Record{
		{DurationLabel: "Até 5 min"},
		{DurationLabel: "15 a 30 min"},
	}
	assert.Equal(t, 27, TotalEstimatedMinutes(records))
}

func TestFormatHoursRoundsHalfUp(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{27, "0.5"}, // 0.45 h rounds half-up
		{26, "0.4"}, // 0.433...
		{0, "0.0"},
		{60, "1.0"},
		{90, "1.5"},
		{57, "1.0"}, // 0.95 h
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHours(tt.minutes), "minutes=%d", tt.minutes)
	}
}

func TestCountByGroupOrderAndTotals(t *testing.T) {
	records := []models.Record{
		{ManifestationType: "Parecer", DurationLabel: "Até 5 min"},
		{ManifestationType: "Parecer", DurationLabel: "15 a 30 min"},
		{ActivityType: "Reunião", DurationLabel: "1 a 2h"},
		{},
	}

	groups := CountByGroup(records, policy.Default())
	require.Len(t, groups, 3)

	assert.Equal(t, Group{Key: "Parecer", Count: 2, Minutes: 27}, groups[0])
	// Ties break alphabetically
	assert.Equal(t, Group{Key: "Reunião", Count: 1, Minutes: 90}, groups[1])
	assert.Equal(t, Group{Key: policy.NoClassification, Count: 1, Minutes: 0}, groups[2])
}

func TestGroupByCustomKey(t *testing.T) {
	records := []models.Record{
		{Unit: "CJ"}, {Unit: "CJ"}, {Unit: "NLC"},
	}

	groups := GroupBy(records, func(r models.Record) string { return r.Unit })
	require.Len(t, groups, 2)
	assert.Equal(t, "CJ", groups[0].Key)
	assert.Equal(t, 2, groups[0].Count)
}
