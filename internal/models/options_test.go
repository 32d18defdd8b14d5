package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsMergeCurrentWinsWholesale(t *testing.T) {
	defaults := Options{ListUnits: {"CJ", "NLC"}}
	legacy := Options{ListUnits: {"CJ"}}
	current := Options{ListUnits: {"CJ", "NLC", "X"}}

	merged := defaults.Merge(legacy, current)

	assert.Equal(t, []string{"CJ", "NLC", "X"}, merged[ListUnits])
}

func TestOptionsMergeKeepsUntouchedLists(t *testing.T) {
	defaults := DefaultOptions()
	merged := defaults.Merge(Options{ListUnits: {"SEC"}})

	assert.Equal(t, []string{"SEC"}, merged[ListUnits])
	assert.Equal(t, defaults[ListDurations], merged[ListDurations])
}

func TestOptionsMergeDoesNotMutateReceiver(t *testing.T) {
	defaults := Options{ListUnits: {"CJ"}}
	_ = defaults.Merge(Options{ListUnits: {"NLC"}})

	assert.Equal(t, []string{"CJ"}, defaults[ListUnits])
}

func TestOptionsAddSetSemantics(t *testing.T) {
	options := Options{ListUnits: {"CJ", "NLC"}}

	require.True(t, options.Add(ListUnits, " SEC "))
	assert.Equal(t, []string{"CJ", "NLC", "SEC"}, options[ListUnits])

	// Duplicate add is a no-op on the stored set
	require.False(t, options.Add(ListUnits, "SEC"))
	assert.Equal(t, []string{"CJ", "NLC", "SEC"}, options[ListUnits])

	require.False(t, options.Add(ListUnits, "   "))
}

func TestOptionsRemove(t *testing.T) {
	options := Options{ListContacts: {"Ana", "Bruno", "Ana"}}

	require.True(t, options.Remove(ListContacts, "Ana"))
	assert.Equal(t, []string{"Bruno"}, options[ListContacts])

	require.False(t, options.Remove(ListContacts, "Carla"))
}
