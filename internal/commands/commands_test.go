package commands

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulioAlmeida83/atilog/internal/models"
)

func TestFilterRecords(t *testing.T) {
	records := []models.Record{
		{ID: "1", Unit: "CJ", Date: "2026-08-30"},
		{ID: "2", Unit: "NLC", Date: "2026-08-30"},
		{ID: "3", Unit: "CJ", Date: "2026-08-29"},
	}

	assert.Len(t, filterRecords(records, "", ""), 3)
	assert.Len(t, filterRecords(records, "cj", ""), 2)
	assert.Len(t, filterRecords(records, "", "2026-08-30"), 2)
	assert.Len(t, filterRecords(records, "CJ", "2026-08-29"), 1)
}

func TestResolveListName(t *testing.T) {
	name, err := resolveListName("units")
	require.NoError(t, err)
	assert.Equal(t, models.ListUnits, name)

	name, err = resolveListName("Manifestations")
	require.NoError(t, err)
	assert.Equal(t, models.ListManifestationTypes, name)

	_, err = resolveListName("bogus")
	require.Error(t, err)
}

func TestAttachFilesEncodesAudio(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "clip.ogg")
	require.NoError(t, os.WriteFile(audioPath, []byte{0x4f, 0x67, 0x67, 0x53}, 0644))

	var draft models.Record
	require.NoError(t, attachFiles(&draft, audioPath, ""))

	decoded, err := base64.StdEncoding.DecodeString(draft.Audio)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4f, 0x67, 0x67, 0x53}, decoded)
}

func TestAttachFilesTagsTranscriptInNotes(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := filepath.Join(dir, "fala.txt")
	require.NoError(t, os.WriteFile(transcriptPath, []byte("resumo da reunião\n"), 0644))

	draft := models.Record{Notes: "já tinha nota"}
	require.NoError(t, attachFiles(&draft, "", transcriptPath))

	assert.Equal(t, "resumo da reunião", draft.Transcript)
	assert.Contains(t, draft.Notes, "já tinha nota")
	assert.Contains(t, draft.Notes, transcriptTag+"\nresumo da reunião")

	// A second attach does not duplicate the tagged block
	require.NoError(t, attachFiles(&draft, "", transcriptPath))
	assert.Equal(t, 1, strings.Count(draft.Notes, transcriptTag))
}

func TestAttachFilesMissingFile(t *testing.T) {
	var draft models.Record
	require.Error(t, attachFiles(&draft, filepath.Join(t.TempDir(), "nope.ogg"), ""))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 8))
	assert.Equal(t, "abcde...", clip("abcdefghij", 8))
}
