package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoraqua/guardianes-api/internal/models"
)

func TestDecodeProgressFillsTeamID(t *testing.T) {
	raw := []byte(`{"teamName":"Tlaloques","completedModules":2,"approvalStatus":"none","data":{}}`)

	progress, ok := decodeProgress(raw, "5A-1")
	require.True(t, ok)
	assert.Equal(t, "5A-1", progress.TeamID)
	assert.Equal(t, 2, progress.CompletedModules)
}

func TestDecodeProgressCorruptReadsAsAbsent(t *testing.T) {
	for _, raw := range []string{`{broken`, `"just a string"?`, `{"completedModules":"dos"}`} {
		_, ok := decodeProgress([]byte(raw), "5A-1")
		assert.False(t, ok, raw)
	}
}

func TestDecodeProgressKeepsLooseFieldValues(t *testing.T) {
	raw := []byte(`{"teamId":"5A-1","data":{"1":{"pregunta_1":"texto","boceto":{"name":"a.png","status":"pending"}}}}`)

	progress, ok := decodeProgress(raw, "5A-1")
	require.True(t, ok)
	bucket := progress.Data[1]
	assert.Equal(t, models.FieldValueText, bucket["pregunta_1"].Kind)
	assert.Equal(t, models.FieldValueFile, bucket["boceto"].Kind)
	assert.Equal(t, models.FileStatusPending, bucket["boceto"].File.Status)
}

func TestDecodeSessionLog(t *testing.T) {
	entries, ok := decodeSessionLog([]byte(`[{"id":"a","teamId":"5A-1"},{"id":"b","teamId":"5A-2"}]`))
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[1].ID)

	_, ok = decodeSessionLog([]byte(`{"not":"an array"}`))
	assert.False(t, ok)
}

func TestProgressKeyNamespacing(t *testing.T) {
	assert.Equal(t, "progress:5A-1", progressKey("5A-1"))
	assert.Equal(t, "session_log", sessionLogKey)
}
