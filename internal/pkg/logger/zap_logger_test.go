package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l := NewIsolatedLogger(path)

	l.Info("NoteActivity", "Question added", map[string]interface{}{"topic": "Arrays"})
	l.Debug("NoteActivity", "below file level", nil)
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Question added", entry["message"])
	assert.Equal(t, "NoteActivity", entry["module"])
	assert.Equal(t, "Arrays", entry["details"].(map[string]interface{})["topic"])
	assert.Equal(t, path, l.FilePath())
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("Any", "ignored", map[string]interface{}{"error": "boom"})
	assert.NoError(t, l.Sync())
}
