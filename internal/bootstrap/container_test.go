package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"algo-notes-be/internal/config"
	"algo-notes-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		App: config.AppConfig{
			Port:            "0",
			Environment:     "test",
			LogFilePath:     filepath.Join(dir, "app.log"),
			ActivityLogPath: filepath.Join(dir, "activity.log"),
		},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Notes:    config.NotesConfig{MaxSaveAttempts: 3},
		Events:   config.EventsConfig{Topic: "QUESTION_ADDED"},
	}
}

func TestNewContainerWithMemoryStore(t *testing.T) {
	c, err := NewContainer(memoryConfig(t))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.ConsumerService.Consume(ctx))

	_, err = c.NoteService.AddQuestion(ctx, &dto.AddQuestionRequest{
		Topic: "Arrays", SubTopic: "Sliding Window", QuestionId: "Q1", Title: "Max Subarray",
		Pattern: "two-pointer", Trick: "expand-shrink", Error: "off-by-one", Edge: "empty array",
	})
	require.NoError(t, err)

	notes, err := c.NoteService.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestNewRepositoryFactoryRejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Database.Driver = "sqlite"

	_, _, err := NewRepositoryFactory(cfg)
	assert.Error(t, err)
}

func TestNewRepositoryFactoryRequiresConnectionString(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Database.Driver = config.DriverPostgres

	_, _, err := NewRepositoryFactory(cfg)
	assert.Error(t, err)
}

func TestNewContainerLogsStartupToConfiguredFile(t *testing.T) {
	cfg := memoryConfig(t)
	c, err := NewContainer(cfg)
	require.NoError(t, err)
	c.Close()

	content, err := os.ReadFile(cfg.App.LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Container ready")
	assert.Contains(t, string(content), cfg.App.ActivityLogPath)
}
