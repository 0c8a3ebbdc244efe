package memory

import (
	"context"
	"testing"
	"time"

	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveInsertsThenUpdates(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note := entity.NewNote("Arrays", time.Now())
	require.NoError(t, repo.Save(ctx, note))
	assert.NotEmpty(t, note.Id)
	assert.Equal(t, int64(1), note.Version)

	note.EnsureSubTopic("Sliding Window", time.Now())
	require.NoError(t, repo.Save(ctx, note))
	assert.Equal(t, int64(2), note.Version)

	stored, err := repo.FindByTopic(ctx, "Arrays")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.SubTopics, 1)
	assert.Equal(t, int64(2), stored.Version)
}

func TestSaveRejectsStaleVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	note := entity.NewNote("Graphs", time.Now())
	require.NoError(t, repo.Save(ctx, note))

	a, _ := repo.FindByTopic(ctx, "Graphs")
	b, _ := repo.FindByTopic(ctx, "Graphs")

	a.EnsureSubTopic("BFS", time.Now())
	require.NoError(t, repo.Save(ctx, a))

	b.EnsureSubTopic("DFS", time.Now())
	assert.ErrorIs(t, repo.Save(ctx, b), apperror.ErrVersionConflict)

	stored, _ := repo.FindByTopic(ctx, "Graphs")
	require.Len(t, stored.SubTopics, 1)
	assert.Equal(t, "BFS", stored.SubTopics[0].Name)
}

func TestSaveRejectsSecondInsertForTopic(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()

	require.NoError(t, repo.Save(ctx, entity.NewNote("DP", time.Now())))
	assert.ErrorIs(t, repo.Save(ctx, entity.NewNote("DP", time.Now())), apperror.ErrVersionConflict)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindAllOrdersByUpdatedAtDesc(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()
	base := time.Now()

	for i, topic := range []string{"Old", "Newest", "Middle"} {
		n := entity.NewNote(topic, base)
		n.UpdatedAt = base.Add([]time.Duration{0, 2 * time.Hour, time.Hour}[i])
		require.NoError(t, repo.Save(ctx, n))
	}

	notes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "Newest", notes[0].Topic)
	assert.Equal(t, "Middle", notes[1].Topic)
	assert.Equal(t, "Old", notes[2].Topic)
}

func TestReturnedNotesAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository()
	require.NoError(t, repo.Save(ctx, entity.NewNote("Heaps", time.Now())))

	n, _ := repo.FindByTopic(ctx, "Heaps")
	n.EnsureSubTopic("mutated", time.Now())

	again, _ := repo.FindByTopic(ctx, "Heaps")
	assert.Empty(t, again.SubTopics)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNoteRepository().FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
