package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/pkg/apperror"
	"algo-notes-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestVersionFilter(t *testing.T) {
	id := primitive.NewObjectID()

	assert.Equal(t, bson.M{"_id": id, "version": int64(3)}, versionFilter(id, 3))

	legacy := versionFilter(id, 0)
	assert.Equal(t, id, legacy["_id"])
	assert.Equal(t, bson.A{
		bson.M{"version": 0},
		bson.M{"version": bson.M{"$exists": false}},
	}, legacy["$or"])
	assert.NotContains(t, legacy, "version")
}

func openTestCollection(t *testing.T) *mongo.Collection {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("Skipping integration test: MONGO_URI not set")
	}

	ctx := context.Background()
	client, err := database.NewMongoClient(uri, 5*time.Second)
	require.NoError(t, err)

	collection := database.OpenCollection(client, "algo_notes_test", "notes_"+primitive.NewObjectID().Hex())
	t.Cleanup(func() {
		collection.Drop(ctx)
		client.Disconnect(ctx)
	})
	require.NoError(t, EnsureIndexes(ctx, collection))
	return collection
}

func TestSaveUpdatesDocumentWithoutVersion(t *testing.T) {
	ctx := context.Background()
	collection := openTestCollection(t)

	id := primitive.NewObjectID()
	_, err := collection.InsertOne(ctx, bson.M{
		"_id":       id,
		"topic":     "Arrays",
		"subTopics": bson.A{},
		"createdAt": time.Now(),
		"updatedAt": time.Now(),
		"__v":       0,
	})
	require.NoError(t, err)

	repo := NewNoteRepository(collection, 5*time.Second)
	note, err := repo.FindByTopic(ctx, "Arrays")
	require.NoError(t, err)
	require.False(t, note.IsNew())

	note.EnsureSubTopic("Sliding Window", time.Now())
	require.NoError(t, repo.Save(ctx, note))
	assert.Equal(t, int64(1), note.Version)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByTopic(ctx, "Arrays")
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), stored.Id)
	assert.Len(t, stored.SubTopics, 1)
}

func TestNoteRepositoryMongo(t *testing.T) {
	ctx := context.Background()
	collection := openTestCollection(t)

	repo := NewNoteRepository(collection, 5*time.Second)

	older := entity.NewNote("Arrays", time.Now().Add(-time.Hour))
	require.NoError(t, repo.Save(ctx, older))
	newer := entity.NewNote("Graphs", time.Now())
	require.NoError(t, repo.Save(ctx, newer))

	assert.ErrorIs(t, repo.Save(ctx, entity.NewNote("Arrays", time.Now())), apperror.ErrVersionConflict)

	a, err := repo.FindByTopic(ctx, "Arrays")
	require.NoError(t, err)
	b, err := repo.FindByTopic(ctx, "Arrays")
	require.NoError(t, err)

	a.EnsureSubTopic("Sliding Window", time.Now())
	a.UpdatedAt = time.Now().Add(time.Minute)
	require.NoError(t, repo.Save(ctx, a))
	assert.Equal(t, int64(2), a.Version)

	b.EnsureSubTopic("Two Pointers", time.Now())
	assert.ErrorIs(t, repo.Save(ctx, b), apperror.ErrVersionConflict)

	notes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Arrays", notes[0].Topic)
	assert.Equal(t, "Sliding Window", notes[0].SubTopics[0].Name)

	missing, err := repo.FindByTopic(ctx, "Nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
