package mapper

import (
	"testing"
	"time"

	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleNote(id string) *entity.Note {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &entity.Note{
		Id:    id,
		Topic: "Arrays",
		SubTopics: []entity.SubTopic{{
			Name: "Sliding Window",
			Questions: []entity.Question{{
				Id: "Q1", Title: "Max Subarray", Pattern: "two-pointer",
				Trick: "expand-shrink", Error: "off-by-one", Edge: "empty array",
				CreatedAt: now,
			}},
			CreatedAt: now,
		}},
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestModelRoundTripKeepsTree(t *testing.T) {
	m := NewNoteMapper()
	id := uuid.New().String()

	row, err := m.ToModel(sampleNote(id))
	require.NoError(t, err)

	back := m.ToEntity(row)
	assert.Equal(t, sampleNote(id), back)
}

func TestToModelAssignsIdForNewNotes(t *testing.T) {
	row, err := NewNoteMapper().ToModel(sampleNote(""))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, row.Id)
}

func TestToModelRejectsForeignId(t *testing.T) {
	_, err := NewNoteMapper().ToModel(sampleNote("not-a-uuid"))
	assert.Error(t, err)
}

func TestDocumentRoundTripKeepsTree(t *testing.T) {
	m := NewNoteMapper()
	id := primitive.NewObjectID().Hex()

	doc, err := m.ToDocument(sampleNote(id))
	require.NoError(t, err)
	assert.Equal(t, "Q1", doc.SubTopics[0].Questions[0].Id)

	assert.Equal(t, sampleNote(id), m.DocumentToEntity(doc))
}

func TestToDocumentLeavesNewIdEmpty(t *testing.T) {
	doc, err := NewNoteMapper().ToDocument(sampleNote(""))
	require.NoError(t, err)
	assert.True(t, doc.ID.IsZero())
}

func TestToResponse(t *testing.T) {
	res := NewNoteMapper().ToResponse(sampleNote("abc"))

	assert.Equal(t, "abc", res.Id)
	require.Len(t, res.SubTopics, 1)
	assert.Equal(t, "expand-shrink", res.SubTopics[0].Questions[0].Trick)
	assert.Empty(t, NewNoteMapper().ToResponses(nil))
}

func TestDocumentWithoutVersionIsNotNew(t *testing.T) {
	id := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{
		"_id":   id,
		"topic": "Arrays",
		"subTopics": bson.A{bson.M{
			"name":      "Sliding Window",
			"questions": bson.A{bson.M{"id": "Q1", "title": "Max Subarray"}},
		}},
		"__v": 0,
	})
	require.NoError(t, err)

	var doc model.NoteDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))

	note := NewNoteMapper().DocumentToEntity(&doc)
	assert.Equal(t, id.Hex(), note.Id)
	assert.Zero(t, note.Version)
	assert.False(t, note.IsNew())
	assert.True(t, note.SubTopic("Sliding Window").HasQuestion("Q1"))
}
