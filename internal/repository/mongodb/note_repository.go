package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/mapper"
	"algo-notes-be/internal/model"
	"algo-notes-be/internal/pkg/apperror"
	"algo-notes-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NoteRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
	mapper     *mapper.NoteMapper
}

func NewNoteRepository(collection *mongo.Collection, timeout time.Duration) contract.NoteRepository {
	return &NoteRepository{
		collection: collection,
		timeout:    timeout,
		mapper:     mapper.NewNoteMapper(),
	}
}

func (r *NoteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *NoteRepository) FindByTopic(ctx context.Context, topic string) (*entity.Note, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var doc model.NoteDocument
	err := r.collection.FindOne(ctx, bson.M{"topic": topic}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DocumentToEntity(&doc), nil
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notes := []*entity.Note{}
	for cur.Next(ctx) {
		var doc model.NoteDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		notes = append(notes, r.mapper.DocumentToEntity(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) Save(ctx context.Context, note *entity.Note) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	doc, err := r.mapper.ToDocument(note)
	if err != nil {
		return fmt.Errorf("invalid note id %q: %w", note.Id, err)
	}

	if note.IsNew() {
		doc.ID = primitive.NewObjectID()
		doc.Version = 1
		if _, err := r.collection.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return apperror.ErrVersionConflict
			}
			return err
		}
		note.Id = doc.ID.Hex()
		note.Version = 1
		return nil
	}

	filter := versionFilter(doc.ID, note.Version)
	update := bson.M{"$set": bson.M{
		"subTopics": doc.SubTopics,
		"updatedAt": doc.UpdatedAt,
		"version":   note.Version + 1,
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperror.ErrVersionConflict
	}

	note.Version++
	return nil
}

// versionFilter matches the document only while it still holds version.
// Version 0 also matches documents that predate the version field.
func versionFilter(id primitive.ObjectID, version int64) bson.M {
	if version == 0 {
		return bson.M{
			"_id": id,
			"$or": bson.A{
				bson.M{"version": 0},
				bson.M{"version": bson.M{"$exists": false}},
			},
		}
	}
	return bson.M{"_id": id, "version": version}
}

func (r *NoteRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique topic index and the listing index. Safe to call repeatedly.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "topic", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_notes_topic"),
		},
		{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index().SetName("idx_notes_updated_at"),
		},
	})
	return err
}
