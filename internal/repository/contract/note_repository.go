package contract

import (
	"context"

	"algo-notes-be/internal/entity"
)

// NoteRepository is the document-store contract. Implementations must treat
// Save as a single-document compare-and-swap on Note.Version.
type NoteRepository interface {
	// FindByTopic returns nil, nil when no note has the topic.
	FindByTopic(ctx context.Context, topic string) (*entity.Note, error)
	// FindAll returns every note, most recently updated first.
	FindAll(ctx context.Context) ([]*entity.Note, error)
	// Save inserts a new note (Version 0) or replaces an existing one whose
	// stored version still equals note.Version. On success note.Version is
	// bumped and store-assigned fields are filled in. A lost race returns
	// apperror.ErrVersionConflict.
	Save(ctx context.Context, note *entity.Note) error
	Count(ctx context.Context) (int64, error)
}
