package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/pkg/apperror"
	"algo-notes-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// NoteRepository keeps notes in a process-local cache keyed by topic.
// Stored values are copies, so callers never share memory with the store.
type NoteRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.NoteRepository = (*NoteRepository)(nil)

func (r *NoteRepository) FindByTopic(ctx context.Context, topic string) (*entity.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if x, found := r.cache.Get(topic); found {
		return x.(*entity.Note).Clone(), nil
	}
	return nil, nil
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := r.cache.Items()
	notes := make([]*entity.Note, 0, len(items))
	for _, item := range items {
		notes = append(notes, item.Object.(*entity.Note).Clone())
	}
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].Topic < notes[j].Topic
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

func (r *NoteRepository) Save(ctx context.Context, note *entity.Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if note.IsNew() {
		stored := note.Clone()
		stored.Id = uuid.NewString()
		stored.Version = 1
		if err := r.cache.Add(note.Topic, stored, cache.NoExpiration); err != nil {
			return apperror.ErrVersionConflict
		}
		note.Id = stored.Id
		note.Version = 1
		return nil
	}

	x, found := r.cache.Get(note.Topic)
	if !found {
		return fmt.Errorf("note %s not found", note.Id)
	}
	current := x.(*entity.Note)
	if current.Id != note.Id || current.Version != note.Version {
		return apperror.ErrVersionConflict
	}

	stored := note.Clone()
	stored.Version = note.Version + 1
	r.cache.Set(note.Topic, stored, cache.NoExpiration)
	note.Version = stored.Version
	return nil
}

func (r *NoteRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return int64(r.cache.ItemCount()), nil
}
