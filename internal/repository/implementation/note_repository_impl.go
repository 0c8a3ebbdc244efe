package implementation

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
	"algo-notes-be/internal/repository/specification"

	"gorm.io/gorm"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) FindByTopic(ctx context.Context, topic string) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByTopic(topic))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specification.RecentlyUpdatedFirst)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Save(ctx context.Context, note *entity.Note) error {
	m, err := r.mapper.ToModel(note)
	if err != nil {
		return fmt.Errorf("invalid note id %q: %w", note.Id, err)
	}

	if note.IsNew() {
		m.Version = 1
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			// Another writer created the topic first.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.ErrVersionConflict
			}
			return err
		}
		*note = *r.mapper.ToEntity(m)
		return nil
	}

	updatedAt := note.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	query := r.applySpecifications(
		r.db.WithContext(ctx).Model(&model.Note{}),
		specification.AtVersion{ID: m.Id, Version: note.Version},
	)
	result := query.Updates(map[string]interface{}{
		"sub_topics": m.SubTopics,
		"version":    note.Version + 1,
		"updated_at": updatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrVersionConflict
	}

	note.Version++
	note.UpdatedAt = updatedAt
	return nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Note{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
