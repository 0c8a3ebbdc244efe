package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"algo-notes-be/internal/dto"
	"algo-notes-be/internal/entity"
	"algo-notes-be/internal/mapper"
	"algo-notes-be/internal/pkg/apperror"
	"algo-notes-be/internal/pkg/logger"
	"algo-notes-be/internal/pkg/serverutils"
	"algo-notes-be/internal/repository/unitofwork"
)

const defaultMaxSaveAttempts = 3

type INoteService interface {
	ListNotes(ctx context.Context) ([]*dto.NoteResponse, error)
	AddQuestion(ctx context.Context, req *dto.AddQuestionRequest) (*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
	mapper           *mapper.NoteMapper
	maxSaveAttempts  int
	now              func() time.Time
}

// NewNoteService builds the note service. publisherService may be nil, in which
// case no QUESTION_ADDED events are emitted.
func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
	maxSaveAttempts int,
) INoteService {
	if maxSaveAttempts < 1 {
		maxSaveAttempts = defaultMaxSaveAttempts
	}
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
		mapper:           mapper.NewNoteMapper(),
		maxSaveAttempts:  maxSaveAttempts,
		now:              storeClock,
	}
}

// storeClock returns the current time at millisecond precision, the finest
// every backend keeps, so a saved note reads back exactly as returned.
func storeClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *noteService) ListNotes(ctx context.Context) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx)
	if err != nil {
		s.logger.Error("NoteService", "Failed to list notes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorageUnavailable, err)
	}

	return s.mapper.ToResponses(notes), nil
}

func (s *noteService) AddQuestion(ctx context.Context, req *dto.AddQuestionRequest) (*dto.NoteResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", apperror.ErrValidation)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteRepository()

	var lastConflict error
	for attempt := 1; attempt <= s.maxSaveAttempts; attempt++ {
		note, err := repo.FindByTopic(ctx, req.Topic)
		if err != nil {
			return nil, s.storageError("Failed to load note", req, err)
		}

		now := s.now()
		if note == nil {
			note = entity.NewNote(req.Topic, now)
		}

		subTopic := note.EnsureSubTopic(req.SubTopic, now)
		if subTopic.HasQuestion(req.QuestionId) {
			return nil, apperror.ErrDuplicateQuestionId
		}

		subTopic.Questions = append(subTopic.Questions, entity.Question{
			Id:        req.QuestionId,
			Title:     req.Title,
			Pattern:   req.Pattern,
			Trick:     req.Trick,
			Error:     req.Error,
			Edge:      req.Edge,
			CreatedAt: now,
		})
		note.UpdatedAt = now

		err = repo.Save(ctx, note)
		if err == nil {
			s.logger.Info("NoteService", "Question added", map[string]interface{}{
				"topic":          note.Topic,
				"sub_topic":      req.SubTopic,
				"question_id":    req.QuestionId,
				"question_count": note.QuestionCount(),
				"attempt":        attempt,
			})
			s.publishQuestionAdded(ctx, note, req)
			return s.mapper.ToResponse(note), nil
		}
		if !errors.Is(err, apperror.ErrVersionConflict) {
			return nil, s.storageError("Failed to save note", req, err)
		}

		lastConflict = err
		s.logger.Warn("NoteService", "Concurrent write detected, retrying", map[string]interface{}{
			"topic":   req.Topic,
			"attempt": attempt,
		})
	}

	return nil, s.storageError("Gave up after repeated write conflicts", req, lastConflict)
}

func (s *noteService) storageError(message string, req *dto.AddQuestionRequest, err error) error {
	s.logger.Error("NoteService", message, map[string]interface{}{
		"topic":       req.Topic,
		"sub_topic":   req.SubTopic,
		"question_id": req.QuestionId,
		"error":       err.Error(),
	})
	return fmt.Errorf("%w: %w", apperror.ErrStorageUnavailable, err)
}

func (s *noteService) publishQuestionAdded(ctx context.Context, note *entity.Note, req *dto.AddQuestionRequest) {
	if s.publisherService == nil {
		return
	}

	msgPayload := dto.QuestionAddedMessage{
		NoteId:     note.Id,
		Topic:      note.Topic,
		SubTopic:   req.SubTopic,
		QuestionId: req.QuestionId,
		Title:      req.Title,
		OccurredAt: note.UpdatedAt,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		s.logger.Warn("NoteService", "Failed to encode event", map[string]interface{}{"error": err.Error()})
		return
	}

	// The question is already stored; a lost event only costs an activity log line.
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("NoteService", "Failed to publish event", map[string]interface{}{
			"error":       err.Error(),
			"question_id": req.QuestionId,
		})
	}
}
