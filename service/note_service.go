// service/note_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tgechev/gonotes/cache"
	apperrors "github.com/tgechev/gonotes/errors"
	logger "github.com/tgechev/gonotes/logging"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/util"
)

// NoteStore is the persistence boundary consumed by the note service.
type NoteStore interface {
	GetByID(ctx context.Context, noteID string) (*model.Note, error)
	ListByUser(ctx context.Context, userID string) ([]model.Note, error)
	SearchByUser(ctx context.Context, userID, keyword string) ([]model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, noteID string) error
}

// INoteService defines the interface for note operations. Every operation is
// scoped to the requesting user; a foreign note behaves as missing.
type INoteService interface {
	ListNotes(ctx context.Context, userID string) ([]model.NoteDTO, error)
	SearchNotes(ctx context.Context, userID, keyword string) ([]model.NoteDTO, error)
	GetNote(ctx context.Context, userID, noteID string) (*model.NoteDTO, error)
	CreateNote(ctx context.Context, userID string, req model.NoteRequest) (string, error)
	UpdateNote(ctx context.Context, userID, noteID string, req model.NoteRequest) (*model.NoteDTO, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// NoteService handles business logic for note operations
type NoteService struct {
	store          NoteStore
	validationUtil *util.ValidationUtil
	responseCache  cache.Cache
	eventBus       *util.EventBus
	cacheTTL       CacheTTL
}

var _ INoteService = &NoteService{}

// NewNoteService creates a new instance of NoteService
func NewNoteService(
	store NoteStore,
	validationUtil *util.ValidationUtil,
	responseCache cache.Cache,
	eventBus *util.EventBus,
	cacheTTL CacheTTL,
) *NoteService {
	return &NoteService{
		store:          store,
		validationUtil: validationUtil,
		responseCache:  responseCache,
		eventBus:       eventBus,
		cacheTTL:       cacheTTL,
	}
}

// ListNotes serves the owner's note list through the response cache. The key
// is scoped per user so one user's notes can never surface for another.
func (s *NoteService) ListNotes(ctx context.Context, userID string) ([]model.NoteDTO, error) {
	dtos, _, err := cache.Remember(ctx, s.responseCache, cache.UserNotesKey(userID), s.cacheTTL.Notes, func() ([]model.NoteDTO, error) {
		notes, err := s.store.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		return toNoteDTOs(notes), nil
	})
	return dtos, err
}

// SearchNotes is an uncached keyword search over the owner's notes.
func (s *NoteService) SearchNotes(ctx context.Context, userID, keyword string) ([]model.NoteDTO, error) {
	notes, err := s.store.SearchByUser(ctx, userID, keyword)
	if err != nil {
		return nil, err
	}
	return toNoteDTOs(notes), nil
}

// GetNote serves a single note through the response cache. Ownership is
// checked after retrieval so a cached entry never bypasses the scope check.
func (s *NoteService) GetNote(ctx context.Context, userID, noteID string) (*model.NoteDTO, error) {
	dto, _, err := cache.Remember(ctx, s.responseCache, cache.NoteKey(noteID), s.cacheTTL.Notes, func() (model.NoteDTO, error) {
		note, err := s.store.GetByID(ctx, noteID)
		if err != nil {
			return model.NoteDTO{}, err
		}
		return note.ToDTO(), nil
	})
	if err != nil {
		return nil, err
	}
	if dto.UserID != userID {
		return nil, apperrors.ErrNoteNotFound
	}
	return &dto, nil
}

func (s *NoteService) CreateNote(ctx context.Context, userID string, req model.NoteRequest) (string, error) {
	if err := s.validationUtil.ValidateNote(req); err != nil {
		logger.Warn("Rejected note payload", zap.Error(err))
		return "", apperrors.ErrInvalidNoteData
	}

	note := model.Note{
		Title:   req.Title,
		Content: req.Content,
		Tags:    model.JoinTags(req.Tags),
		UserID:  userID,
	}
	if err := s.store.Create(ctx, &note); err != nil {
		return "", err
	}

	s.invalidate(ctx, userID, note.ID)
	s.eventBus.Publish(ctx, "note.created", note.ToDTO())
	logger.Info("Note created", zap.String("noteID", note.ID), zap.String("userID", userID))
	return note.ID, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, userID, noteID string, req model.NoteRequest) (*model.NoteDTO, error) {
	note, err := s.store.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, apperrors.ErrNoteNotFound
	}

	note.Title = req.Title
	note.Content = req.Content
	if req.Tags != nil {
		note.Tags = model.JoinTags(req.Tags)
	}
	if err := s.store.Update(ctx, note); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID, noteID)
	dto := note.ToDTO()
	s.eventBus.Publish(ctx, "note.updated", dto)
	return &dto, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	note, err := s.store.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note.UserID != userID {
		return apperrors.ErrNoteNotFound
	}

	if err := s.store.Delete(ctx, noteID); err != nil {
		return err
	}

	s.invalidate(ctx, userID, noteID)
	s.eventBus.Publish(ctx, "note.deleted", noteID)
	return nil
}

// invalidate drops the cached entries a mutation makes stale.
func (s *NoteService) invalidate(ctx context.Context, userID, noteID string) {
	if err := s.responseCache.Delete(ctx, cache.UserNotesKey(userID), cache.NoteKey(noteID)); err != nil {
		logger.Warn("Failed to invalidate note cache",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("noteID", noteID))
	}
}

func toNoteDTOs(notes []model.Note) []model.NoteDTO {
	dtos := make([]model.NoteDTO, 0, len(notes))
	for _, note := range notes {
		dtos = append(dtos, note.ToDTO())
	}
	return dtos
}
