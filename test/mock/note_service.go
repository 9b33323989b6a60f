// test/mock/note_service.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tgechev/gonotes/model"
)

// MockNoteService is a mock implementation of service.INoteService
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) ListNotes(ctx context.Context, userID string) ([]model.NoteDTO, error) {
	args := m.Called(ctx, userID)
	var notes []model.NoteDTO
	if args.Get(0) != nil {
		notes = args.Get(0).([]model.NoteDTO)
	}
	return notes, args.Error(1)
}

func (m *MockNoteService) SearchNotes(ctx context.Context, userID, keyword string) ([]model.NoteDTO, error) {
	args := m.Called(ctx, userID, keyword)
	var notes []model.NoteDTO
	if args.Get(0) != nil {
		notes = args.Get(0).([]model.NoteDTO)
	}
	return notes, args.Error(1)
}

func (m *MockNoteService) GetNote(ctx context.Context, userID, noteID string) (*model.NoteDTO, error) {
	args := m.Called(ctx, userID, noteID)
	var note *model.NoteDTO
	if args.Get(0) != nil {
		note = args.Get(0).(*model.NoteDTO)
	}
	return note, args.Error(1)
}

func (m *MockNoteService) CreateNote(ctx context.Context, userID string, req model.NoteRequest) (string, error) {
	args := m.Called(ctx, userID, req)
	return args.String(0), args.Error(1)
}

func (m *MockNoteService) UpdateNote(ctx context.Context, userID, noteID string, req model.NoteRequest) (*model.NoteDTO, error) {
	args := m.Called(ctx, userID, noteID, req)
	var note *model.NoteDTO
	if args.Get(0) != nil {
		note = args.Get(0).(*model.NoteDTO)
	}
	return note, args.Error(1)
}

func (m *MockNoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}
