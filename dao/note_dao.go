// dao/note_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/tgechev/gonotes/errors"
	"github.com/tgechev/gonotes/model"
)

type NoteDAO struct {
	db *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{db: db}
}

func (d *NoteDAO) GetByID(ctx context.Context, noteID string) (*model.Note, error) {
	var note model.Note
	err := d.db.WithContext(ctx).First(&note, "id = ?", noteID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNoteNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	return &note, nil
}

func (d *NoteDAO) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	var notes []model.Note
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	return notes, nil
}

// SearchByUser matches the keyword case-insensitively against note content
// and tags, scoped to the owner.
func (d *NoteDAO) SearchByUser(ctx context.Context, userID, keyword string) ([]model.Note, error) {
	pattern := "%" + keyword + "%"
	var notes []model.Note
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(content) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)", pattern, pattern).
		Order("created_at").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	return notes, nil
}

func (d *NoteDAO) Create(ctx context.Context, note *model.Note) error {
	if err := d.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	return nil
}

func (d *NoteDAO) Update(ctx context.Context, note *model.Note) error {
	if err := d.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, err)
	}
	return nil
}

func (d *NoteDAO) Delete(ctx context.Context, noteID string) error {
	result := d.db.WithContext(ctx).Delete(&model.Note{}, "id = ?", noteID)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDatabaseOperation, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}
