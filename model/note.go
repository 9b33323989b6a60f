// model/note.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is the persisted note entity. Tags are stored as a single
// comma-separated column and split back into a slice on the way out.
type Note struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Tags      string
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"type:uuid;index;not null"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// NoteDTO is the outward-facing projection of a note.
type NoteDTO struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
	UserID  string   `json:"userId"`
}

func (n *Note) ToDTO() NoteDTO {
	return NoteDTO{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Tags:    SplitTags(n.Tags),
		UserID:  n.UserID,
	}
}

// JoinTags serializes a tag list into the stored column format.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags parses the stored column format back into a tag list.
func SplitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}
