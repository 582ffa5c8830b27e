package schema

import (
	"time"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
)

type NoteInput struct {
	Title    string   `json:"title" validate:"required,min=1,max=255"`
	Content  string   `json:"content" validate:"required,min=1"`
	Tags     []string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	IsPinned *bool    `json:"isPinned"`
}

func (s *Schema) NewNote(in *NoteInput) (*models.Note, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	now := time.Now()

	note := &models.Note{
		Title:     in.Title,
		Content:   in.Content,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if note.Tags == nil {
		note.Tags = []string{}
	}
	if in.IsPinned != nil {
		note.IsPinned = *in.IsPinned
	}

	return note, nil
}

func (s *Schema) CheckNotePatch(patch *models.NotePatch) error {
	return s.check(patch)
}
