package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateNoteRepository interface {
	Create(userId primitive.ObjectID, note *models.Note) (*models.Note, error)
}

type FindNotesRepository interface {
	Find(userId primitive.ObjectID) ([]models.Note, error)
}

type FindNoteByIdRepository interface {
	Find(userId primitive.ObjectID, noteId primitive.ObjectID) (*models.Note, error)
}

type UpdateNoteRepository interface {
	Update(userId primitive.ObjectID, noteId primitive.ObjectID, patch *models.NotePatch) (*models.Note, error)
}

type DeleteNoteRepository interface {
	Delete(userId primitive.ObjectID, noteId primitive.ObjectID) error
}

// ToggleNotePinRepository negates isPinned server-side in one write, so two
// concurrent toggles can never read the same prior state.
type ToggleNotePinRepository interface {
	TogglePin(userId primitive.ObjectID, noteId primitive.ObjectID) (*models.Note, error)
}
