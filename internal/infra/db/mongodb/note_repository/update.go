package note_repository

import (
	"time"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateNoteRepository struct {
	Collection *embedded.Collection[models.Note]
}

func NewUpdateNoteRepository(db *mongo.Database) *UpdateNoteRepository {
	return &UpdateNoteRepository{
		Collection: embedded.NewCollection[models.Note](db, "notes"),
	}
}

func (r *UpdateNoteRepository) Update(userId primitive.ObjectID, noteId primitive.ObjectID, patch *models.NotePatch) (*models.Note, error) {
	patch.UpdatedAt = time.Now()

	if err := r.Collection.Set(userId, noteId, patch); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, noteId)
}
