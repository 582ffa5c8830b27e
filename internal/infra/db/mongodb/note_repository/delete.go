package note_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteNoteRepository struct {
	Collection *embedded.Collection[models.Note]
}

func NewDeleteNoteRepository(db *mongo.Database) *DeleteNoteRepository {
	return &DeleteNoteRepository{
		Collection: embedded.NewCollection[models.Note](db, "notes"),
	}
}

func (r *DeleteNoteRepository) Delete(userId primitive.ObjectID, noteId primitive.ObjectID) error {
	return r.Collection.Pull(userId, noteId)
}
