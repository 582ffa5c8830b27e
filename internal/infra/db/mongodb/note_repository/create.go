package note_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateNoteRepository struct {
	Collection *embedded.Collection[models.Note]
}

func NewCreateNoteRepository(db *mongo.Database) *CreateNoteRepository {
	return &CreateNoteRepository{
		Collection: embedded.NewCollection[models.Note](db, "notes"),
	}
}

func (r *CreateNoteRepository) Create(userId primitive.ObjectID, note *models.Note) (*models.Note, error) {
	note.Id = primitive.NewObjectID()

	if err := r.Collection.Push(userId, *note); err != nil {
		return nil, err
	}

	return note, nil
}
