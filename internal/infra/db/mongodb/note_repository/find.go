package note_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindNotesRepository struct {
	Collection *embedded.Collection[models.Note]
}

func NewFindNotesRepository(db *mongo.Database) *FindNotesRepository {
	return &FindNotesRepository{
		Collection: embedded.NewCollection[models.Note](db, "notes"),
	}
}

func (r *FindNotesRepository) Find(userId primitive.ObjectID) ([]models.Note, error) {
	return r.Collection.FindAll(userId)
}

type FindNoteByIdRepository struct {
	Collection *embedded.Collection[models.Note]
}

func NewFindNoteByIdRepository(db *mongo.Database) *FindNoteByIdRepository {
	return &FindNoteByIdRepository{
		Collection: embedded.NewCollection[models.Note](db, "notes"),
	}
}

func (r *FindNoteByIdRepository) Find(userId primitive.ObjectID, noteId primitive.ObjectID) (*models.Note, error) {
	return r.Collection.FindById(userId, noteId)
}
