package liability_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateLiabilityRepository struct {
	Collection *embedded.Collection[models.Liability]
}

func NewCreateLiabilityRepository(db *mongo.Database) *CreateLiabilityRepository {
	return &CreateLiabilityRepository{
		Collection: embedded.NewCollection[models.Liability](db, "liabilities"),
	}
}

func (r *CreateLiabilityRepository) Create(userId primitive.ObjectID, liability *models.Liability) (*models.Liability, error) {
	liability.Id = primitive.NewObjectID()

	if err := r.Collection.Push(userId, *liability); err != nil {
		return nil, err
	}

	return liability, nil
}
