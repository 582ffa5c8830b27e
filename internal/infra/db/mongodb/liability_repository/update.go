package liability_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateLiabilityRepository struct {
	Collection *embedded.Collection[models.Liability]
}

func NewUpdateLiabilityRepository(db *mongo.Database) *UpdateLiabilityRepository {
	return &UpdateLiabilityRepository{
		Collection: embedded.NewCollection[models.Liability](db, "liabilities"),
	}
}

func (r *UpdateLiabilityRepository) Update(userId primitive.ObjectID, liabilityId primitive.ObjectID, patch *models.LiabilityPatch) (*models.Liability, error) {
	if err := r.Collection.Set(userId, liabilityId, patch); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, liabilityId)
}
