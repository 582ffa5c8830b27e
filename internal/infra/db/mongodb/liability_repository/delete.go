package liability_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteLiabilityRepository struct {
	Collection *embedded.Collection[models.Liability]
}

func NewDeleteLiabilityRepository(db *mongo.Database) *DeleteLiabilityRepository {
	return &DeleteLiabilityRepository{
		Collection: embedded.NewCollection[models.Liability](db, "liabilities"),
	}
}

func (r *DeleteLiabilityRepository) Delete(userId primitive.ObjectID, liabilityId primitive.ObjectID) error {
	return r.Collection.Pull(userId, liabilityId)
}
