package asset_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteAssetRepository struct {
	Collection *embedded.Collection[models.Asset]
}

func NewDeleteAssetRepository(db *mongo.Database) *DeleteAssetRepository {
	return &DeleteAssetRepository{
		Collection: embedded.NewCollection[models.Asset](db, "assets"),
	}
}

func (r *DeleteAssetRepository) Delete(userId primitive.ObjectID, assetId primitive.ObjectID) error {
	return r.Collection.Pull(userId, assetId)
}
