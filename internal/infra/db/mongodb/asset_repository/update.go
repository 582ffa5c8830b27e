package asset_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateAssetRepository struct {
	Collection *embedded.Collection[models.Asset]
}

func NewUpdateAssetRepository(db *mongo.Database) *UpdateAssetRepository {
	return &UpdateAssetRepository{
		Collection: embedded.NewCollection[models.Asset](db, "assets"),
	}
}

func (r *UpdateAssetRepository) Update(userId primitive.ObjectID, assetId primitive.ObjectID, patch *models.AssetPatch) (*models.Asset, error) {
	if err := r.Collection.Set(userId, assetId, patch); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, assetId)
}
