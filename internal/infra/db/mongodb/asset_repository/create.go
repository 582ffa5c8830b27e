package asset_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateAssetRepository struct {
	Collection *embedded.Collection[models.Asset]
}

func NewCreateAssetRepository(db *mongo.Database) *CreateAssetRepository {
	return &CreateAssetRepository{
		Collection: embedded.NewCollection[models.Asset](db, "assets"),
	}
}

func (r *CreateAssetRepository) Create(userId primitive.ObjectID, asset *models.Asset) (*models.Asset, error) {
	asset.Id = primitive.NewObjectID()

	if err := r.Collection.Push(userId, *asset); err != nil {
		return nil, err
	}

	return asset, nil
}
