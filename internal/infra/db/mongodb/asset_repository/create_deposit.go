package asset_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateAssetDepositRepository struct {
	Collection *embedded.Collection[models.Asset]
}

func NewCreateAssetDepositRepository(db *mongo.Database) *CreateAssetDepositRepository {
	return &CreateAssetDepositRepository{
		Collection: embedded.NewCollection[models.Asset](db, "assets"),
	}
}

func (r *CreateAssetDepositRepository) CreateDeposit(userId primitive.ObjectID, assetId primitive.ObjectID, entry *models.AssetDepositEntry) (*models.Asset, error) {
	if err := r.Collection.PushNested(userId, assetId, "deposits", entry, nil); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, assetId)
}
