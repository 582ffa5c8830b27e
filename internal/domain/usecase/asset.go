package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateAssetRepository interface {
	Create(userId primitive.ObjectID, asset *models.Asset) (*models.Asset, error)
}

type FindAssetsRepository interface {
	Find(userId primitive.ObjectID) ([]models.Asset, error)
}

type FindAssetByIdRepository interface {
	Find(userId primitive.ObjectID, assetId primitive.ObjectID) (*models.Asset, error)
}

type UpdateAssetRepository interface {
	Update(userId primitive.ObjectID, assetId primitive.ObjectID, patch *models.AssetPatch) (*models.Asset, error)
}

type DeleteAssetRepository interface {
	Delete(userId primitive.ObjectID, assetId primitive.ObjectID) error
}

// UpdateAssetValueRepository appends to the value history and mirrors the
// denormalized top-level value in the same write. Returns the refreshed
// collection: the legacy response shape this endpoint's clients expect.
type UpdateAssetValueRepository interface {
	UpdateValue(userId primitive.ObjectID, assetId primitive.ObjectID, entry *models.AssetValueEntry) ([]models.Asset, error)
}

type CreateAssetDepositRepository interface {
	CreateDeposit(userId primitive.ObjectID, assetId primitive.ObjectID, entry *models.AssetDepositEntry) (*models.Asset, error)
}
