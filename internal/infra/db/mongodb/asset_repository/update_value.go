package asset_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateAssetValueRepository struct {
	Collection *embedded.Collection[models.Asset]
}

func NewUpdateAssetValueRepository(db *mongo.Database) *UpdateAssetValueRepository {
	return &UpdateAssetValueRepository{
		Collection: embedded.NewCollection[models.Asset](db, "assets"),
	}
}

// UpdateValue pushes the history entry and mirrors the denormalized value
// field in one write, so the two can never diverge. The read-back of the
// full collection is the legacy response shape this endpoint's clients
// still expect.
func (r *UpdateAssetValueRepository) UpdateValue(userId primitive.ObjectID, assetId primitive.ObjectID, entry *models.AssetValueEntry) ([]models.Asset, error) {
	err := r.Collection.PushNested(userId, assetId, "values", entry, bson.M{
		"value": entry.Value,
	})
	if err != nil {
		return nil, err
	}

	return r.Collection.FindAll(userId)
}
