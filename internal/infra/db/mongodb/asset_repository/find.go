package asset_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindAssetsRepository struct {
	Collection *embedded.Collection[models.Asset]
}

func NewFindAssetsRepository(db *mongo.Database) *FindAssetsRepository {
	return &FindAssetsRepository{
		Collection: embedded.NewCollection[models.Asset](db, "assets"),
	}
}

func (r *FindAssetsRepository) Find(userId primitive.ObjectID) ([]models.Asset, error) {
	return r.Collection.FindAll(userId)
}

type FindAssetByIdRepository struct {
	Collection *embedded.Collection[models.Asset]
}

func NewFindAssetByIdRepository(db *mongo.Database) *FindAssetByIdRepository {
	return &FindAssetByIdRepository{
		Collection: embedded.NewCollection[models.Asset](db, "assets"),
	}
}

func (r *FindAssetByIdRepository) Find(userId primitive.ObjectID, assetId primitive.ObjectID) (*models.Asset, error) {
	return r.Collection.FindById(userId, assetId)
}
