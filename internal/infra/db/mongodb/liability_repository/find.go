package liability_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindLiabilitiesRepository struct {
	Collection *embedded.Collection[models.Liability]
}

func NewFindLiabilitiesRepository(db *mongo.Database) *FindLiabilitiesRepository {
	return &FindLiabilitiesRepository{
		Collection: embedded.NewCollection[models.Liability](db, "liabilities"),
	}
}

func (r *FindLiabilitiesRepository) Find(userId primitive.ObjectID) ([]models.Liability, error) {
	return r.Collection.FindAll(userId)
}

type FindLiabilityByIdRepository struct {
	Collection *embedded.Collection[models.Liability]
}

func NewFindLiabilityByIdRepository(db *mongo.Database) *FindLiabilityByIdRepository {
	return &FindLiabilityByIdRepository{
		Collection: embedded.NewCollection[models.Liability](db, "liabilities"),
	}
}

func (r *FindLiabilityByIdRepository) Find(userId primitive.ObjectID, liabilityId primitive.ObjectID) (*models.Liability, error) {
	return r.Collection.FindById(userId, liabilityId)
}
