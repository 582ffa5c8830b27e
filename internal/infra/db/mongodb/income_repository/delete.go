package income_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteIncomeRepository struct {
	Collection *embedded.Collection[models.Income]
}

func NewDeleteIncomeRepository(db *mongo.Database) *DeleteIncomeRepository {
	return &DeleteIncomeRepository{
		Collection: embedded.NewCollection[models.Income](db, "incomes"),
	}
}

func (r *DeleteIncomeRepository) Delete(userId primitive.ObjectID, incomeId primitive.ObjectID) error {
	return r.Collection.Pull(userId, incomeId)
}
