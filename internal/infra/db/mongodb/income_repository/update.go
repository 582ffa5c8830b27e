package income_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateIncomeRepository struct {
	Collection *embedded.Collection[models.Income]
}

func NewUpdateIncomeRepository(db *mongo.Database) *UpdateIncomeRepository {
	return &UpdateIncomeRepository{
		Collection: embedded.NewCollection[models.Income](db, "incomes"),
	}
}

// Update goes through the same positional primitive as every other entity.
// The whole aggregate is never loaded and saved back.
func (r *UpdateIncomeRepository) Update(userId primitive.ObjectID, incomeId primitive.ObjectID, patch *models.IncomePatch) (*models.Income, error) {
	if err := r.Collection.Set(userId, incomeId, patch); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, incomeId)
}
