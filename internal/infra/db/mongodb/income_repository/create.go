package income_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateIncomeRepository struct {
	Collection *embedded.Collection[models.Income]
}

func NewCreateIncomeRepository(db *mongo.Database) *CreateIncomeRepository {
	return &CreateIncomeRepository{
		Collection: embedded.NewCollection[models.Income](db, "incomes"),
	}
}

func (r *CreateIncomeRepository) Create(userId primitive.ObjectID, income *models.Income) (*models.Income, error) {
	income.Id = primitive.NewObjectID()

	if err := r.Collection.Push(userId, *income); err != nil {
		return nil, err
	}

	return income, nil
}
