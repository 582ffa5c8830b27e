package budget_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateBudgetRepository struct {
	Collection *embedded.Collection[models.Budget]
}

func NewCreateBudgetRepository(db *mongo.Database) *CreateBudgetRepository {
	return &CreateBudgetRepository{
		Collection: embedded.NewCollection[models.Budget](db, "budgets"),
	}
}

func (r *CreateBudgetRepository) Create(userId primitive.ObjectID, budget *models.Budget) (*models.Budget, error) {
	budget.Id = primitive.NewObjectID()

	if err := r.Collection.Push(userId, *budget); err != nil {
		return nil, err
	}

	return budget, nil
}
