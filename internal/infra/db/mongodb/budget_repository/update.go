package budget_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateBudgetRepository struct {
	Collection *embedded.Collection[models.Budget]
}

func NewUpdateBudgetRepository(db *mongo.Database) *UpdateBudgetRepository {
	return &UpdateBudgetRepository{
		Collection: embedded.NewCollection[models.Budget](db, "budgets"),
	}
}

func (r *UpdateBudgetRepository) Update(userId primitive.ObjectID, budgetId primitive.ObjectID, patch *models.BudgetPatch) (*models.Budget, error) {
	if err := r.Collection.Set(userId, budgetId, patch); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, budgetId)
}
