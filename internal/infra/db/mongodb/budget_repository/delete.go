package budget_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBudgetRepository struct {
	Collection *embedded.Collection[models.Budget]
}

func NewDeleteBudgetRepository(db *mongo.Database) *DeleteBudgetRepository {
	return &DeleteBudgetRepository{
		Collection: embedded.NewCollection[models.Budget](db, "budgets"),
	}
}

func (r *DeleteBudgetRepository) Delete(userId primitive.ObjectID, budgetId primitive.ObjectID) error {
	return r.Collection.Pull(userId, budgetId)
}
