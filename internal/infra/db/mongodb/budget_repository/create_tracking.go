package budget_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateBudgetTrackingRepository struct {
	Collection *embedded.Collection[models.Budget]
}

func NewCreateBudgetTrackingRepository(db *mongo.Database) *CreateBudgetTrackingRepository {
	return &CreateBudgetTrackingRepository{
		Collection: embedded.NewCollection[models.Budget](db, "budgets"),
	}
}

func (r *CreateBudgetTrackingRepository) CreateTracking(userId primitive.ObjectID, budgetId primitive.ObjectID, entry *models.BudgetTrackingEntry) (*models.Budget, error) {
	if err := r.Collection.PushNested(userId, budgetId, "tracking", entry, nil); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, budgetId)
}
