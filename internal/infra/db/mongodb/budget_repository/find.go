package budget_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBudgetsRepository struct {
	Collection *embedded.Collection[models.Budget]
}

func NewFindBudgetsRepository(db *mongo.Database) *FindBudgetsRepository {
	return &FindBudgetsRepository{
		Collection: embedded.NewCollection[models.Budget](db, "budgets"),
	}
}

func (r *FindBudgetsRepository) Find(userId primitive.ObjectID) ([]models.Budget, error) {
	return r.Collection.FindAll(userId)
}

type FindBudgetByIdRepository struct {
	Collection *embedded.Collection[models.Budget]
}

func NewFindBudgetByIdRepository(db *mongo.Database) *FindBudgetByIdRepository {
	return &FindBudgetByIdRepository{
		Collection: embedded.NewCollection[models.Budget](db, "budgets"),
	}
}

func (r *FindBudgetByIdRepository) Find(userId primitive.ObjectID, budgetId primitive.ObjectID) (*models.Budget, error) {
	return r.Collection.FindById(userId, budgetId)
}
