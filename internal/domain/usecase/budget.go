package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBudgetRepository interface {
	Create(userId primitive.ObjectID, budget *models.Budget) (*models.Budget, error)
}

type FindBudgetsRepository interface {
	Find(userId primitive.ObjectID) ([]models.Budget, error)
}

type FindBudgetByIdRepository interface {
	Find(userId primitive.ObjectID, budgetId primitive.ObjectID) (*models.Budget, error)
}

type UpdateBudgetRepository interface {
	Update(userId primitive.ObjectID, budgetId primitive.ObjectID, patch *models.BudgetPatch) (*models.Budget, error)
}

type DeleteBudgetRepository interface {
	Delete(userId primitive.ObjectID, budgetId primitive.ObjectID) error
}

type CreateBudgetTrackingRepository interface {
	CreateTracking(userId primitive.ObjectID, budgetId primitive.ObjectID, entry *models.BudgetTrackingEntry) (*models.Budget, error)
}
