package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateIncomeRepository interface {
	Create(userId primitive.ObjectID, income *models.Income) (*models.Income, error)
}

type FindIncomesRepository interface {
	Find(userId primitive.ObjectID) ([]models.Income, error)
}

type FindIncomeByIdRepository interface {
	Find(userId primitive.ObjectID, incomeId primitive.ObjectID) (*models.Income, error)
}

type UpdateIncomeRepository interface {
	Update(userId primitive.ObjectID, incomeId primitive.ObjectID, patch *models.IncomePatch) (*models.Income, error)
}

type DeleteIncomeRepository interface {
	Delete(userId primitive.ObjectID, incomeId primitive.ObjectID) error
}
