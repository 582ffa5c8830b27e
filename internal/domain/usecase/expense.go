package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseRepository interface {
	Create(userId primitive.ObjectID, expense *models.Expense) (*models.Expense, error)
}

type FindExpensesRepository interface {
	Find(userId primitive.ObjectID) ([]models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(userId primitive.ObjectID, expenseId primitive.ObjectID) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(userId primitive.ObjectID, expenseId primitive.ObjectID, patch *models.ExpensePatch) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(userId primitive.ObjectID, expenseId primitive.ObjectID) error
}

type ImportExpensesRepository interface {
	Import(userId primitive.ObjectID, expenses []models.Expense) ([]models.Expense, error)
}
