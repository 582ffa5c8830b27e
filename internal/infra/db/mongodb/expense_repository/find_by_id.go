package expense_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpenseByIdRepository struct {
	Collection *embedded.Collection[models.Expense]
}

func NewFindExpenseByIdRepository(db *mongo.Database) *FindExpenseByIdRepository {
	return &FindExpenseByIdRepository{
		Collection: embedded.NewCollection[models.Expense](db, "expenses"),
	}
}

func (r *FindExpenseByIdRepository) Find(userId primitive.ObjectID, expenseId primitive.ObjectID) (*models.Expense, error) {
	return r.Collection.FindById(userId, expenseId)
}
