package expense_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ImportExpensesRepository struct {
	Collection *embedded.Collection[models.Expense]
	Cache      *redis.Client
}

func NewImportExpensesRepository(db *mongo.Database, cache *redis.Client) *ImportExpensesRepository {
	return &ImportExpensesRepository{
		Collection: embedded.NewCollection[models.Expense](db, "expenses"),
		Cache:      cache,
	}
}

// Import appends all expenses in a single $each push, so a concurrent
// mutation of a sibling collection can never interleave with a half-applied
// import.
func (r *ImportExpensesRepository) Import(userId primitive.ObjectID, expenses []models.Expense) ([]models.Expense, error) {
	if len(expenses) == 0 {
		return []models.Expense{}, nil
	}

	for i := range expenses {
		expenses[i].Id = primitive.NewObjectID()
	}

	if err := r.Collection.PushMany(userId, expenses); err != nil {
		return nil, err
	}

	invalidateCache(r.Cache, userId)

	return expenses, nil
}
