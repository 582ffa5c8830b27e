package expense_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateExpenseRepository struct {
	Collection *embedded.Collection[models.Expense]
	Cache      *redis.Client
}

func NewUpdateExpenseRepository(db *mongo.Database, cache *redis.Client) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Collection: embedded.NewCollection[models.Expense](db, "expenses"),
		Cache:      cache,
	}
}

func (r *UpdateExpenseRepository) Update(userId primitive.ObjectID, expenseId primitive.ObjectID, patch *models.ExpensePatch) (*models.Expense, error) {
	if err := r.Collection.Set(userId, expenseId, patch); err != nil {
		return nil, err
	}

	invalidateCache(r.Cache, userId)

	return r.Collection.FindById(userId, expenseId)
}
