package expense_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteExpenseRepository struct {
	Collection *embedded.Collection[models.Expense]
	Cache      *redis.Client
}

func NewDeleteExpenseRepository(db *mongo.Database, cache *redis.Client) *DeleteExpenseRepository {
	return &DeleteExpenseRepository{
		Collection: embedded.NewCollection[models.Expense](db, "expenses"),
		Cache:      cache,
	}
}

func (r *DeleteExpenseRepository) Delete(userId primitive.ObjectID, expenseId primitive.ObjectID) error {
	if err := r.Collection.Pull(userId, expenseId); err != nil {
		return err
	}

	invalidateCache(r.Cache, userId)

	return nil
}
