package expense_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindExpensesRepository struct {
	Collection *embedded.Collection[models.Expense]
	Cache      *redis.Client
}

func NewFindExpensesRepository(db *mongo.Database, cache *redis.Client) *FindExpensesRepository {
	return &FindExpensesRepository{
		Collection: embedded.NewCollection[models.Expense](db, "expenses"),
		Cache:      cache,
	}
}

func (r *FindExpensesRepository) Find(userId primitive.ObjectID) ([]models.Expense, error) {
	if cached, ok := readCache(r.Cache, userId); ok {
		return cached, nil
	}

	expenses, err := r.Collection.FindAll(userId)
	if err != nil {
		return nil, err
	}

	writeCache(r.Cache, userId, expenses)

	return expenses, nil
}
