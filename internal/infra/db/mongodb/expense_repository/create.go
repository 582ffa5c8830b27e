package expense_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Collection *embedded.Collection[models.Expense]
	Cache      *redis.Client
}

func NewCreateExpenseRepository(db *mongo.Database, cache *redis.Client) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Collection: embedded.NewCollection[models.Expense](db, "expenses"),
		Cache:      cache,
	}
}

func (r *CreateExpenseRepository) Create(userId primitive.ObjectID, expense *models.Expense) (*models.Expense, error) {
	expense.Id = primitive.NewObjectID()

	if err := r.Collection.Push(userId, *expense); err != nil {
		return nil, err
	}

	invalidateCache(r.Cache, userId)

	return expense, nil
}
