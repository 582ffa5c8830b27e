package user_repository

import (
	"context"
	"time"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{
		Db: db,
	}
}

// Create inserts the aggregate with every embedded collection present and
// empty, so positional updates always have an array to target.
func (r *CreateUserRepository) Create(user *models.User) (*models.User, error) {
	collection := r.Db.Collection("users")

	userToSave := &models.User{
		Id:            primitive.NewObjectID(),
		Name:          user.Name,
		Email:         user.Email,
		Password:      user.Password,
		Expenses:      []models.Expense{},
		Incomes:       []models.Income{},
		Assets:        []models.Asset{},
		Liabilities:   []models.Liability{},
		Subscriptions: []models.Subscription{},
		Budgets:       []models.Budget{},
		Notes:         []models.Note{},
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, userToSave)
	if err != nil {
		return nil, err
	}

	return userToSave, nil
}
