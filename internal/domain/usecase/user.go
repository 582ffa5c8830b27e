package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

type FindUserByEmailRepository interface {
	Find(email string) (*models.User, error)
}

type FindUserByIdRepository interface {
	Find(userId primitive.ObjectID) (*models.User, error)
}
