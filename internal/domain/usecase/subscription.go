package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateSubscriptionRepository interface {
	Create(userId primitive.ObjectID, subscription *models.Subscription) (*models.Subscription, error)
}

type FindSubscriptionsRepository interface {
	Find(userId primitive.ObjectID) ([]models.Subscription, error)
}

type FindSubscriptionByIdRepository interface {
	Find(userId primitive.ObjectID, subscriptionId primitive.ObjectID) (*models.Subscription, error)
}

type UpdateSubscriptionRepository interface {
	Update(userId primitive.ObjectID, subscriptionId primitive.ObjectID, patch *models.SubscriptionPatch) (*models.Subscription, error)
}

type DeleteSubscriptionRepository interface {
	Delete(userId primitive.ObjectID, subscriptionId primitive.ObjectID) error
}
