package subscription_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateSubscriptionRepository struct {
	Collection *embedded.Collection[models.Subscription]
}

func NewCreateSubscriptionRepository(db *mongo.Database) *CreateSubscriptionRepository {
	return &CreateSubscriptionRepository{
		Collection: embedded.NewCollection[models.Subscription](db, "subscriptions"),
	}
}

func (r *CreateSubscriptionRepository) Create(userId primitive.ObjectID, subscription *models.Subscription) (*models.Subscription, error) {
	subscription.Id = primitive.NewObjectID()

	if err := r.Collection.Push(userId, *subscription); err != nil {
		return nil, err
	}

	return subscription, nil
}
