package subscription_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateSubscriptionRepository struct {
	Collection *embedded.Collection[models.Subscription]
}

func NewUpdateSubscriptionRepository(db *mongo.Database) *UpdateSubscriptionRepository {
	return &UpdateSubscriptionRepository{
		Collection: embedded.NewCollection[models.Subscription](db, "subscriptions"),
	}
}

func (r *UpdateSubscriptionRepository) Update(userId primitive.ObjectID, subscriptionId primitive.ObjectID, patch *models.SubscriptionPatch) (*models.Subscription, error) {
	if err := r.Collection.Set(userId, subscriptionId, patch); err != nil {
		return nil, err
	}

	return r.Collection.FindById(userId, subscriptionId)
}
