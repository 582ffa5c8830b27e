package subscription_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteSubscriptionRepository struct {
	Collection *embedded.Collection[models.Subscription]
}

func NewDeleteSubscriptionRepository(db *mongo.Database) *DeleteSubscriptionRepository {
	return &DeleteSubscriptionRepository{
		Collection: embedded.NewCollection[models.Subscription](db, "subscriptions"),
	}
}

func (r *DeleteSubscriptionRepository) Delete(userId primitive.ObjectID, subscriptionId primitive.ObjectID) error {
	return r.Collection.Pull(userId, subscriptionId)
}
