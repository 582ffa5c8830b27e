package subscription_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindSubscriptionsRepository struct {
	Collection *embedded.Collection[models.Subscription]
}

func NewFindSubscriptionsRepository(db *mongo.Database) *FindSubscriptionsRepository {
	return &FindSubscriptionsRepository{
		Collection: embedded.NewCollection[models.Subscription](db, "subscriptions"),
	}
}

func (r *FindSubscriptionsRepository) Find(userId primitive.ObjectID) ([]models.Subscription, error) {
	return r.Collection.FindAll(userId)
}

type FindSubscriptionByIdRepository struct {
	Collection *embedded.Collection[models.Subscription]
}

func NewFindSubscriptionByIdRepository(db *mongo.Database) *FindSubscriptionByIdRepository {
	return &FindSubscriptionByIdRepository{
		Collection: embedded.NewCollection[models.Subscription](db, "subscriptions"),
	}
}

func (r *FindSubscriptionByIdRepository) Find(userId primitive.ObjectID, subscriptionId primitive.ObjectID) (*models.Subscription, error) {
	return r.Collection.FindById(userId, subscriptionId)
}
