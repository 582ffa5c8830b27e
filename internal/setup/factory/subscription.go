package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/subscription_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/subscription"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateSubscriptionController(db *mongo.Database) *controllers.CreateSubscriptionController {
	createSubscription := subscription_repository.NewCreateSubscriptionRepository(db)
	return controllers.NewCreateSubscriptionController(createSubscription, schema.New())
}

func MakeGetSubscriptionsController(db *mongo.Database) *controllers.GetSubscriptionsController {
	findSubscriptions := subscription_repository.NewFindSubscriptionsRepository(db)
	return controllers.NewGetSubscriptionsController(findSubscriptions)
}

func MakeGetSubscriptionByIdController(db *mongo.Database) *controllers.GetSubscriptionByIdController {
	findSubscriptionById := subscription_repository.NewFindSubscriptionByIdRepository(db)
	return controllers.NewGetSubscriptionByIdController(findSubscriptionById)
}

func MakeUpdateSubscriptionController(db *mongo.Database) *controllers.UpdateSubscriptionController {
	updateSubscription := subscription_repository.NewUpdateSubscriptionRepository(db)
	return controllers.NewUpdateSubscriptionController(updateSubscription, schema.New())
}

func MakeDeleteSubscriptionController(db *mongo.Database) *controllers.DeleteSubscriptionController {
	deleteSubscription := subscription_repository.NewDeleteSubscriptionRepository(db)
	return controllers.NewDeleteSubscriptionController(deleteSubscription)
}
