package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func SubscriptionRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /subscriptions", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateSubscriptionController(db)),
	))

	server.Handle("GET /subscriptions", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSubscriptionsController(db)),
	))

	server.Handle("GET /subscriptions/{subscriptionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetSubscriptionByIdController(db)),
	))

	server.Handle("PUT /subscriptions/{subscriptionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateSubscriptionController(db)),
	))

	server.Handle("DELETE /subscriptions/{subscriptionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteSubscriptionController(db)),
	))
}
