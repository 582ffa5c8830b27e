package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func BudgetRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /budgets", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateBudgetController(db)),
	))

	server.Handle("GET /budgets", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetBudgetsController(db)),
	))

	server.Handle("GET /budgets/{budgetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetBudgetByIdController(db)),
	))

	server.Handle("PUT /budgets/{budgetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateBudgetController(db)),
	))

	server.Handle("POST /budgets/{budgetId}/track", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateBudgetTrackingController(db)),
	))

	server.Handle("DELETE /budgets/{budgetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteBudgetController(db)),
	))
}
