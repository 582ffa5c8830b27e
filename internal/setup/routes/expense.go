package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/middlewares"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func ExpenseRoutes(server *http.ServeMux, db *mongo.Database, cache *redis.Client) {
	server.Handle("POST /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateExpenseController(db, cache)),
	))

	server.Handle("GET /expenses", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetExpensesController(db, cache)),
	))

	server.Handle("POST /expenses/import", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeImportExpensesController(db, cache)),
	))

	server.Handle("GET /expenses/import/{runId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetImportReportController(cache)),
	))

	server.Handle("GET /expenses/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetExpenseByIdController(db)),
	))

	server.Handle("PUT /expenses/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateExpenseController(db, cache)),
	))

	server.Handle("DELETE /expenses/{expenseId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteExpenseController(db, cache)),
	))
}
