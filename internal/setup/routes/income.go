package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func IncomeRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /incomes", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateIncomeController(db)),
	))

	server.Handle("GET /incomes", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetIncomesController(db)),
	))

	server.Handle("GET /incomes/{incomeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetIncomeByIdController(db)),
	))

	server.Handle("PUT /incomes/{incomeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateIncomeController(db)),
	))

	server.Handle("DELETE /incomes/{incomeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteIncomeController(db)),
	))
}
