package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func LiabilityRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /liabilities", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateLiabilityController(db)),
	))

	server.Handle("GET /liabilities", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetLiabilitiesController(db)),
	))

	server.Handle("GET /liabilities/{liabilityId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetLiabilityByIdController(db)),
	))

	server.Handle("PUT /liabilities/{liabilityId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateLiabilityController(db)),
	))

	server.Handle("DELETE /liabilities/{liabilityId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteLiabilityController(db)),
	))
}
