package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func AssetRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /assets", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateAssetController(db)),
	))

	server.Handle("GET /assets", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetAssetsController(db)),
	))

	server.Handle("GET /assets/{assetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetAssetByIdController(db)),
	))

	server.Handle("PUT /assets/{assetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateAssetController(db)),
	))

	server.Handle("PUT /assets/{assetId}/value", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateAssetValueController(db)),
	))

	server.Handle("POST /assets/{assetId}/deposit", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateAssetDepositController(db)),
	))

	server.Handle("DELETE /assets/{assetId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteAssetController(db)),
	))
}
