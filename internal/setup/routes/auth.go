package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthRoutes are the only unauthenticated routes: they are how a session
// token is obtained in the first place.
func AuthRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /auth/register", adapters.AdaptRoute(factory.MakeRegisterController(db)))

	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(db)))
}
