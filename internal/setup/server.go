package setup

import (
	"net/http"
	"os"

	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/helpers"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), os.Getenv("MONGO_DB"))
	cache := helpers.RedisHelper(os.Getenv("REDIS_URL"))

	config.SetupRoutes(mux, db, cache)

	return mux
}
