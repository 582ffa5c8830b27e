package config

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/routes"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, cache *redis.Client) {
	apiServer := http.NewServeMux()
	routes.AuthRoutes(apiServer, db)
	routes.ExpenseRoutes(apiServer, db, cache)
	routes.IncomeRoutes(apiServer, db)
	routes.AssetRoutes(apiServer, db)
	routes.LiabilityRoutes(apiServer, db)
	routes.SubscriptionRoutes(apiServer, db)
	routes.BudgetRoutes(apiServer, db)
	routes.NoteRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
