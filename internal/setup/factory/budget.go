package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/budget_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/budget"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateBudgetController(db *mongo.Database) *controllers.CreateBudgetController {
	createBudget := budget_repository.NewCreateBudgetRepository(db)
	return controllers.NewCreateBudgetController(createBudget, schema.New())
}

func MakeGetBudgetsController(db *mongo.Database) *controllers.GetBudgetsController {
	findBudgets := budget_repository.NewFindBudgetsRepository(db)
	return controllers.NewGetBudgetsController(findBudgets)
}

func MakeGetBudgetByIdController(db *mongo.Database) *controllers.GetBudgetByIdController {
	findBudgetById := budget_repository.NewFindBudgetByIdRepository(db)
	return controllers.NewGetBudgetByIdController(findBudgetById)
}

func MakeUpdateBudgetController(db *mongo.Database) *controllers.UpdateBudgetController {
	updateBudget := budget_repository.NewUpdateBudgetRepository(db)
	return controllers.NewUpdateBudgetController(updateBudget, schema.New())
}

func MakeCreateBudgetTrackingController(db *mongo.Database) *controllers.CreateBudgetTrackingController {
	createBudgetTracking := budget_repository.NewCreateBudgetTrackingRepository(db)
	return controllers.NewCreateBudgetTrackingController(createBudgetTracking, schema.New())
}

func MakeDeleteBudgetController(db *mongo.Database) *controllers.DeleteBudgetController {
	deleteBudget := budget_repository.NewDeleteBudgetRepository(db)
	return controllers.NewDeleteBudgetController(deleteBudget)
}
