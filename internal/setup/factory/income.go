package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/income_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/income"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateIncomeController(db *mongo.Database) *controllers.CreateIncomeController {
	createIncome := income_repository.NewCreateIncomeRepository(db)
	return controllers.NewCreateIncomeController(createIncome, schema.New())
}

func MakeGetIncomesController(db *mongo.Database) *controllers.GetIncomesController {
	findIncomes := income_repository.NewFindIncomesRepository(db)
	return controllers.NewGetIncomesController(findIncomes)
}

func MakeGetIncomeByIdController(db *mongo.Database) *controllers.GetIncomeByIdController {
	findIncomeById := income_repository.NewFindIncomeByIdRepository(db)
	return controllers.NewGetIncomeByIdController(findIncomeById)
}

func MakeUpdateIncomeController(db *mongo.Database) *controllers.UpdateIncomeController {
	updateIncome := income_repository.NewUpdateIncomeRepository(db)
	return controllers.NewUpdateIncomeController(updateIncome, schema.New())
}

func MakeDeleteIncomeController(db *mongo.Database) *controllers.DeleteIncomeController {
	deleteIncome := income_repository.NewDeleteIncomeRepository(db)
	return controllers.NewDeleteIncomeController(deleteIncome)
}
