package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/expense_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/expense"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateExpenseController(db *mongo.Database, cache *redis.Client) *controllers.CreateExpenseController {
	createExpense := expense_repository.NewCreateExpenseRepository(db, cache)
	return controllers.NewCreateExpenseController(createExpense, schema.New())
}

func MakeGetExpensesController(db *mongo.Database, cache *redis.Client) *controllers.GetExpensesController {
	findExpenses := expense_repository.NewFindExpensesRepository(db, cache)
	return controllers.NewGetExpensesController(findExpenses)
}

func MakeGetExpenseByIdController(db *mongo.Database) *controllers.GetExpenseByIdController {
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(db)
	return controllers.NewGetExpenseByIdController(findExpenseById)
}

func MakeUpdateExpenseController(db *mongo.Database, cache *redis.Client) *controllers.UpdateExpenseController {
	updateExpense := expense_repository.NewUpdateExpenseRepository(db, cache)
	return controllers.NewUpdateExpenseController(updateExpense, schema.New())
}

func MakeDeleteExpenseController(db *mongo.Database, cache *redis.Client) *controllers.DeleteExpenseController {
	deleteExpense := expense_repository.NewDeleteExpenseRepository(db, cache)
	return controllers.NewDeleteExpenseController(deleteExpense)
}

func MakeImportExpensesController(db *mongo.Database, cache *redis.Client) *controllers.ImportExpensesController {
	importExpenses := expense_repository.NewImportExpensesRepository(db, cache)
	return controllers.NewImportExpensesController(importExpenses, schema.New(), cache)
}

func MakeGetImportReportController(cache *redis.Client) *controllers.GetImportReportController {
	return controllers.NewGetImportReportController(cache)
}
