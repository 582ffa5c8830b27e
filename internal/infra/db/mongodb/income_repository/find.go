package income_repository

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindIncomesRepository struct {
	Collection *embedded.Collection[models.Income]
}

func NewFindIncomesRepository(db *mongo.Database) *FindIncomesRepository {
	return &FindIncomesRepository{
		Collection: embedded.NewCollection[models.Income](db, "incomes"),
	}
}

func (r *FindIncomesRepository) Find(userId primitive.ObjectID) ([]models.Income, error) {
	return r.Collection.FindAll(userId)
}

type FindIncomeByIdRepository struct {
	Collection *embedded.Collection[models.Income]
}

func NewFindIncomeByIdRepository(db *mongo.Database) *FindIncomeByIdRepository {
	return &FindIncomeByIdRepository{
		Collection: embedded.NewCollection[models.Income](db, "incomes"),
	}
}

func (r *FindIncomeByIdRepository) Find(userId primitive.ObjectID, incomeId primitive.ObjectID) (*models.Income, error) {
	return r.Collection.FindById(userId, incomeId)
}
