package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/liability_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/liability"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateLiabilityController(db *mongo.Database) *controllers.CreateLiabilityController {
	createLiability := liability_repository.NewCreateLiabilityRepository(db)
	return controllers.NewCreateLiabilityController(createLiability, schema.New())
}

func MakeGetLiabilitiesController(db *mongo.Database) *controllers.GetLiabilitiesController {
	findLiabilities := liability_repository.NewFindLiabilitiesRepository(db)
	return controllers.NewGetLiabilitiesController(findLiabilities)
}

func MakeGetLiabilityByIdController(db *mongo.Database) *controllers.GetLiabilityByIdController {
	findLiabilityById := liability_repository.NewFindLiabilityByIdRepository(db)
	return controllers.NewGetLiabilityByIdController(findLiabilityById)
}

func MakeUpdateLiabilityController(db *mongo.Database) *controllers.UpdateLiabilityController {
	updateLiability := liability_repository.NewUpdateLiabilityRepository(db)
	return controllers.NewUpdateLiabilityController(updateLiability, schema.New())
}

func MakeDeleteLiabilityController(db *mongo.Database) *controllers.DeleteLiabilityController {
	deleteLiability := liability_repository.NewDeleteLiabilityRepository(db)
	return controllers.NewDeleteLiabilityController(deleteLiability)
}
