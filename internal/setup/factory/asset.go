package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/asset_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/asset"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateAssetController(db *mongo.Database) *controllers.CreateAssetController {
	createAsset := asset_repository.NewCreateAssetRepository(db)
	return controllers.NewCreateAssetController(createAsset, schema.New())
}

func MakeGetAssetsController(db *mongo.Database) *controllers.GetAssetsController {
	findAssets := asset_repository.NewFindAssetsRepository(db)
	return controllers.NewGetAssetsController(findAssets)
}

func MakeGetAssetByIdController(db *mongo.Database) *controllers.GetAssetByIdController {
	findAssetById := asset_repository.NewFindAssetByIdRepository(db)
	return controllers.NewGetAssetByIdController(findAssetById)
}

func MakeUpdateAssetController(db *mongo.Database) *controllers.UpdateAssetController {
	updateAsset := asset_repository.NewUpdateAssetRepository(db)
	return controllers.NewUpdateAssetController(updateAsset, schema.New())
}

func MakeUpdateAssetValueController(db *mongo.Database) *controllers.UpdateAssetValueController {
	updateAssetValue := asset_repository.NewUpdateAssetValueRepository(db)
	return controllers.NewUpdateAssetValueController(updateAssetValue, schema.New())
}

func MakeCreateAssetDepositController(db *mongo.Database) *controllers.CreateAssetDepositController {
	createAssetDeposit := asset_repository.NewCreateAssetDepositRepository(db)
	return controllers.NewCreateAssetDepositController(createAssetDeposit, schema.New())
}

func MakeDeleteAssetController(db *mongo.Database) *controllers.DeleteAssetController {
	deleteAsset := asset_repository.NewDeleteAssetRepository(db)
	return controllers.NewDeleteAssetController(deleteAsset)
}
