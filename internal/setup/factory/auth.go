package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/user_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/auth"
	"github.com/ledgerly/finance-tracker-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeRegisterController(db *mongo.Database) *controllers.RegisterController {
	createUser := user_repository.NewCreateUserRepository(db)
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	return controllers.NewRegisterController(createUser, findUserByEmail, utils.NewAccessTokenUtil(), schema.New())
}

func MakeLoginController(db *mongo.Database) *controllers.LoginController {
	findUserByEmail := user_repository.NewFindUserByEmailRepository(db)
	return controllers.NewLoginController(findUserByEmail, utils.NewAccessTokenUtil(), schema.New())
}
