package auth

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"github.com/ledgerly/finance-tracker-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type RegisterController struct {
	CreateUserRepository      usecase.CreateUserRepository
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	AccessToken               *utils.AccessTokenUtil
	Schema                    *schema.Schema
}

func NewRegisterController(createUser usecase.CreateUserRepository, findUserByEmail usecase.FindUserByEmailRepository, accessToken *utils.AccessTokenUtil, entitySchema *schema.Schema) *RegisterController {
	return &RegisterController{
		CreateUserRepository:      createUser,
		FindUserByEmailRepository: findUserByEmail,
		AccessToken:               accessToken,
		Schema:                    entitySchema,
	}
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckRegister(&body); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	existing, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error checking email")
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "email already registered",
		}, http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error hashing password",
		}, http.StatusInternalServerError)
	}

	user, err := c.CreateUserRepository.Create(&models.User{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hash),
	})
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating user")
	}

	token, err := c.AccessToken.EncodeToken(user.Id.Hex())
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error issuing token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&authResponse{
		User:  user,
		Token: token,
	}, http.StatusOK)
}
