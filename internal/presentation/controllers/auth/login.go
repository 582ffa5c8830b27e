package auth

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"github.com/ledgerly/finance-tracker-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type LoginController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	AccessToken               *utils.AccessTokenUtil
	Schema                    *schema.Schema
}

func NewLoginController(findUserByEmail usecase.FindUserByEmailRepository, accessToken *utils.AccessTokenUtil, entitySchema *schema.Schema) *LoginController {
	return &LoginController{
		FindUserByEmailRepository: findUserByEmail,
		AccessToken:               accessToken,
		Schema:                    entitySchema,
	}
}

// Handle answers invalid email and invalid password with the same message,
// so the endpoint does not confirm which emails exist.
func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckLogin(&body); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	user, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding user")
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid credentials",
		}, http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid credentials",
		}, http.StatusUnauthorized)
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
