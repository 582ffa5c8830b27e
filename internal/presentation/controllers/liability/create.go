package liability

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type CreateLiabilityController struct {
	CreateLiabilityRepository usecase.CreateLiabilityRepository
	Schema                    *schema.Schema
}

func NewCreateLiabilityController(createLiability usecase.CreateLiabilityRepository, entitySchema *schema.Schema) *CreateLiabilityController {
	return &CreateLiabilityController{
		CreateLiabilityRepository: createLiability,
		Schema:                    entitySchema,
	}
}

func (c *CreateLiabilityController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.LiabilityInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	liability, err := c.Schema.NewLiability(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	created, err := c.CreateLiabilityRepository.Create(userId, liability)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating liability")
	}

	return helpers.CreateResponse(created, http.StatusOK)
}
