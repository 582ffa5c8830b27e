package asset

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type CreateAssetController struct {
	CreateAssetRepository usecase.CreateAssetRepository
	Schema                *schema.Schema
}

func NewCreateAssetController(createAsset usecase.CreateAssetRepository, entitySchema *schema.Schema) *CreateAssetController {
	return &CreateAssetController{
		CreateAssetRepository: createAsset,
		Schema:                entitySchema,
	}
}

func (c *CreateAssetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.AssetInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	asset, err := c.Schema.NewAsset(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	created, err := c.CreateAssetRepository.Create(userId, asset)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating asset")
	}

	return helpers.CreateResponse(created, http.StatusOK)
}
