package asset

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateAssetDepositController struct {
	CreateAssetDepositRepository usecase.CreateAssetDepositRepository
	Schema                       *schema.Schema
}

func NewCreateAssetDepositController(createAssetDeposit usecase.CreateAssetDepositRepository, entitySchema *schema.Schema) *CreateAssetDepositController {
	return &CreateAssetDepositController{
		CreateAssetDepositRepository: createAssetDeposit,
		Schema:                       entitySchema,
	}
}

func (c *CreateAssetDepositController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	assetId, err := primitive.ObjectIDFromHex(r.Req.PathValue("assetId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid assetId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	var body schema.AssetDepositInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	entry, err := c.Schema.NewAssetDepositEntry(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	asset, err := c.CreateAssetDepositRepository.CreateDeposit(userId, assetId, entry)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error registering asset deposit")
	}

	return helpers.CreateResponse(asset, http.StatusOK)
}
