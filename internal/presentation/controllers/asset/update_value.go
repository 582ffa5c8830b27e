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

type UpdateAssetValueController struct {
	UpdateAssetValueRepository usecase.UpdateAssetValueRepository
	Schema                     *schema.Schema
}

func NewUpdateAssetValueController(updateAssetValue usecase.UpdateAssetValueRepository, entitySchema *schema.Schema) *UpdateAssetValueController {
	return &UpdateAssetValueController{
		UpdateAssetValueRepository: updateAssetValue,
		Schema:                     entitySchema,
	}
}

// Handle responds with the full refreshed asset collection rather than the
// single updated asset. Existing clients of this endpoint consume that
// shape; new endpoints return the single item instead.
func (c *UpdateAssetValueController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var body schema.AssetValueInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	entry, err := c.Schema.NewAssetValueEntry(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	assets, err := c.UpdateAssetValueRepository.UpdateValue(userId, assetId, entry)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating asset value")
	}

	return helpers.CreateResponse(assets, http.StatusOK)
}
