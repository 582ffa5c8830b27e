package asset

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateAssetController struct {
	UpdateAssetRepository usecase.UpdateAssetRepository
	Schema                *schema.Schema
}

func NewUpdateAssetController(updateAsset usecase.UpdateAssetRepository, entitySchema *schema.Schema) *UpdateAssetController {
	return &UpdateAssetController{
		UpdateAssetRepository: updateAsset,
		Schema:                entitySchema,
	}
}

func (c *UpdateAssetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var patch models.AssetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckAssetPatch(&patch); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	updated, err := c.UpdateAssetRepository.Update(userId, assetId, &patch)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating asset")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
