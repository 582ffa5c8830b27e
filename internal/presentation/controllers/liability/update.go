package liability

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

type UpdateLiabilityController struct {
	UpdateLiabilityRepository usecase.UpdateLiabilityRepository
	Schema                    *schema.Schema
}

func NewUpdateLiabilityController(updateLiability usecase.UpdateLiabilityRepository, entitySchema *schema.Schema) *UpdateLiabilityController {
	return &UpdateLiabilityController{
		UpdateLiabilityRepository: updateLiability,
		Schema:                    entitySchema,
	}
}

func (c *UpdateLiabilityController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	liabilityId, err := primitive.ObjectIDFromHex(r.Req.PathValue("liabilityId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid liabilityId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	var patch models.LiabilityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckLiabilityPatch(&patch); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	updated, err := c.UpdateLiabilityRepository.Update(userId, liabilityId, &patch)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating liability")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
