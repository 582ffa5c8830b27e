package subscription

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

type UpdateSubscriptionController struct {
	UpdateSubscriptionRepository usecase.UpdateSubscriptionRepository
	Schema                       *schema.Schema
}

func NewUpdateSubscriptionController(updateSubscription usecase.UpdateSubscriptionRepository, entitySchema *schema.Schema) *UpdateSubscriptionController {
	return &UpdateSubscriptionController{
		UpdateSubscriptionRepository: updateSubscription,
		Schema:                       entitySchema,
	}
}

func (c *UpdateSubscriptionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	subscriptionId, err := primitive.ObjectIDFromHex(r.Req.PathValue("subscriptionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid subscriptionId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	var patch models.SubscriptionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckSubscriptionPatch(&patch); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	updated, err := c.UpdateSubscriptionRepository.Update(userId, subscriptionId, &patch)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating subscription")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
