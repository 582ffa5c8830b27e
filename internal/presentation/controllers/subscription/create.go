package subscription

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type CreateSubscriptionController struct {
	CreateSubscriptionRepository usecase.CreateSubscriptionRepository
	Schema                       *schema.Schema
}

func NewCreateSubscriptionController(createSubscription usecase.CreateSubscriptionRepository, entitySchema *schema.Schema) *CreateSubscriptionController {
	return &CreateSubscriptionController{
		CreateSubscriptionRepository: createSubscription,
		Schema:                       entitySchema,
	}
}

func (c *CreateSubscriptionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.SubscriptionInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	subscription, err := c.Schema.NewSubscription(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	created, err := c.CreateSubscriptionRepository.Create(userId, subscription)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating subscription")
	}

	return helpers.CreateResponse(created, http.StatusOK)
}
