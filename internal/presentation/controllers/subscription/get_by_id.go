package subscription

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetSubscriptionByIdController struct {
	FindSubscriptionByIdRepository usecase.FindSubscriptionByIdRepository
}

func NewGetSubscriptionByIdController(findSubscriptionById usecase.FindSubscriptionByIdRepository) *GetSubscriptionByIdController {
	return &GetSubscriptionByIdController{
		FindSubscriptionByIdRepository: findSubscriptionById,
	}
}

func (c *GetSubscriptionByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	subscription, err := c.FindSubscriptionByIdRepository.Find(userId, subscriptionId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding subscription")
	}

	return helpers.CreateResponse(subscription, http.StatusOK)
}
