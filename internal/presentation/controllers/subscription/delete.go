package subscription

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteSubscriptionController struct {
	DeleteSubscriptionRepository usecase.DeleteSubscriptionRepository
}

func NewDeleteSubscriptionController(deleteSubscription usecase.DeleteSubscriptionRepository) *DeleteSubscriptionController {
	return &DeleteSubscriptionController{
		DeleteSubscriptionRepository: deleteSubscription,
	}
}

type deleteSubscriptionResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *DeleteSubscriptionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteSubscriptionRepository.Delete(userId, subscriptionId); err != nil {
		return helpers.RepositoryErrorResponse(err, "error deleting subscription")
	}

	return helpers.CreateResponse(&deleteSubscriptionResponse{
		Id:      subscriptionId.Hex(),
		Deleted: true,
	}, http.StatusOK)
}
