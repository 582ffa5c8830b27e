package subscription

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type GetSubscriptionsController struct {
	FindSubscriptionsRepository usecase.FindSubscriptionsRepository
}

func NewGetSubscriptionsController(findSubscriptions usecase.FindSubscriptionsRepository) *GetSubscriptionsController {
	return &GetSubscriptionsController{
		FindSubscriptionsRepository: findSubscriptions,
	}
}

func (c *GetSubscriptionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	subscriptions, err := c.FindSubscriptionsRepository.Find(userId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding subscriptions")
	}

	return helpers.CreateResponse(subscriptions, http.StatusOK)
}
