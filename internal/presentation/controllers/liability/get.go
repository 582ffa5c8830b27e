package liability

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type GetLiabilitiesController struct {
	FindLiabilitiesRepository usecase.FindLiabilitiesRepository
}

func NewGetLiabilitiesController(findLiabilities usecase.FindLiabilitiesRepository) *GetLiabilitiesController {
	return &GetLiabilitiesController{
		FindLiabilitiesRepository: findLiabilities,
	}
}

func (c *GetLiabilitiesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	liabilities, err := c.FindLiabilitiesRepository.Find(userId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding liabilities")
	}

	return helpers.CreateResponse(liabilities, http.StatusOK)
}
