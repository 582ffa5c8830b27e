package income

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type GetIncomesController struct {
	FindIncomesRepository usecase.FindIncomesRepository
}

func NewGetIncomesController(findIncomes usecase.FindIncomesRepository) *GetIncomesController {
	return &GetIncomesController{
		FindIncomesRepository: findIncomes,
	}
}

func (c *GetIncomesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	incomes, err := c.FindIncomesRepository.Find(userId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding incomes")
	}

	return helpers.CreateResponse(incomes, http.StatusOK)
}
