package budget

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type GetBudgetsController struct {
	FindBudgetsRepository usecase.FindBudgetsRepository
}

func NewGetBudgetsController(findBudgets usecase.FindBudgetsRepository) *GetBudgetsController {
	return &GetBudgetsController{
		FindBudgetsRepository: findBudgets,
	}
}

func (c *GetBudgetsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	budgets, err := c.FindBudgetsRepository.Find(userId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding budgets")
	}

	return helpers.CreateResponse(budgets, http.StatusOK)
}
