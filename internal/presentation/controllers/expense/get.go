package expense

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type GetExpensesController struct {
	FindExpensesRepository usecase.FindExpensesRepository
}

func NewGetExpensesController(findExpenses usecase.FindExpensesRepository) *GetExpensesController {
	return &GetExpensesController{
		FindExpensesRepository: findExpenses,
	}
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	expenses, err := c.FindExpensesRepository.Find(userId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding expenses")
	}

	return helpers.CreateResponse(expenses, http.StatusOK)
}
