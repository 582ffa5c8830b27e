package budget

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetBudgetByIdController struct {
	FindBudgetByIdRepository usecase.FindBudgetByIdRepository
}

func NewGetBudgetByIdController(findBudgetById usecase.FindBudgetByIdRepository) *GetBudgetByIdController {
	return &GetBudgetByIdController{
		FindBudgetByIdRepository: findBudgetById,
	}
}

func (c *GetBudgetByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	budgetId, err := primitive.ObjectIDFromHex(r.Req.PathValue("budgetId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid budgetId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	budget, err := c.FindBudgetByIdRepository.Find(userId, budgetId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding budget")
	}

	return helpers.CreateResponse(budget, http.StatusOK)
}
