package expense

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetExpenseByIdController struct {
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewGetExpenseByIdController(findExpenseById usecase.FindExpenseByIdRepository) *GetExpenseByIdController {
	return &GetExpenseByIdController{
		FindExpenseByIdRepository: findExpenseById,
	}
}

func (c *GetExpenseByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	expense, err := c.FindExpenseByIdRepository.Find(userId, expenseId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding expense")
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
