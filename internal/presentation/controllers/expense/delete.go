package expense

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteExpenseController struct {
	DeleteExpenseRepository usecase.DeleteExpenseRepository
}

func NewDeleteExpenseController(deleteExpense usecase.DeleteExpenseRepository) *DeleteExpenseController {
	return &DeleteExpenseController{
		DeleteExpenseRepository: deleteExpense,
	}
}

type deleteExpenseResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteExpenseRepository.Delete(userId, expenseId); err != nil {
		return helpers.RepositoryErrorResponse(err, "error deleting expense")
	}

	return helpers.CreateResponse(&deleteExpenseResponse{
		Id:      expenseId.Hex(),
		Deleted: true,
	}, http.StatusOK)
}
