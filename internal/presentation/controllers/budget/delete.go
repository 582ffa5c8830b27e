package budget

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteBudgetController struct {
	DeleteBudgetRepository usecase.DeleteBudgetRepository
}

func NewDeleteBudgetController(deleteBudget usecase.DeleteBudgetRepository) *DeleteBudgetController {
	return &DeleteBudgetController{
		DeleteBudgetRepository: deleteBudget,
	}
}

type deleteBudgetResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *DeleteBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteBudgetRepository.Delete(userId, budgetId); err != nil {
		return helpers.RepositoryErrorResponse(err, "error deleting budget")
	}

	return helpers.CreateResponse(&deleteBudgetResponse{
		Id:      budgetId.Hex(),
		Deleted: true,
	}, http.StatusOK)
}
