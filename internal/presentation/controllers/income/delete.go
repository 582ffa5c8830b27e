package income

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteIncomeController struct {
	DeleteIncomeRepository usecase.DeleteIncomeRepository
}

func NewDeleteIncomeController(deleteIncome usecase.DeleteIncomeRepository) *DeleteIncomeController {
	return &DeleteIncomeController{
		DeleteIncomeRepository: deleteIncome,
	}
}

type deleteIncomeResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *DeleteIncomeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	incomeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("incomeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid incomeId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteIncomeRepository.Delete(userId, incomeId); err != nil {
		return helpers.RepositoryErrorResponse(err, "error deleting income")
	}

	return helpers.CreateResponse(&deleteIncomeResponse{
		Id:      incomeId.Hex(),
		Deleted: true,
	}, http.StatusOK)
}
