package income

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetIncomeByIdController struct {
	FindIncomeByIdRepository usecase.FindIncomeByIdRepository
}

func NewGetIncomeByIdController(findIncomeById usecase.FindIncomeByIdRepository) *GetIncomeByIdController {
	return &GetIncomeByIdController{
		FindIncomeByIdRepository: findIncomeById,
	}
}

func (c *GetIncomeByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	income, err := c.FindIncomeByIdRepository.Find(userId, incomeId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding income")
	}

	return helpers.CreateResponse(income, http.StatusOK)
}
