package liability

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetLiabilityByIdController struct {
	FindLiabilityByIdRepository usecase.FindLiabilityByIdRepository
}

func NewGetLiabilityByIdController(findLiabilityById usecase.FindLiabilityByIdRepository) *GetLiabilityByIdController {
	return &GetLiabilityByIdController{
		FindLiabilityByIdRepository: findLiabilityById,
	}
}

func (c *GetLiabilityByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	liabilityId, err := primitive.ObjectIDFromHex(r.Req.PathValue("liabilityId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid liabilityId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	liability, err := c.FindLiabilityByIdRepository.Find(userId, liabilityId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding liability")
	}

	return helpers.CreateResponse(liability, http.StatusOK)
}
