package liability

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteLiabilityController struct {
	DeleteLiabilityRepository usecase.DeleteLiabilityRepository
}

func NewDeleteLiabilityController(deleteLiability usecase.DeleteLiabilityRepository) *DeleteLiabilityController {
	return &DeleteLiabilityController{
		DeleteLiabilityRepository: deleteLiability,
	}
}

type deleteLiabilityResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *DeleteLiabilityController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteLiabilityRepository.Delete(userId, liabilityId); err != nil {
		return helpers.RepositoryErrorResponse(err, "error deleting liability")
	}

	return helpers.CreateResponse(&deleteLiabilityResponse{
		Id:      liabilityId.Hex(),
		Deleted: true,
	}, http.StatusOK)
}
