package asset

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteAssetController struct {
	DeleteAssetRepository usecase.DeleteAssetRepository
}

func NewDeleteAssetController(deleteAsset usecase.DeleteAssetRepository) *DeleteAssetController {
	return &DeleteAssetController{
		DeleteAssetRepository: deleteAsset,
	}
}

type deleteAssetResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *DeleteAssetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	assetId, err := primitive.ObjectIDFromHex(r.Req.PathValue("assetId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid assetId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	if err := c.DeleteAssetRepository.Delete(userId, assetId); err != nil {
		return helpers.RepositoryErrorResponse(err, "error deleting asset")
	}

	return helpers.CreateResponse(&deleteAssetResponse{
		Id:      assetId.Hex(),
		Deleted: true,
	}, http.StatusOK)
}
