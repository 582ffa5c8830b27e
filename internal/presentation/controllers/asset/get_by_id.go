package asset

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetAssetByIdController struct {
	FindAssetByIdRepository usecase.FindAssetByIdRepository
}

func NewGetAssetByIdController(findAssetById usecase.FindAssetByIdRepository) *GetAssetByIdController {
	return &GetAssetByIdController{
		FindAssetByIdRepository: findAssetById,
	}
}

func (c *GetAssetByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	asset, err := c.FindAssetByIdRepository.Find(userId, assetId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding asset")
	}

	return helpers.CreateResponse(asset, http.StatusOK)
}
