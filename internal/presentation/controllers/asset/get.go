package asset

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type GetAssetsController struct {
	FindAssetsRepository usecase.FindAssetsRepository
}

func NewGetAssetsController(findAssets usecase.FindAssetsRepository) *GetAssetsController {
	return &GetAssetsController{
		FindAssetsRepository: findAssets,
	}
}

func (c *GetAssetsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	assets, err := c.FindAssetsRepository.Find(userId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding assets")
	}

	return helpers.CreateResponse(assets, http.StatusOK)
}
