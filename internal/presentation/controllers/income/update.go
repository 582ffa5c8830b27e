package income

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateIncomeController struct {
	UpdateIncomeRepository usecase.UpdateIncomeRepository
	Schema                 *schema.Schema
}

func NewUpdateIncomeController(updateIncome usecase.UpdateIncomeRepository, entitySchema *schema.Schema) *UpdateIncomeController {
	return &UpdateIncomeController{
		UpdateIncomeRepository: updateIncome,
		Schema:                 entitySchema,
	}
}

func (c *UpdateIncomeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var patch models.IncomePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckIncomePatch(&patch); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	updated, err := c.UpdateIncomeRepository.Update(userId, incomeId, &patch)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating income")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
