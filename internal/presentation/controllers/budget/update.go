package budget

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

type UpdateBudgetController struct {
	UpdateBudgetRepository usecase.UpdateBudgetRepository
	Schema                 *schema.Schema
}

func NewUpdateBudgetController(updateBudget usecase.UpdateBudgetRepository, entitySchema *schema.Schema) *UpdateBudgetController {
	return &UpdateBudgetController{
		UpdateBudgetRepository: updateBudget,
		Schema:                 entitySchema,
	}
}

func (c *UpdateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var patch models.BudgetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckBudgetPatch(&patch); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	updated, err := c.UpdateBudgetRepository.Update(userId, budgetId, &patch)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating budget")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
