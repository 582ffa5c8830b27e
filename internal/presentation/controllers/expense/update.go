package expense

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

type UpdateExpenseController struct {
	UpdateExpenseRepository usecase.UpdateExpenseRepository
	Schema                  *schema.Schema
}

func NewUpdateExpenseController(updateExpense usecase.UpdateExpenseRepository, entitySchema *schema.Schema) *UpdateExpenseController {
	return &UpdateExpenseController{
		UpdateExpenseRepository: updateExpense,
		Schema:                  entitySchema,
	}
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	expenseId, err := primitive.ObjectIDFromHex(r.Req.PathValue("expenseId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid expenseId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	var patch models.ExpensePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckExpensePatch(&patch); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	updated, err := c.UpdateExpenseRepository.Update(userId, expenseId, &patch)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating expense")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
