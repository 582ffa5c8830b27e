package expense

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type CreateExpenseController struct {
	CreateExpenseRepository usecase.CreateExpenseRepository
	Schema                  *schema.Schema
}

func NewCreateExpenseController(createExpense usecase.CreateExpenseRepository, entitySchema *schema.Schema) *CreateExpenseController {
	return &CreateExpenseController{
		CreateExpenseRepository: createExpense,
		Schema:                  entitySchema,
	}
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	expense, err := c.Schema.NewExpense(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	created, err := c.CreateExpenseRepository.Create(userId, expense)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating expense")
	}

	return helpers.CreateResponse(created, http.StatusOK)
}
