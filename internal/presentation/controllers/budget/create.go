package budget

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type CreateBudgetController struct {
	CreateBudgetRepository usecase.CreateBudgetRepository
	Schema                 *schema.Schema
}

func NewCreateBudgetController(createBudget usecase.CreateBudgetRepository, entitySchema *schema.Schema) *CreateBudgetController {
	return &CreateBudgetController{
		CreateBudgetRepository: createBudget,
		Schema:                 entitySchema,
	}
}

func (c *CreateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.BudgetInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	budget, err := c.Schema.NewBudget(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	created, err := c.CreateBudgetRepository.Create(userId, budget)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating budget")
	}

	return helpers.CreateResponse(created, http.StatusOK)
}
