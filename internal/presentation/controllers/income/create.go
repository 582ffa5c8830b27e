package income

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type CreateIncomeController struct {
	CreateIncomeRepository usecase.CreateIncomeRepository
	Schema                 *schema.Schema
}

func NewCreateIncomeController(createIncome usecase.CreateIncomeRepository, entitySchema *schema.Schema) *CreateIncomeController {
	return &CreateIncomeController{
		CreateIncomeRepository: createIncome,
		Schema:                 entitySchema,
	}
}

func (c *CreateIncomeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.IncomeInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	income, err := c.Schema.NewIncome(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	created, err := c.CreateIncomeRepository.Create(userId, income)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating income")
	}

	return helpers.CreateResponse(created, http.StatusOK)
}
