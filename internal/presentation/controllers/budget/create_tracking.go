package budget

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBudgetTrackingController struct {
	CreateBudgetTrackingRepository usecase.CreateBudgetTrackingRepository
	Schema                         *schema.Schema
}

func NewCreateBudgetTrackingController(createBudgetTracking usecase.CreateBudgetTrackingRepository, entitySchema *schema.Schema) *CreateBudgetTrackingController {
	return &CreateBudgetTrackingController{
		CreateBudgetTrackingRepository: createBudgetTracking,
		Schema:                         entitySchema,
	}
}

func (c *CreateBudgetTrackingController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var body schema.BudgetTrackingInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	entry, err := c.Schema.NewBudgetTrackingEntry(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	budget, err := c.CreateBudgetTrackingRepository.CreateTracking(userId, budgetId, entry)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error tracking budget spending")
	}

	return helpers.CreateResponse(budget, http.StatusOK)
}
