package expense

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/import_report_repository"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"github.com/redis/go-redis/v9"
)

type GetImportReportController struct {
	Cache *redis.Client
}

func NewGetImportReportController(cache *redis.Client) *GetImportReportController {
	return &GetImportReportController{
		Cache: cache,
	}
}

func (c *GetImportReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	runId := r.Req.PathValue("runId")
	if runId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "missing runId",
		}, http.StatusBadRequest)
	}

	run, err := import_report_repository.FindReport(c.Cache, runId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error finding import report",
		}, http.StatusInternalServerError)
	}
	if run == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "import report not found or expired",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(run, http.StatusOK)
}
