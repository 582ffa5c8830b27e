package expense

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/import_report_repository"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const maxImportFileSize = 10 << 20 // 10 MiB

type ImportExpensesController struct {
	ImportExpensesRepository usecase.ImportExpensesRepository
	Schema                   *schema.Schema
	Cache                    *redis.Client
}

func NewImportExpensesController(importExpenses usecase.ImportExpensesRepository, entitySchema *schema.Schema, cache *redis.Client) *ImportExpensesController {
	return &ImportExpensesController{
		ImportExpensesRepository: importExpenses,
		Schema:                   entitySchema,
		Cache:                    cache,
	}
}

type importExpensesResponse struct {
	RunId    string                  `json:"runId"`
	Imported int                     `json:"imported"`
	Skipped  int                     `json:"skipped"`
	Errors   []models.ImportRowError `json:"errors"`
	Expenses []models.Expense        `json:"expenses"`
}

func (c *ImportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	if err := r.Req.ParseMultipartForm(maxImportFileSize); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid multipart form",
		}, http.StatusBadRequest)
	}

	file, _, err := r.Req.FormFile("file")
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "missing file field",
		}, http.StatusBadRequest)
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid spreadsheet file",
		}, http.StatusBadRequest)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "spreadsheet has no sheets",
		}, http.StatusBadRequest)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "error reading spreadsheet rows",
		}, http.StatusBadRequest)
	}

	// The run accumulator is scoped to this request: concurrent imports
	// never see each other's counters.
	run := &models.ImportRun{
		Id:        uuid.NewString(),
		StartedAt: time.Now(),
		Errors:    []models.ImportRowError{},
	}

	expenses := c.Schema.ExpensesFromRows(rows, run)

	imported, err := c.ImportExpensesRepository.Import(userId, expenses)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error importing expenses")
	}

	if err := import_report_repository.SaveReport(c.Cache, run); err != nil {
		log.Errorf("error staging import report %s: %v", run.Id, err)
	}

	return helpers.CreateResponse(&importExpensesResponse{
		RunId:    run.Id,
		Imported: run.Imported,
		Skipped:  run.Skipped,
		Errors:   run.Errors,
		Expenses: imported,
	}, http.StatusOK)
}
