package note

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type GetNotesController struct {
	FindNotesRepository usecase.FindNotesRepository
}

func NewGetNotesController(findNotes usecase.FindNotesRepository) *GetNotesController {
	return &GetNotesController{
		FindNotesRepository: findNotes,
	}
}

func (c *GetNotesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	notes, err := c.FindNotesRepository.Find(userId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding notes")
	}

	return helpers.CreateResponse(notes, http.StatusOK)
}
