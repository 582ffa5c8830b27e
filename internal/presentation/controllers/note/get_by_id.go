package note

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetNoteByIdController struct {
	FindNoteByIdRepository usecase.FindNoteByIdRepository
}

func NewGetNoteByIdController(findNoteById usecase.FindNoteByIdRepository) *GetNoteByIdController {
	return &GetNoteByIdController{
		FindNoteByIdRepository: findNoteById,
	}
}

func (c *GetNoteByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	noteId, err := primitive.ObjectIDFromHex(r.Req.PathValue("noteId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid noteId format",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	note, err := c.FindNoteByIdRepository.Find(userId, noteId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error finding note")
	}

	return helpers.CreateResponse(note, http.StatusOK)
}
