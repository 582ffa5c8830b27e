package note

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteNoteController struct {
	DeleteNoteRepository usecase.DeleteNoteRepository
}

func NewDeleteNoteController(deleteNote usecase.DeleteNoteRepository) *DeleteNoteController {
	return &DeleteNoteController{
		DeleteNoteRepository: deleteNote,
	}
}

type deleteNoteResponse struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (c *DeleteNoteController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteNoteRepository.Delete(userId, noteId); err != nil {
		return helpers.RepositoryErrorResponse(err, "error deleting note")
	}

	return helpers.CreateResponse(&deleteNoteResponse{
		Id:      noteId.Hex(),
		Deleted: true,
	}, http.StatusOK)
}
