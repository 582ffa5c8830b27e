package note

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ToggleNotePinController struct {
	ToggleNotePinRepository usecase.ToggleNotePinRepository
}

func NewToggleNotePinController(toggleNotePin usecase.ToggleNotePinRepository) *ToggleNotePinController {
	return &ToggleNotePinController{
		ToggleNotePinRepository: toggleNotePin,
	}
}

// Handle takes no body. The pin flag is negated in the database, so the
// response reflects whichever state the toggle actually produced.
func (c *ToggleNotePinController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	note, err := c.ToggleNotePinRepository.TogglePin(userId, noteId)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error toggling note pin")
	}

	return helpers.CreateResponse(note, http.StatusOK)
}
