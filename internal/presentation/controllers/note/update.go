package note

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateNoteController struct {
	UpdateNoteRepository usecase.UpdateNoteRepository
	Schema               *schema.Schema
}

func NewUpdateNoteController(updateNote usecase.UpdateNoteRepository, entitySchema *schema.Schema) *UpdateNoteController {
	return &UpdateNoteController{
		UpdateNoteRepository: updateNote,
		Schema:               entitySchema,
	}
}

func (c *UpdateNoteController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var patch models.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Schema.CheckNotePatch(&patch); err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	updated, err := c.UpdateNoteRepository.Update(userId, noteId, &patch)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error updating note")
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
