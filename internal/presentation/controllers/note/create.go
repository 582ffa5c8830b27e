package note

import (
	"encoding/json"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/presentation/helpers"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
)

type CreateNoteController struct {
	CreateNoteRepository usecase.CreateNoteRepository
	Schema               *schema.Schema
}

func NewCreateNoteController(createNote usecase.CreateNoteRepository, entitySchema *schema.Schema) *CreateNoteController {
	return &CreateNoteController{
		CreateNoteRepository: createNote,
		Schema:               entitySchema,
	}
}

func (c *CreateNoteController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body schema.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	userId, errResponse := helpers.UserIdFromHeader(r)
	if errResponse != nil {
		return errResponse
	}

	note, err := c.Schema.NewNote(&body)
	if err != nil {
		return helpers.SchemaErrorResponse(err)
	}

	created, err := c.CreateNoteRepository.Create(userId, note)
	if err != nil {
		return helpers.RepositoryErrorResponse(err, "error creating note")
	}

	return helpers.CreateResponse(created, http.StatusOK)
}
