package note

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubToggleNotePinRepo struct {
	note *models.Note
	err  error
}

func (s *stubToggleNotePinRepo) TogglePin(userId, noteId primitive.ObjectID) (*models.Note, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.note.IsPinned = !s.note.IsPinned
	return s.note, nil
}

func pinRequest(t *testing.T, noteId string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, "/notes/"+noteId+"/pin", nil)
	req.Header.Set("UserId", primitive.NewObjectID().Hex())
	req.SetPathValue("noteId", noteId)

	return presentationProtocols.HttpRequest{
		Body:   req.Body,
		Header: req.Header,
		Req:    req,
	}
}

func TestToggleNotePinController(t *testing.T) {
	t.Run("should flip the pin on every call", func(t *testing.T) {
		// given
		noteId := primitive.NewObjectID()
		repo := &stubToggleNotePinRepo{note: &models.Note{Id: noteId, Title: "Taxes"}}
		controller := NewToggleNotePinController(repo)

		// when
		first := controller.Handle(pinRequest(t, noteId.Hex()))
		second := controller.Handle(pinRequest(t, noteId.Hex()))

		// then
		assert.Equal(t, http.StatusOK, first.StatusCode)
		var afterFirst models.Note
		decodeNote(t, first, &afterFirst)
		assert.True(t, afterFirst.IsPinned)

		assert.Equal(t, http.StatusOK, second.StatusCode)
		var afterSecond models.Note
		decodeNote(t, second, &afterSecond)
		assert.False(t, afterSecond.IsPinned)
	})

	t.Run("should answer 404 for an unknown note", func(t *testing.T) {
		// given
		repo := &stubToggleNotePinRepo{err: usecase.ErrItemNotFound}
		controller := NewToggleNotePinController(repo)

		// when
		response := controller.Handle(pinRequest(t, primitive.NewObjectID().Hex()))

		// then
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})

	t.Run("should answer 400 on a malformed id", func(t *testing.T) {
		// given
		controller := NewToggleNotePinController(&stubToggleNotePinRepo{})

		// when
		response := controller.Handle(pinRequest(t, "not-an-id"))

		// then
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func decodeNote(t *testing.T, response *presentationProtocols.HttpResponse, v any) {
	t.Helper()

	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(response.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf.Bytes(), v))
}
