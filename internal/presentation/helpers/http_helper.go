package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader(nil)),
			StatusCode: statusCode,
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"error encoding response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		StatusCode: statusCode,
	}
}

// UserIdFromHeader reads the id the auth middleware resolved for this
// request.
func UserIdFromHeader(r presentationProtocols.HttpRequest) (primitive.ObjectID, *presentationProtocols.HttpResponse) {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return primitive.NilObjectID, CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user id",
		}, http.StatusBadRequest)
	}

	return userId, nil
}

// RepositoryErrorResponse maps repository failures to user-visible status.
func RepositoryErrorResponse(err error, fallback string) *presentationProtocols.HttpResponse {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "item not found or already deleted",
		}, http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "storage temporarily unavailable",
		}, http.StatusServiceUnavailable)
	}

	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: fallback,
	}, http.StatusInternalServerError)
}

// SchemaErrorResponse maps validation failures. They always fire before any
// write is attempted.
func SchemaErrorResponse(err error) *presentationProtocols.HttpResponse {
	var validationErr *schema.ValidationError
	if errors.As(err, &validationErr) {
		return CreateResponse(&presentationProtocols.ErrorResponse{
			Error: validationErr.Error(),
		}, http.StatusUnprocessableEntity)
	}

	return CreateResponse(&presentationProtocols.ErrorResponse{
		Error: err.Error(),
	}, http.StatusBadRequest)
}
