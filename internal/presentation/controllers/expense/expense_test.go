package expense

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	presentationProtocols "github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubCreateExpenseRepo struct {
	created *models.Expense
}

func (s *stubCreateExpenseRepo) Create(userId primitive.ObjectID, expense *models.Expense) (*models.Expense, error) {
	expense.Id = primitive.NewObjectID()
	s.created = expense
	return expense, nil
}

type stubUpdateExpenseRepo struct {
	err     error
	updated *models.Expense
}

func (s *stubUpdateExpenseRepo) Update(userId, expenseId primitive.ObjectID, patch *models.ExpensePatch) (*models.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.updated, nil
}

type stubDeleteExpenseRepo struct {
	deleted map[string]bool
}

func (s *stubDeleteExpenseRepo) Delete(userId, expenseId primitive.ObjectID) error {
	if s.deleted[expenseId.Hex()] {
		return usecase.ErrItemNotFound
	}
	s.deleted[expenseId.Hex()] = true
	return nil
}

func newRequest(t *testing.T, method, target, body string, pathValues map[string]string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("UserId", primitive.NewObjectID().Hex())
	for key, value := range pathValues {
		req.SetPathValue(key, value)
	}

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeBody(t *testing.T, response *presentationProtocols.HttpResponse, v any) {
	t.Helper()

	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(response.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf.Bytes(), v))
}

func TestCreateExpenseController(t *testing.T) {
	t.Run("should create an expense and answer with the stored item", func(t *testing.T) {
		// given
		repo := &stubCreateExpenseRepo{}
		controller := NewCreateExpenseController(repo, schema.New())
		request := newRequest(t, http.MethodPost, "/expenses",
			`{"name":"Groceries","amount":120.5,"category":"food","date":"2026-08-01"}`, nil)

		// when
		response := controller.Handle(request)

		// then
		assert.Equal(t, http.StatusOK, response.StatusCode)
		var created models.Expense
		decodeBody(t, response, &created)
		assert.Equal(t, "Groceries", created.Name)
		assert.Equal(t, "C", created.NecessityLevel)
		assert.False(t, created.Id.IsZero())
	})

	t.Run("should answer 422 before any write when validation fails", func(t *testing.T) {
		// given
		repo := &stubCreateExpenseRepo{}
		controller := NewCreateExpenseController(repo, schema.New())
		request := newRequest(t, http.MethodPost, "/expenses",
			`{"name":"Groceries","amount":120.5,"category":"food","date":"bad-date"}`, nil)

		// when
		response := controller.Handle(request)

		// then
		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
		assert.Nil(t, repo.created)
	})

	t.Run("should answer 400 on a malformed body", func(t *testing.T) {
		// given
		controller := NewCreateExpenseController(&stubCreateExpenseRepo{}, schema.New())
		request := newRequest(t, http.MethodPost, "/expenses", `{not json`, nil)

		// when
		response := controller.Handle(request)

		// then
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func TestUpdateExpenseController(t *testing.T) {
	t.Run("should answer with the updated item", func(t *testing.T) {
		// given
		expenseId := primitive.NewObjectID()
		repo := &stubUpdateExpenseRepo{updated: &models.Expense{Id: expenseId, Name: "Rent", Amount: 1600}}
		controller := NewUpdateExpenseController(repo, schema.New())
		request := newRequest(t, http.MethodPut, "/expenses/"+expenseId.Hex(),
			`{"amount":1600}`, map[string]string{"expenseId": expenseId.Hex()})

		// when
		response := controller.Handle(request)

		// then
		assert.Equal(t, http.StatusOK, response.StatusCode)
		var updated models.Expense
		decodeBody(t, response, &updated)
		assert.Equal(t, 1600.0, updated.Amount)
	})

	t.Run("should answer 404 when the item vanished", func(t *testing.T) {
		// given
		expenseId := primitive.NewObjectID()
		repo := &stubUpdateExpenseRepo{err: usecase.ErrItemNotFound}
		controller := NewUpdateExpenseController(repo, schema.New())
		request := newRequest(t, http.MethodPut, "/expenses/"+expenseId.Hex(),
			`{"amount":1600}`, map[string]string{"expenseId": expenseId.Hex()})

		// when
		response := controller.Handle(request)

		// then
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
	})

	t.Run("should answer 400 on a malformed id", func(t *testing.T) {
		// given
		controller := NewUpdateExpenseController(&stubUpdateExpenseRepo{}, schema.New())
		request := newRequest(t, http.MethodPut, "/expenses/nope",
			`{"amount":1600}`, map[string]string{"expenseId": "nope"})

		// when
		response := controller.Handle(request)

		// then
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func TestDeleteExpenseController(t *testing.T) {
	t.Run("should delete once and answer 404 on the second attempt", func(t *testing.T) {
		// given
		expenseId := primitive.NewObjectID()
		repo := &stubDeleteExpenseRepo{deleted: map[string]bool{}}
		controller := NewDeleteExpenseController(repo)

		// when
		first := controller.Handle(newRequest(t, http.MethodDelete, "/expenses/"+expenseId.Hex(),
			"", map[string]string{"expenseId": expenseId.Hex()}))
		second := controller.Handle(newRequest(t, http.MethodDelete, "/expenses/"+expenseId.Hex(),
			"", map[string]string{"expenseId": expenseId.Hex()}))

		// then
		assert.Equal(t, http.StatusOK, first.StatusCode)
		var body deleteExpenseResponse
		decodeBody(t, first, &body)
		assert.Equal(t, expenseId.Hex(), body.Id)
		assert.True(t, body.Deleted)
		assert.Equal(t, http.StatusNotFound, second.StatusCode)
	})
}
