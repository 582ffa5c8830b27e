package schema

import (
	"testing"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	s := New()

	t.Run("should apply defaults when optional fields are omitted", func(t *testing.T) {
		// given
		in := &ExpenseInput{
			Name:     "Groceries",
			Amount:   120.50,
			Category: "food",
			Date:     "2026-08-01",
		}

		// when
		expense, err := s.NewExpense(in)

		// then
		require.NoError(t, err)
		assert.False(t, expense.IsRecurring)
		assert.Equal(t, DefaultNecessityLevel, expense.NecessityLevel)
	})

	t.Run("should keep explicit optional fields", func(t *testing.T) {
		// given
		recurring := true
		in := &ExpenseInput{
			Name:           "Rent",
			Amount:         1500,
			Category:       "housing",
			Date:           "2026-08-01",
			IsRecurring:    &recurring,
			NecessityLevel: "A",
		}

		// when
		expense, err := s.NewExpense(in)

		// then
		require.NoError(t, err)
		assert.True(t, expense.IsRecurring)
		assert.Equal(t, "A", expense.NecessityLevel)
	})

	t.Run("should reject a missing name", func(t *testing.T) {
		// when
		_, err := s.NewExpense(&ExpenseInput{
			Amount:   10,
			Category: "food",
			Date:     "2026-08-01",
		})

		// then
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Name", validationErr.Field)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		// when
		_, err := s.NewExpense(&ExpenseInput{
			Name:     "Groceries",
			Amount:   10,
			Category: "food",
			Date:     "01/08/2026",
		})

		// then
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Date", validationErr.Field)
	})

	t.Run("should reject an unknown necessity level", func(t *testing.T) {
		// when
		_, err := s.NewExpense(&ExpenseInput{
			Name:           "Groceries",
			Amount:         10,
			Category:       "food",
			Date:           "2026-08-01",
			NecessityLevel: "D",
		})

		// then
		assert.Error(t, err)
	})
}

func TestCheckExpensePatch(t *testing.T) {
	s := New()

	t.Run("should accept an empty patch", func(t *testing.T) {
		assert.NoError(t, s.CheckExpensePatch(&models.ExpensePatch{}))
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		// given
		amount := -5.0
		patch := models.ExpensePatch{Amount: &amount}

		// when
		err := s.CheckExpensePatch(&patch)

		// then
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Amount", validationErr.Field)
	})
}
