package schema

import (
	"testing"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpensesFromRows(t *testing.T) {
	s := New()

	t.Run("should skip the header row and import the rest", func(t *testing.T) {
		// given
		rows := [][]string{
			{"Name", "Amount", "Category", "Date"},
			{"Groceries", "120.50", "food", "2026-08-01"},
			{"Rent", "1500", "housing", "2026-08-01", "true", "a"},
		}
		run := &models.ImportRun{}

		// when
		expenses := s.ExpensesFromRows(rows, run)

		// then
		require.Len(t, expenses, 2)
		assert.Equal(t, 2, run.Imported)
		assert.Equal(t, 0, run.Skipped)
		assert.True(t, expenses[1].IsRecurring)
		assert.Equal(t, "A", expenses[1].NecessityLevel)
	})

	t.Run("should record bad rows without aborting the import", func(t *testing.T) {
		// given
		rows := [][]string{
			{"Groceries", "not-a-number", "food", "2026-08-01"},
			{"Rent", "1500", "housing", "2026-08-01"},
			{"Too", "short"},
		}
		run := &models.ImportRun{}

		// when
		expenses := s.ExpensesFromRows(rows, run)

		// then
		require.Len(t, expenses, 1)
		assert.Equal(t, 1, run.Imported)
		assert.Equal(t, 2, run.Skipped)
		require.Len(t, run.Errors, 2)
		assert.Equal(t, 1, run.Errors[0].Row)
		assert.Equal(t, 3, run.Errors[1].Row)
	})

	t.Run("should validate each row like a single create", func(t *testing.T) {
		// given
		rows := [][]string{
			{"Groceries", "120.50", "food", "08/01/2026"},
		}
		run := &models.ImportRun{}

		// when
		expenses := s.ExpensesFromRows(rows, run)

		// then
		assert.Empty(t, expenses)
		assert.Equal(t, 1, run.Skipped)
	})
}
