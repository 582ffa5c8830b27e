package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
)

// ExpensesFromRows converts spreadsheet rows into validated expenses. Row
// layout: name, amount, category, date[, isRecurring[, necessityLevel]].
// A header row is skipped. Per-row failures are recorded on the run (1-based
// row numbers, matching what the user sees in the sheet) and do not abort
// the rest of the import.
func (s *Schema) ExpensesFromRows(rows [][]string, run *models.ImportRun) []models.Expense {
	expenses := []models.Expense{}

	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}

		in, err := expenseInputFromRow(row)
		if err != nil {
			run.Skip(i+1, err.Error())
			continue
		}

		expense, err := s.NewExpense(in)
		if err != nil {
			run.Skip(i+1, err.Error())
			continue
		}

		expenses = append(expenses, *expense)
		run.Accept()
	}

	return expenses
}

func expenseInputFromRow(row []string) (*ExpenseInput, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", row[1])
	}

	in := &ExpenseInput{
		Name:     strings.TrimSpace(row[0]),
		Amount:   amount,
		Category: strings.TrimSpace(row[2]),
		Date:     strings.TrimSpace(row[3]),
	}

	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		isRecurring, err := strconv.ParseBool(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, fmt.Errorf("invalid isRecurring %q", row[4])
		}
		in.IsRecurring = &isRecurring
	}

	if len(row) > 5 {
		in.NecessityLevel = strings.ToUpper(strings.TrimSpace(row[5]))
	}

	return in, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name")
}
