package schema

import "github.com/ledgerly/finance-tracker-backend/internal/domain/models"

type ExpenseInput struct {
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	Amount         float64 `json:"amount" validate:"required,gte=0"`
	Category       string  `json:"category" validate:"required,min=1,max=100"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	IsRecurring    *bool   `json:"isRecurring"`
	NecessityLevel string  `json:"necessityLevel" validate:"omitempty,oneof=A B C"`
}

func (s *Schema) NewExpense(in *ExpenseInput) (*models.Expense, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Name:           in.Name,
		Amount:         in.Amount,
		Category:       in.Category,
		Date:           in.Date,
		NecessityLevel: in.NecessityLevel,
	}

	if in.IsRecurring != nil {
		expense.IsRecurring = *in.IsRecurring
	}
	if expense.NecessityLevel == "" {
		expense.NecessityLevel = DefaultNecessityLevel
	}

	return expense, nil
}

func (s *Schema) CheckExpensePatch(patch *models.ExpensePatch) error {
	return s.check(patch)
}
