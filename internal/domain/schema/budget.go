package schema

import (
	"time"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
)

type BudgetInput struct {
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Amount   float64 `json:"amount" validate:"required,gte=0"`
	Category string  `json:"category" validate:"omitempty,min=1,max=100"`
}

func (s *Schema) NewBudget(in *BudgetInput) (*models.Budget, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	return &models.Budget{
		Name:     in.Name,
		Amount:   in.Amount,
		Category: in.Category,
		Tracking: []models.BudgetTrackingEntry{},
	}, nil
}

func (s *Schema) CheckBudgetPatch(patch *models.BudgetPatch) error {
	return s.check(patch)
}

type BudgetTrackingInput struct {
	Date   string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount *float64 `json:"amount" validate:"required,gte=0"`
}

func (s *Schema) NewBudgetTrackingEntry(in *BudgetTrackingInput) (*models.BudgetTrackingEntry, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	entry := &models.BudgetTrackingEntry{
		Date:   in.Date,
		Amount: *in.Amount,
	}
	if entry.Date == "" {
		entry.Date = time.Now().Format(DateLayout)
	}

	return entry, nil
}
