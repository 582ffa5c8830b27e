package schema

import "github.com/ledgerly/finance-tracker-backend/internal/domain/models"

type IncomeInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	GrossAmount float64 `json:"grossAmount" validate:"required,gte=0"`
	NetAmount   float64 `json:"netAmount" validate:"required,gte=0"`
	TaxRate     float64 `json:"taxRate" validate:"gte=0,lte=100"`
	Frequency   string  `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly yearly once"`
	Type        string  `json:"type" validate:"required,min=1,max=100"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	IsRecurring *bool   `json:"isRecurring" validate:"required"`
}

func (s *Schema) NewIncome(in *IncomeInput) (*models.Income, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	return &models.Income{
		Name:        in.Name,
		GrossAmount: in.GrossAmount,
		NetAmount:   in.NetAmount,
		TaxRate:     in.TaxRate,
		Frequency:   in.Frequency,
		Type:        in.Type,
		Date:        in.Date,
		IsRecurring: *in.IsRecurring,
	}, nil
}

func (s *Schema) CheckIncomePatch(patch *models.IncomePatch) error {
	return s.check(patch)
}
