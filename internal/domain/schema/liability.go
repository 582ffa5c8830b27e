package schema

import "github.com/ledgerly/finance-tracker-backend/internal/domain/models"

type LiabilityInput struct {
	Name   string  `json:"name" validate:"required,min=1,max=255"`
	Amount float64 `json:"amount" validate:"required,gte=0"`
	Type   string  `json:"type" validate:"omitempty,min=1,max=100"`
}

func (s *Schema) NewLiability(in *LiabilityInput) (*models.Liability, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	return &models.Liability{
		Name:   in.Name,
		Amount: in.Amount,
		Type:   in.Type,
	}, nil
}

func (s *Schema) CheckLiabilityPatch(patch *models.LiabilityPatch) error {
	return s.check(patch)
}
