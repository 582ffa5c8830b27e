package schema

import (
	"time"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
)

type AssetInput struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Value float64 `json:"value" validate:"required,gte=0"`
	Type  string  `json:"type" validate:"required,min=1,max=100"`
}

// NewAsset seeds both histories with the initial value, so a fresh asset
// always has one value entry and one deposit entry dated today.
func (s *Schema) NewAsset(in *AssetInput) (*models.Asset, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	now := time.Now().Format(DateLayout)

	return &models.Asset{
		Name:  in.Name,
		Value: in.Value,
		Type:  in.Type,
		Values: []models.AssetValueEntry{
			{Date: now, Value: in.Value},
		},
		Deposits: []models.AssetDepositEntry{
			{Date: now, Amount: in.Value},
		},
	}, nil
}

func (s *Schema) CheckAssetPatch(patch *models.AssetPatch) error {
	return s.check(patch)
}

type AssetValueInput struct {
	Date  string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Value *float64 `json:"value" validate:"required,gte=0"`
}

func (s *Schema) NewAssetValueEntry(in *AssetValueInput) (*models.AssetValueEntry, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	entry := &models.AssetValueEntry{
		Date:  in.Date,
		Value: *in.Value,
	}
	if entry.Date == "" {
		entry.Date = time.Now().Format(DateLayout)
	}

	return entry, nil
}

type AssetDepositInput struct {
	Date   string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Amount *float64 `json:"amount" validate:"required,gt=0"`
}

func (s *Schema) NewAssetDepositEntry(in *AssetDepositInput) (*models.AssetDepositEntry, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	entry := &models.AssetDepositEntry{
		Date:   in.Date,
		Amount: *in.Amount,
	}
	if entry.Date == "" {
		entry.Date = time.Now().Format(DateLayout)
	}

	return entry, nil
}
