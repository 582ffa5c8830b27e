package schema

import "github.com/ledgerly/finance-tracker-backend/internal/domain/models"

type SubscriptionInput struct {
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	Amount         float64 `json:"amount" validate:"required,gte=0"`
	Frequency      string  `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly yearly"`
	Category       string  `json:"category" validate:"required,min=1,max=100"`
	BillingDate    string  `json:"billingDate" validate:"required,datetime=2006-01-02"`
	NecessityLevel string  `json:"necessityLevel" validate:"omitempty,oneof=A B C"`
	Active         *bool   `json:"active"`
}

func (s *Schema) NewSubscription(in *SubscriptionInput) (*models.Subscription, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	subscription := &models.Subscription{
		Name:           in.Name,
		Amount:         in.Amount,
		Frequency:      in.Frequency,
		Category:       in.Category,
		BillingDate:    in.BillingDate,
		NecessityLevel: in.NecessityLevel,
		Active:         true,
	}

	if in.Active != nil {
		subscription.Active = *in.Active
	}
	if subscription.NecessityLevel == "" {
		subscription.NecessityLevel = DefaultNecessityLevel
	}

	return subscription, nil
}

func (s *Schema) CheckSubscriptionPatch(patch *models.SubscriptionPatch) error {
	return s.check(patch)
}
