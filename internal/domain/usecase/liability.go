package usecase

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateLiabilityRepository interface {
	Create(userId primitive.ObjectID, liability *models.Liability) (*models.Liability, error)
}

type FindLiabilitiesRepository interface {
	Find(userId primitive.ObjectID) ([]models.Liability, error)
}

type FindLiabilityByIdRepository interface {
	Find(userId primitive.ObjectID, liabilityId primitive.ObjectID) (*models.Liability, error)
}

type UpdateLiabilityRepository interface {
	Update(userId primitive.ObjectID, liabilityId primitive.ObjectID, patch *models.LiabilityPatch) (*models.Liability, error)
}

type DeleteLiabilityRepository interface {
	Delete(userId primitive.ObjectID, liabilityId primitive.ObjectID) error
}
