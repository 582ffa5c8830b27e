package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Liability struct {
	Id     primitive.ObjectID `json:"id" bson:"id"`
	Name   string             `json:"name" bson:"name"`
	Amount float64            `json:"amount" bson:"amount"`
	Type   string             `json:"type" bson:"type"`
}

type LiabilityPatch struct {
	Name   *string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Amount *float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gte=0"`
	Type   *string  `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,min=1,max=100"`
}
