package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AssetValueEntry is one point of an asset's value history. The asset's
// top-level Value always mirrors the latest entry.
type AssetValueEntry struct {
	Date  string  `json:"date" bson:"date"`
	Value float64 `json:"value" bson:"value"`
}

type AssetDepositEntry struct {
	Date   string  `json:"date" bson:"date"`
	Amount float64 `json:"amount" bson:"amount"`
}

type Asset struct {
	Id       primitive.ObjectID  `json:"id" bson:"id"`
	Name     string              `json:"name" bson:"name"`
	Value    float64             `json:"value" bson:"value"`
	Type     string              `json:"type" bson:"type"`
	Values   []AssetValueEntry   `json:"values" bson:"values"`
	Deposits []AssetDepositEntry `json:"deposits" bson:"deposits"`
}

// AssetPatch never touches Value, Values or Deposits; the value history is
// append-only and mutated exclusively through the value/deposit operations.
type AssetPatch struct {
	Name *string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Type *string `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,min=1,max=100"`
}
