package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BudgetTrackingEntry is one spent-amount record in a budget's tracking
// history. The history is append-only.
type BudgetTrackingEntry struct {
	Date   string  `json:"date" bson:"date"`
	Amount float64 `json:"amount" bson:"amount"`
}

type Budget struct {
	Id       primitive.ObjectID    `json:"id" bson:"id"`
	Name     string                `json:"name" bson:"name"`
	Amount   float64               `json:"amount" bson:"amount"`
	Category string                `json:"category" bson:"category"`
	Tracking []BudgetTrackingEntry `json:"tracking" bson:"tracking"`
}

type BudgetPatch struct {
	Name     *string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Amount   *float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gte=0"`
	Category *string  `json:"category,omitempty" bson:"category,omitempty" validate:"omitempty,min=1,max=100"`
}
