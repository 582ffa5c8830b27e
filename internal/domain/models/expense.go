package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Expense struct {
	Id             primitive.ObjectID `json:"id" bson:"id"`
	Name           string             `json:"name" bson:"name"`
	Amount         float64            `json:"amount" bson:"amount"`
	Category       string             `json:"category" bson:"category"`
	Date           string             `json:"date" bson:"date"`
	IsRecurring    bool               `json:"isRecurring" bson:"is_recurring"`
	NecessityLevel string             `json:"necessityLevel" bson:"necessity_level"`
}

// ExpensePatch carries only the fields the caller wants to change. Absent
// fields stay untouched by the positional update.
type ExpensePatch struct {
	Name           *string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Amount         *float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gte=0"`
	Category       *string  `json:"category,omitempty" bson:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Date           *string  `json:"date,omitempty" bson:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring    *bool    `json:"isRecurring,omitempty" bson:"is_recurring,omitempty"`
	NecessityLevel *string  `json:"necessityLevel,omitempty" bson:"necessity_level,omitempty" validate:"omitempty,oneof=A B C"`
}
