package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the aggregate document. Every entity collection lives embedded on
// it, so a single positional write can touch any item without loading the
// rest of the document.
type User struct {
	Id            primitive.ObjectID `json:"id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	Expenses      []Expense          `json:"expenses" bson:"expenses"`
	Incomes       []Income           `json:"incomes" bson:"incomes"`
	Assets        []Asset            `json:"assets" bson:"assets"`
	Liabilities   []Liability        `json:"liabilities" bson:"liabilities"`
	Subscriptions []Subscription     `json:"subscriptions" bson:"subscriptions"`
	Budgets       []Budget           `json:"budgets" bson:"budgets"`
	Notes         []Note             `json:"notes" bson:"notes"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}
