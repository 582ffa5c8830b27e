package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Subscription struct {
	Id             primitive.ObjectID `json:"id" bson:"id"`
	Name           string             `json:"name" bson:"name"`
	Amount         float64            `json:"amount" bson:"amount"`
	Frequency      string             `json:"frequency" bson:"frequency"`
	Category       string             `json:"category" bson:"category"`
	BillingDate    string             `json:"billingDate" bson:"billing_date"`
	NecessityLevel string             `json:"necessityLevel" bson:"necessity_level"`
	Active         bool               `json:"active" bson:"active"`
}

type SubscriptionPatch struct {
	Name           *string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Amount         *float64 `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,gte=0"`
	Frequency      *string  `json:"frequency,omitempty" bson:"frequency,omitempty" validate:"omitempty,oneof=daily weekly biweekly monthly yearly"`
	Category       *string  `json:"category,omitempty" bson:"category,omitempty" validate:"omitempty,min=1,max=100"`
	BillingDate    *string  `json:"billingDate,omitempty" bson:"billing_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NecessityLevel *string  `json:"necessityLevel,omitempty" bson:"necessity_level,omitempty" validate:"omitempty,oneof=A B C"`
	Active         *bool    `json:"active,omitempty" bson:"active,omitempty"`
}
