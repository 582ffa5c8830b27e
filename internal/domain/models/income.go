package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Income struct {
	Id          primitive.ObjectID `json:"id" bson:"id"`
	Name        string             `json:"name" bson:"name"`
	GrossAmount float64            `json:"grossAmount" bson:"gross_amount"`
	NetAmount   float64            `json:"netAmount" bson:"net_amount"`
	TaxRate     float64            `json:"taxRate" bson:"tax_rate"`
	Frequency   string             `json:"frequency" bson:"frequency"`
	Type        string             `json:"type" bson:"type"`
	Date        string             `json:"date" bson:"date"`
	IsRecurring bool               `json:"isRecurring" bson:"is_recurring"`
}

type IncomePatch struct {
	Name        *string  `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=255"`
	GrossAmount *float64 `json:"grossAmount,omitempty" bson:"gross_amount,omitempty" validate:"omitempty,gte=0"`
	NetAmount   *float64 `json:"netAmount,omitempty" bson:"net_amount,omitempty" validate:"omitempty,gte=0"`
	TaxRate     *float64 `json:"taxRate,omitempty" bson:"tax_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Frequency   *string  `json:"frequency,omitempty" bson:"frequency,omitempty" validate:"omitempty,oneof=daily weekly biweekly monthly yearly once"`
	Type        *string  `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,min=1,max=100"`
	Date        *string  `json:"date,omitempty" bson:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring *bool    `json:"isRecurring,omitempty" bson:"is_recurring,omitempty"`
}
