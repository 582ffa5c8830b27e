package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	Id        primitive.ObjectID `json:"id" bson:"id"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Tags      []string           `json:"tags" bson:"tags"`
	IsPinned  bool               `json:"isPinned" bson:"is_pinned"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// NotePatch has no IsPinned field on purpose: pinning goes through the
// atomic toggle operation, never through a plain field update.
type NotePatch struct {
	Title     *string   `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content   *string   `json:"content,omitempty" bson:"content,omitempty" validate:"omitempty,min=1"`
	Tags      *[]string `json:"tags,omitempty" bson:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	UpdatedAt time.Time `json:"-" bson:"updated_at"`
}
