package note_repository

import (
	"context"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/embedded"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ToggleNotePinRepository struct {
	Db         *mongo.Database
	Collection *embedded.Collection[models.Note]
}

func NewToggleNotePinRepository(db *mongo.Database) *ToggleNotePinRepository {
	return &ToggleNotePinRepository{
		Db:         db,
		Collection: embedded.NewCollection[models.Note](db, "notes"),
	}
}

// TogglePin negates isPinned with an aggregation-pipeline update, so the
// negation happens server-side in one write. Two concurrent toggles each
// flip the flag exactly once; there is no read-then-write window to lose
// one of them in.
func (r *ToggleNotePinRepository) TogglePin(userId primitive.ObjectID, noteId primitive.ObjectID) (*models.Note, error) {
	collection := r.Db.Collection("users")

	filter := bson.M{"_id": userId, "notes.id": noteId}

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"notes": bson.M{
				"$map": bson.M{
					"input": "$notes",
					"in": bson.M{
						"$cond": bson.A{
							bson.M{"$eq": bson.A{"$$this.id", noteId}},
							bson.M{"$mergeObjects": bson.A{
								"$$this",
								bson.M{
									"is_pinned":  bson.M{"$not": "$$this.is_pinned"},
									"updated_at": "$$NOW",
								},
							}},
							"$$this",
						},
					},
				},
			},
		}}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, usecase.ErrItemNotFound
	}

	return r.Collection.FindById(userId, noteId)
}
