package embedded

import (
	"context"
	"fmt"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/usecase"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// Collection gives atomic CRUD over one named array embedded in the user
// document. Every mutation is a single positional update; the aggregate is
// never loaded, mutated in memory and saved back, so concurrent writes to
// sibling collections cannot be lost.
type Collection[T any] struct {
	Db    *mongo.Database
	Field string
}

func NewCollection[T any](db *mongo.Database, field string) *Collection[T] {
	return &Collection[T]{
		Db:    db,
		Field: field,
	}
}

func (c *Collection[T]) Push(userId primitive.ObjectID, item T) error {
	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$push": bson.M{c.Field: item},
	})
	if err != nil {
		return storageErr(err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrUserNotFound
	}

	return nil
}

func (c *Collection[T]) PushMany(userId primitive.ObjectID, items []T) error {
	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$push": bson.M{c.Field: bson.M{"$each": items}},
	})
	if err != nil {
		return storageErr(err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrUserNotFound
	}

	return nil
}

func (c *Collection[T]) FindAll(userId primitive.ObjectID) ([]T, error) {
	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{c.Field: 1})

	var doc bson.M
	err := collection.FindOne(ctx, bson.M{"_id": userId}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrUserNotFound
		}
		return nil, storageErr(err)
	}

	return decodeItems[T](doc[c.Field])
}

func (c *Collection[T]) FindById(userId primitive.ObjectID, itemId primitive.ObjectID) (*T, error) {
	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{
		c.Field: bson.M{"$elemMatch": bson.M{"id": itemId}},
	})

	var doc bson.M
	err := collection.FindOne(ctx, bson.M{"_id": userId}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrUserNotFound
		}
		return nil, storageErr(err)
	}

	items, err := decodeItems[T](doc[c.Field])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, usecase.ErrItemNotFound
	}

	return &items[0], nil
}

// Set applies a partial update to the element matching itemId in one
// positional write. Only the fields present in patch are touched; an empty
// patch writes nothing.
func (c *Collection[T]) Set(userId primitive.ObjectID, itemId primitive.ObjectID, patch any) error {
	set, err := PositionalSet(c.Field, patch)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return nil
	}

	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	filter := bson.M{"_id": userId, c.Field + ".id": itemId}

	result, err := collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return storageErr(err)
	}
	if result.MatchedCount == 0 {
		return c.missing(userId)
	}

	return nil
}

func (c *Collection[T]) Pull(userId primitive.ObjectID, itemId primitive.ObjectID) error {
	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": userId}, bson.M{
		"$pull": bson.M{c.Field: bson.M{"id": itemId}},
	})
	if err != nil {
		return storageErr(err)
	}
	if result.MatchedCount == 0 {
		return usecase.ErrUserNotFound
	}
	if result.ModifiedCount == 0 {
		return usecase.ErrItemNotFound
	}

	return nil
}

// PushNested appends entry to a nested history array of the element
// matching itemId. mirror fields, when given, are set on the same element
// in the same write, so a denormalized field can never diverge from its
// history.
func (c *Collection[T]) PushNested(userId primitive.ObjectID, itemId primitive.ObjectID, nestedField string, entry any, mirror bson.M) error {
	update := bson.M{
		"$push": bson.M{c.Field + ".$." + nestedField: entry},
	}
	if len(mirror) > 0 {
		set := bson.M{}
		for key, value := range mirror {
			set[c.Field+".$."+key] = value
		}
		update["$set"] = set
	}

	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	filter := bson.M{"_id": userId, c.Field + ".id": itemId}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return storageErr(err)
	}
	if result.MatchedCount == 0 {
		return c.missing(userId)
	}

	return nil
}

// missing disambiguates a zero-match positional update: absent aggregate
// versus absent item.
func (c *Collection[T]) missing(userId primitive.ObjectID) error {
	collection := c.Db.Collection(usersCollection)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	n, err := collection.CountDocuments(ctx, bson.M{"_id": userId})
	if err != nil {
		return storageErr(err)
	}
	if n == 0 {
		return usecase.ErrUserNotFound
	}

	return usecase.ErrItemNotFound
}

// PositionalSet flattens patch through its bson tags (omitempty drops unset
// fields) into "field.$.key" assignments.
func PositionalSet(field string, patch any) (bson.M, error) {
	raw, err := bson.Marshal(patch)
	if err != nil {
		return nil, err
	}

	var flat bson.M
	if err := bson.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}

	set := bson.M{}
	for key, value := range flat {
		set[field+".$."+key] = value
	}

	return set, nil
}

func decodeItems[T any](v any) ([]T, error) {
	arr, ok := v.(bson.A)
	if !ok {
		return []T{}, nil
	}

	items := make([]T, 0, len(arr))
	for _, el := range arr {
		doc, ok := el.(bson.M)
		if !ok {
			return nil, fmt.Errorf("unexpected element type %T in %v", el, arr)
		}

		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}

		var item T
		if err := bson.Unmarshal(raw, &item); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", usecase.ErrStorageUnavailable, err)
}
