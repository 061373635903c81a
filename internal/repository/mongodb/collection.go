package mongodb

import (
	"context"
	"errors"
	"fmt"

	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/pkg/objectid"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection holds the operations shared by every resource. Documents travel
// as raw bson.M and are normalized by the resource repositories.
type collection struct {
	coll *mongo.Collection
}

func (c collection) insertOne(ctx context.Context, doc bson.M) (objectid.ID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return objectid.ID{}, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return objectid.ID{}, fmt.Errorf("%s: unexpected inserted id type %T", c.coll.Name(), res.InsertedID)
	}
	return objectid.FromObjectID(oid), nil
}

// findByID returns domain.ErrNotFound for invalid ids without touching the store.
func (c collection) findByID(ctx context.Context, id objectid.ID) (bson.M, error) {
	if !id.Valid() {
		return nil, domain.ErrNotFound
	}

	var doc bson.M
	err := c.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c collection) findAll(ctx context.Context, limit int) ([]bson.M, error) {
	cursor, err := c.coll.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cursor.Err()
}

// updateByID applies a $set merge and returns the modified count. Values equal
// to what is stored count as unmodified.
func (c collection) updateByID(ctx context.Context, id objectid.ID, fields map[string]interface{}) (int64, error) {
	if !id.Valid() || len(fields) == 0 {
		return 0, nil
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id.ObjectID()}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (c collection) deleteByID(ctx context.Context, id objectid.ID) (int64, error) {
	if !id.Valid() {
		return 0, nil
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id.ObjectID()})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
