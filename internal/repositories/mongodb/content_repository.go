package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"govportal/internal/content"
	"govportal/internal/repositories/interfaces"
)

type contentRepository struct {
	collection    *mongo.Collection
	sortByRecency bool
}

// NewContentRepository binds the generic content repository to the
// descriptor's collection.
func NewContentRepository(db *mongo.Database, desc content.Descriptor) interfaces.ContentRepository {
	return &contentRepository{
		collection:    db.Collection(desc.Collection),
		sortByRecency: desc.SortByRecency,
	}
}

func (r *contentRepository) Insert(ctx context.Context, fields bson.M) (bson.M, error) {
	doc := make(bson.M, len(fields)+3)
	for k, v := range fields {
		doc[k] = v
	}
	doc["_id"] = primitive.NewObjectID()
	now := time.Now()
	doc["created_at"] = now
	doc["updated_at"] = now

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, interfaces.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	return doc, nil
}

func (r *contentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}
	return doc, nil
}

func (r *contentRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M, unset []string) (bson.M, error) {
	setDoc := make(bson.M, len(set)+1)
	for k, v := range set {
		setDoc[k] = v
	}
	setDoc["updated_at"] = time.Now()

	update := bson.M{"$set": setDoc}
	if len(unset) > 0 {
		unsetDoc := bson.M{}
		for _, field := range unset {
			unsetDoc[field] = ""
		}
		update["$unset"] = unsetDoc
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bson.M
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, interfaces.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return doc, nil
}

func (r *contentRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *contentRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	opts := options.Find()
	if r.sortByRecency {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

func (r *contentRepository) FindLatestActive(ctx context.Context) (bson.M, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"is_active": true}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active document: %w", err)
	}
	return doc, nil
}
