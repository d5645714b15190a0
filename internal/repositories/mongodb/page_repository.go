package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"govportal/internal/models"
	"govportal/internal/repositories/interfaces"
)

type pageRepository struct {
	collection *mongo.Collection
}

func NewPageRepository(db *mongo.Database) interfaces.PageRepository {
	return &pageRepository{
		collection: db.Collection("pages"),
	}
}

func (r *pageRepository) Create(ctx context.Context, page *models.Page) error {
	page.ID = primitive.NewObjectID()
	page.CreatedAt = time.Now()
	page.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, page)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create page: %w", err)
	}
	return nil
}

func (r *pageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Page, error) {
	var page models.Page
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page by slug: %w", err)
	}
	return &page, nil
}

func (r *pageRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M, unsetParent bool) (*models.Page, error) {
	setDoc := make(bson.M, len(set)+1)
	for k, v := range set {
		setDoc[k] = v
	}
	setDoc["updated_at"] = time.Now()

	update := bson.M{"$set": setDoc}
	if unsetParent {
		update["$unset"] = bson.M{"parent": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var page models.Page
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, interfaces.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return &page, nil
}

func (r *pageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *pageRepository) List(ctx context.Context) ([]*models.Page, error) {
	return r.find(ctx, bson.M{})
}

func (r *pageRepository) ListActive(ctx context.Context) ([]*models.Page, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *pageRepository) find(ctx context.Context, filter bson.M) ([]*models.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer cursor.Close(ctx)

	pages := []*models.Page{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, fmt.Errorf("failed to decode pages: %w", err)
	}
	return pages, nil
}

func (r *pageRepository) DistinctParentIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	values, err := r.collection.Distinct(ctx, "parent", bson.M{"parent": bson.M{"$ne": nil}})
	if err != nil {
		return nil, fmt.Errorf("failed to collect parent ids: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
