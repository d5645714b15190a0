package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/models"
)

type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M, unsetParent bool) (*models.Page, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// List returns every page ordered by the order field ascending.
	List(ctx context.Context) ([]*models.Page, error)
	// ListActive returns active pages ordered by the order field ascending.
	ListActive(ctx context.Context) ([]*models.Page, error)
	// DistinctParentIDs returns the set of ids referenced as a parent by
	// at least one page.
	DistinctParentIDs(ctx context.Context) ([]primitive.ObjectID, error)
}
