package interfaces

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an id or filter resolves to no document.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when a unique index rejects a write.
var ErrDuplicate = errors.New("duplicate key")

// ContentRepository is the store access used by the generic content
// engine. One instance is bound to one collection.
type ContentRepository interface {
	Insert(ctx context.Context, fields bson.M) (bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	// UpdateByID applies $set for set and $unset for unset, returning the
	// updated document.
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M, unset []string) (bson.M, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]bson.M, error)
	// FindLatestActive returns the newest document with is_active=true.
	// Creation time is the tie-break when several records are active.
	FindLatestActive(ctx context.Context) (bson.M, error)
}
