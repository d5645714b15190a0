package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PageType string

const (
	PageTypeStatic    PageType = "static"
	PageTypeNews      PageType = "news"
	PageTypeGallery   PageType = "gallery"
	PageTypeDocuments PageType = "documents"
)

func (t PageType) Valid() bool {
	switch t {
	case PageTypeStatic, PageTypeNews, PageTypeGallery, PageTypeDocuments:
		return true
	}
	return false
}

// Page is a navigation node. The hierarchy is two levels deep: a page with
// a nil Parent is top-level, a page with a non-nil Parent is a child.
// Whether a top-level page is a grouping container is derived from the set
// of parent references, never stored.
type Page struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title     LocalizedText       `json:"title" bson:"title"`
	Slug      string              `json:"slug" bson:"slug" validate:"required"`
	Type      PageType            `json:"type" bson:"type" validate:"required"`
	Icon      string              `json:"icon" bson:"icon"`
	Order     int                 `json:"order" bson:"order"`
	IsActive  bool                `json:"isActive" bson:"is_active"`
	Key       string              `json:"key" bson:"key"`
	Parent    *primitive.ObjectID `json:"parent" bson:"parent"`
	CreatedAt time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time           `json:"updated_at" bson:"updated_at"`
}

// MenuItem is a page projected into one language for the public menu.
type MenuItem struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Type        PageType           `json:"type"`
	Icon        string             `json:"icon,omitempty"`
	Order       int                `json:"order"`
	Key         string             `json:"key,omitempty"`
	ParentTitle string             `json:"parentTitle,omitempty"`
	Children    []*MenuItem        `json:"children"`
}
