package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/models"
	"govportal/internal/repositories/interfaces"
	"govportal/pkg/logger"
)

// PageService manages the two-level navigation hierarchy. Top-level pages
// have no parent; child pages reference a top-level page. Whether a
// top-level page is a grouping container is derived from the parent
// references, never stored.
type PageService interface {
	Create(ctx context.Context, request *PageRequest) (*models.Page, error)
	Update(ctx context.Context, id primitive.ObjectID, request *PageUpdateRequest) (*models.Page, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Page, error)
	List(ctx context.Context) ([]*models.Page, error)

	// Menu builds the public two-level navigation tree for lang.
	Menu(ctx context.Context, lang string) ([]*models.MenuItem, error)
	// MainPages lists active top-level pages localized for lang.
	MainPages(ctx context.Context, lang string) ([]*models.MenuItem, error)
	// AdditionalPages lists active child pages, each annotated with its
	// parent's resolved title.
	AdditionalPages(ctx context.Context, lang string) ([]*models.MenuItem, error)
	// MainLeafPages lists top-level pages that no other page references as
	// a parent, i.e. top-level content pages rather than grouping containers.
	MainLeafPages(ctx context.Context) ([]*models.Page, error)
	// ChildLeafPages lists child pages that are not themselves referenced
	// as a parent.
	ChildLeafPages(ctx context.Context) ([]*models.Page, error)
}

type PageRequest struct {
	Title    models.LocalizedText `json:"title" binding:"required"`
	Slug     string               `json:"slug" binding:"required"`
	Type     models.PageType      `json:"type" binding:"required"`
	Icon     string               `json:"icon"`
	Order    int                  `json:"order"`
	IsActive bool                 `json:"isActive"`
	Key      string               `json:"key"`
	Parent   string               `json:"parent"`
}

// PageUpdateRequest is a partial update; nil fields keep stored values.
// Parent set to the empty string detaches the page to top level.
type PageUpdateRequest struct {
	Title    *models.LocalizedText `json:"title"`
	Slug     *string               `json:"slug"`
	Type     *models.PageType      `json:"type"`
	Icon     *string               `json:"icon"`
	Order    *int                  `json:"order"`
	IsActive *bool                 `json:"isActive"`
	Key      *string               `json:"key"`
	Parent   *string               `json:"parent"`
}

type pageService struct {
	repo interfaces.PageRepository
	log  *logger.Logger
}

func NewPageService(repo interfaces.PageRepository, log *logger.Logger) PageService {
	return &pageService{
		repo: repo,
		log:  log.WithEntity("page"),
	}
}

func (s *pageService) Create(ctx context.Context, request *PageRequest) (*models.Page, error) {
	if !request.Type.Valid() {
		return nil, NewValidationError("invalid page type")
	}

	parent, err := s.resolveParent(ctx, request.Parent)
	if err != nil {
		return nil, err
	}

	page := &models.Page{
		Title:    request.Title,
		Slug:     request.Slug,
		Type:     request.Type,
		Icon:     request.Icon,
		Order:    request.Order,
		IsActive: request.IsActive,
		Key:      request.Key,
		Parent:   parent,
	}

	err = s.repo.Create(ctx, page)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	s.log.WithRecordID(page.ID).Info("page created")
	return page, nil
}

func (s *pageService) Update(ctx context.Context, id primitive.ObjectID, request *PageUpdateRequest) (*models.Page, error) {
	set := bson.M{}
	unsetParent := false

	if request.Title != nil {
		set["title"] = *request.Title
	}
	if request.Slug != nil {
		set["slug"] = *request.Slug
	}
	if request.Type != nil {
		if !request.Type.Valid() {
			return nil, NewValidationError("invalid page type")
		}
		set["type"] = *request.Type
	}
	if request.Icon != nil {
		set["icon"] = *request.Icon
	}
	if request.Order != nil {
		set["order"] = *request.Order
	}
	if request.IsActive != nil {
		set["is_active"] = *request.IsActive
	}
	if request.Key != nil {
		set["key"] = *request.Key
	}
	if request.Parent != nil {
		if *request.Parent == "" {
			unsetParent = true
		} else {
			parent, err := s.resolveParent(ctx, *request.Parent)
			if err != nil {
				return nil, err
			}
			// A page with children cannot itself become a child; the
			// hierarchy is exactly two levels.
			parentIDs, err := s.repo.DistinctParentIDs(ctx)
			if err != nil {
				return nil, err
			}
			for _, pid := range parentIDs {
				if pid == id {
					return nil, NewValidationError("page with children cannot have a parent")
				}
			}
			set["parent"] = *parent
		}
	}

	page, err := s.repo.Update(ctx, id, set, unsetParent)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	s.log.WithRecordID(id).Info("page updated")
	return page, nil
}

func (s *pageService) Delete(ctx context.Context, id primitive.ObjectID) error {
	parentIDs, err := s.repo.DistinctParentIDs(ctx)
	if err != nil {
		return err
	}
	for _, pid := range parentIDs {
		if pid == id {
			return NewValidationError("page has child pages")
		}
	}

	err = s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return err
	}

	s.log.WithRecordID(id).Info("page deleted")
	return nil
}

func (s *pageService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Page, error) {
	page, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *pageService) List(ctx context.Context) ([]*models.Page, error) {
	return s.repo.List(ctx)
}

func (s *pageService) Menu(ctx context.Context, lang string) ([]*models.MenuItem, error) {
	pages, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	topLevel, children := partition(pages)

	menu := make([]*models.MenuItem, 0, len(topLevel))
	for _, page := range topLevel {
		item := menuItem(page, lang)
		for _, child := range children {
			if child.Parent != nil && *child.Parent == page.ID {
				childItem := menuItem(child, lang)
				childItem.ParentTitle = page.Title.Resolve(lang)
				item.Children = append(item.Children, childItem)
			}
		}
		menu = append(menu, item)
	}

	return menu, nil
}

func (s *pageService) MainPages(ctx context.Context, lang string) ([]*models.MenuItem, error) {
	pages, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	topLevel, _ := partition(pages)

	items := make([]*models.MenuItem, 0, len(topLevel))
	for _, page := range topLevel {
		items = append(items, menuItem(page, lang))
	}
	return items, nil
}

func (s *pageService) AdditionalPages(ctx context.Context, lang string) ([]*models.MenuItem, error) {
	pages, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	topLevel, children := partition(pages)

	titles := make(map[primitive.ObjectID]string, len(topLevel))
	for _, page := range topLevel {
		titles[page.ID] = page.Title.Resolve(lang)
	}

	items := make([]*models.MenuItem, 0, len(children))
	for _, page := range children {
		item := menuItem(page, lang)
		if page.Parent != nil {
			item.ParentTitle = titles[*page.Parent]
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *pageService) MainLeafPages(ctx context.Context) ([]*models.Page, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	parents, err := s.parentSet(ctx)
	if err != nil {
		return nil, err
	}

	out := []*models.Page{}
	for _, page := range pages {
		if page.Parent == nil && !parents[page.ID] {
			out = append(out, page)
		}
	}
	return out, nil
}

func (s *pageService) ChildLeafPages(ctx context.Context) ([]*models.Page, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	parents, err := s.parentSet(ctx)
	if err != nil {
		return nil, err
	}

	out := []*models.Page{}
	for _, page := range pages {
		if page.Parent != nil && !parents[page.ID] {
			out = append(out, page)
		}
	}
	return out, nil
}

func (s *pageService) parentSet(ctx context.Context) (map[primitive.ObjectID]bool, error) {
	ids, err := s.repo.DistinctParentIDs(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// resolveParent validates a parent reference: it must exist and must be a
// top-level page, keeping the hierarchy at two levels.
func (s *pageService) resolveParent(ctx context.Context, hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, NewValidationError("invalid parent id")
	}

	parent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, NewValidationError("parent page not found")
		}
		return nil, err
	}
	if parent.Parent != nil {
		return nil, NewValidationError("parent page is itself a child")
	}

	return &id, nil
}

// partition splits pages into top-level and child lists, preserving the
// repository's order sort.
func partition(pages []*models.Page) (topLevel, children []*models.Page) {
	for _, page := range pages {
		if page.Parent == nil {
			topLevel = append(topLevel, page)
		} else {
			children = append(children, page)
		}
	}
	return topLevel, children
}

func menuItem(page *models.Page, lang string) *models.MenuItem {
	return &models.MenuItem{
		ID:       page.ID,
		Title:    page.Title.Resolve(lang),
		Slug:     page.Slug,
		Type:     page.Type,
		Icon:     page.Icon,
		Order:    page.Order,
		Key:      page.Key,
		Children: []*models.MenuItem{},
	}
}
