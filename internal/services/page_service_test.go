package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/models"
	"govportal/pkg/logger"
)

func newTestPageService(t *testing.T) (PageService, *memPageRepo) {
	t.Helper()
	repo := newMemPageRepo()
	return NewPageService(repo, logger.Discard()), repo
}

func mustCreatePage(t *testing.T, svc PageService, request *PageRequest) *models.Page {
	t.Helper()
	page, err := svc.Create(context.Background(), request)
	require.NoError(t, err)
	return page
}

// seedMenuPages builds the canonical fixture: a grouping container with one
// child, plus one standalone top-level page.
//
//	bosh-sahifa (order 1)
//	hujjatlar   (order 2)
//	└── qarorlar (order 1)
func seedMenuPages(t *testing.T, svc PageService) (home, docs, decisions *models.Page) {
	t.Helper()
	home = mustCreatePage(t, svc, &PageRequest{
		Title:    models.LocalizedText{Uz: "Bosh sahifa", Ru: "Главная", En: "Home"},
		Slug:     "bosh-sahifa",
		Type:     models.PageTypeStatic,
		Order:    1,
		IsActive: true,
	})
	docs = mustCreatePage(t, svc, &PageRequest{
		Title:    models.LocalizedText{Uz: "Hujjatlar", Ru: "Документы", En: "Documents"},
		Slug:     "hujjatlar",
		Type:     models.PageTypeStatic,
		Order:    2,
		IsActive: true,
	})
	decisions = mustCreatePage(t, svc, &PageRequest{
		Title:    models.LocalizedText{Uz: "Qarorlar", Ru: "Решения", En: "Decisions"},
		Slug:     "qarorlar",
		Type:     models.PageTypeDocuments,
		Order:    1,
		IsActive: true,
		Parent:   docs.ID.Hex(),
	})
	return home, docs, decisions
}

func TestPageCreateRejectsInvalidType(t *testing.T) {
	svc, _ := newTestPageService(t)

	_, err := svc.Create(context.Background(), &PageRequest{
		Title: models.LocalizedText{Uz: "Sahifa"},
		Slug:  "sahifa",
		Type:  "landing",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPageCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTestPageService(t)

	mustCreatePage(t, svc, &PageRequest{
		Title: models.LocalizedText{Uz: "Birinchi"},
		Slug:  "sahifa",
		Type:  models.PageTypeStatic,
	})

	_, err := svc.Create(context.Background(), &PageRequest{
		Title: models.LocalizedText{Uz: "Ikkinchi"},
		Slug:  "sahifa",
		Type:  models.PageTypeStatic,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPageParentMustBeTopLevel(t *testing.T) {
	svc, _ := newTestPageService(t)
	_, _, decisions := seedMenuPages(t, svc)

	// A child page cannot be a parent: the hierarchy is two levels.
	_, err := svc.Create(context.Background(), &PageRequest{
		Title:  models.LocalizedText{Uz: "Chuqur sahifa"},
		Slug:   "chuqur",
		Type:   models.PageTypeStatic,
		Parent: decisions.ID.Hex(),
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPageParentMustExist(t *testing.T) {
	svc, _ := newTestPageService(t)

	_, err := svc.Create(context.Background(), &PageRequest{
		Title:  models.LocalizedText{Uz: "Yetim sahifa"},
		Slug:   "yetim",
		Type:   models.PageTypeStatic,
		Parent: primitive.NewObjectID().Hex(),
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.Create(context.Background(), &PageRequest{
		Title:  models.LocalizedText{Uz: "Buzilgan"},
		Slug:   "buzilgan",
		Type:   models.PageTypeStatic,
		Parent: "not-a-hex-id",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPageWithChildrenCannotBecomeChild(t *testing.T) {
	svc, _ := newTestPageService(t)
	home, docs, _ := seedMenuPages(t, svc)

	parent := home.ID.Hex()
	_, err := svc.Update(context.Background(), docs.ID, &PageUpdateRequest{Parent: &parent})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPageUpdateDetachesToTopLevel(t *testing.T) {
	svc, _ := newTestPageService(t)
	_, _, decisions := seedMenuPages(t, svc)

	empty := ""
	page, err := svc.Update(context.Background(), decisions.ID, &PageUpdateRequest{Parent: &empty})
	require.NoError(t, err)
	assert.Nil(t, page.Parent)
}

func TestPageDeleteRejectsParentsAndIsIdempotent(t *testing.T) {
	svc, _ := newTestPageService(t)
	home, docs, decisions := seedMenuPages(t, svc)
	ctx := context.Background()

	err := svc.Delete(ctx, docs.ID)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	require.NoError(t, svc.Delete(ctx, decisions.ID))
	require.NoError(t, svc.Delete(ctx, docs.ID))
	require.NoError(t, svc.Delete(ctx, home.ID))

	// Every page is gone; deleting again still succeeds.
	assert.NoError(t, svc.Delete(ctx, home.ID))
}

func TestMenuBuildsTwoLevelTree(t *testing.T) {
	svc, _ := newTestPageService(t)
	home, docs, decisions := seedMenuPages(t, svc)

	menu, err := svc.Menu(context.Background(), "ru")
	require.NoError(t, err)
	require.Len(t, menu, 2)

	assert.Equal(t, home.ID, menu[0].ID)
	assert.Equal(t, "Главная", menu[0].Title)
	assert.Empty(t, menu[0].Children)

	assert.Equal(t, docs.ID, menu[1].ID)
	assert.Equal(t, "Документы", menu[1].Title)
	require.Len(t, menu[1].Children, 1)
	assert.Equal(t, decisions.ID, menu[1].Children[0].ID)
	assert.Equal(t, "Решения", menu[1].Children[0].Title)
	assert.Equal(t, "Документы", menu[1].Children[0].ParentTitle)
}

func TestMenuSkipsInactivePages(t *testing.T) {
	svc, _ := newTestPageService(t)
	_, docs, decisions := seedMenuPages(t, svc)

	inactive := false
	_, err := svc.Update(context.Background(), decisions.ID, &PageUpdateRequest{IsActive: &inactive})
	require.NoError(t, err)

	menu, err := svc.Menu(context.Background(), "uz")
	require.NoError(t, err)
	require.Len(t, menu, 2)
	for _, item := range menu {
		if item.ID == docs.ID {
			assert.Empty(t, item.Children)
		}
	}
}

func TestMainAndAdditionalPages(t *testing.T) {
	svc, _ := newTestPageService(t)
	home, docs, decisions := seedMenuPages(t, svc)

	main, err := svc.MainPages(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, main, 2)
	assert.Equal(t, home.ID, main[0].ID)
	assert.Equal(t, docs.ID, main[1].ID)

	additional, err := svc.AdditionalPages(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, additional, 1)
	assert.Equal(t, decisions.ID, additional[0].ID)
	assert.Equal(t, "Documents", additional[0].ParentTitle)
}

func TestLeafPagePartitions(t *testing.T) {
	svc, _ := newTestPageService(t)
	home, docs, decisions := seedMenuPages(t, svc)

	// Top-level leaves: pages with no parent that nothing references.
	mainLeaves, err := svc.MainLeafPages(context.Background())
	require.NoError(t, err)
	require.Len(t, mainLeaves, 1)
	assert.Equal(t, home.ID, mainLeaves[0].ID)
	assert.NotEqual(t, docs.ID, mainLeaves[0].ID)

	// Child leaves: children that are not themselves parents.
	childLeaves, err := svc.ChildLeafPages(context.Background())
	require.NoError(t, err)
	require.Len(t, childLeaves, 1)
	assert.Equal(t, decisions.ID, childLeaves[0].ID)
}

func TestPageGetByIDMissing(t *testing.T) {
	svc, _ := newTestPageService(t)

	_, err := svc.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
