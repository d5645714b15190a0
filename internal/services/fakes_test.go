package services

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/models"
	"govportal/internal/repositories/interfaces"
	"govportal/pkg/storage"
)

// memContentRepo is an in-memory ContentRepository. Insert stamps each
// document with a strictly increasing creation time so recency ordering
// and active tie-breaks are deterministic in tests.
type memContentRepo struct {
	mu            sync.Mutex
	docs          map[primitive.ObjectID]bson.M
	order         []primitive.ObjectID
	clock         time.Time
	sortByRecency bool
}

func newMemContentRepo(sortByRecency bool) *memContentRepo {
	return &memContentRepo{
		docs:          map[primitive.ObjectID]bson.M{},
		clock:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		sortByRecency: sortByRecency,
	}
}

func (r *memContentRepo) Insert(ctx context.Context, fields bson.M) (bson.M, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clock = r.clock.Add(time.Second)

	doc := cloneDoc(fields)
	id := primitive.NewObjectID()
	doc["_id"] = id
	doc["created_at"] = r.clock
	doc["updated_at"] = r.clock

	r.docs[id] = doc
	r.order = append(r.order, id)
	return cloneDoc(doc), nil
}

func (r *memContentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return cloneDoc(doc), nil
}

func (r *memContentRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M, unset []string) (bson.M, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	for k, v := range set {
		doc[k] = v
	}
	for _, k := range unset {
		delete(doc, k)
	}
	doc["updated_at"] = time.Now()
	return cloneDoc(doc), nil
}

func (r *memContentRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memContentRepo) FindAll(ctx context.Context) ([]bson.M, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []bson.M{}
	if r.sortByRecency {
		for i := len(r.order) - 1; i >= 0; i-- {
			out = append(out, cloneDoc(r.docs[r.order[i]]))
		}
	} else {
		for _, id := range r.order {
			out = append(out, cloneDoc(r.docs[id]))
		}
	}
	return out, nil
}

func (r *memContentRepo) FindLatestActive(ctx context.Context) (bson.M, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest bson.M
	var latestAt time.Time
	for _, id := range r.order {
		doc := r.docs[id]
		active, _ := doc["is_active"].(bool)
		if !active {
			continue
		}
		createdAt, _ := doc["created_at"].(time.Time)
		if latest == nil || createdAt.After(latestAt) {
			latest = doc
			latestAt = createdAt
		}
	}
	if latest == nil {
		return nil, interfaces.ErrNotFound
	}
	return cloneDoc(latest), nil
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// memBlobStore is an in-memory storage.Provider.
type memBlobStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	modTime map[string]time.Time
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{
		files:   map[string][]byte{},
		modTime: map[string]time.Time{},
	}
}

func (b *memBlobStore) put(key, content string, modTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[key] = []byte(content)
	b.modTime[key] = modTime
}

func (b *memBlobStore) has(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.files[key]
	return ok
}

func (b *memBlobStore) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	data, err := io.ReadAll(request.Reader)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[request.Key] = data
	b.modTime[request.Key] = time.Now()

	return &storage.UploadResponse{Key: request.Key, Size: int64(len(data))}, nil
}

func (b *memBlobStore) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.files[key]; !ok {
		return storage.ErrNotExist
	}
	delete(b.files, key)
	delete(b.modTime, key)
	return nil
}

func (b *memBlobStore) URL(key string) string {
	return "http://blobs.test/" + key
}

func (b *memBlobStore) ListFiles(ctx context.Context, prefix string) ([]*storage.FileInfo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []*storage.FileInfo{}
	for key, data := range b.files {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		out = append(out, &storage.FileInfo{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: b.modTime[key],
		})
	}
	return out, nil
}

func (b *memBlobStore) FileExists(ctx context.Context, key string) (bool, error) {
	return b.has(key), nil
}

var _ storage.Provider = (*memBlobStore)(nil)
var _ interfaces.ContentRepository = (*memContentRepo)(nil)

// memPageRepo is an in-memory PageRepository.
type memPageRepo struct {
	mu    sync.Mutex
	pages map[primitive.ObjectID]*models.Page
	order []primitive.ObjectID
}

func newMemPageRepo() *memPageRepo {
	return &memPageRepo{pages: map[primitive.ObjectID]*models.Page{}}
}

func (r *memPageRepo) Create(ctx context.Context, page *models.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.pages {
		if existing.Slug == page.Slug {
			return interfaces.ErrDuplicate
		}
	}

	page.ID = primitive.NewObjectID()
	page.CreatedAt = time.Now()
	page.UpdatedAt = time.Now()
	clone := *page
	r.pages[page.ID] = &clone
	r.order = append(r.order, page.ID)
	return nil
}

func (r *memPageRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page, ok := r.pages[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	clone := *page
	return &clone, nil
}

func (r *memPageRepo) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, page := range r.pages {
		if page.Slug == slug {
			clone := *page
			return &clone, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *memPageRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M, unsetParent bool) (*models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page, ok := r.pages[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}

	if v, ok := set["title"].(models.LocalizedText); ok {
		page.Title = v
	}
	if v, ok := set["slug"].(string); ok {
		page.Slug = v
	}
	if v, ok := set["type"].(models.PageType); ok {
		page.Type = v
	}
	if v, ok := set["icon"].(string); ok {
		page.Icon = v
	}
	if v, ok := set["order"].(int); ok {
		page.Order = v
	}
	if v, ok := set["is_active"].(bool); ok {
		page.IsActive = v
	}
	if v, ok := set["key"].(string); ok {
		page.Key = v
	}
	if v, ok := set["parent"].(primitive.ObjectID); ok {
		page.Parent = &v
	}
	if unsetParent {
		page.Parent = nil
	}
	page.UpdatedAt = time.Now()

	clone := *page
	return &clone, nil
}

func (r *memPageRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.pages, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memPageRepo) List(ctx context.Context) ([]*models.Page, error) {
	return r.list(func(*models.Page) bool { return true }), nil
}

func (r *memPageRepo) ListActive(ctx context.Context) ([]*models.Page, error) {
	return r.list(func(p *models.Page) bool { return p.IsActive }), nil
}

func (r *memPageRepo) list(keep func(*models.Page) bool) []*models.Page {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*models.Page{}
	for _, id := range r.order {
		page := r.pages[id]
		if keep(page) {
			clone := *page
			out = append(out, &clone)
		}
	}
	// Sort by order ascending, stable on insertion order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Order > out[j].Order; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func (r *memPageRepo) DistinctParentIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[primitive.ObjectID]bool{}
	out := []primitive.ObjectID{}
	for _, page := range r.pages {
		if page.Parent != nil && !seen[*page.Parent] {
			seen[*page.Parent] = true
			out = append(out, *page.Parent)
		}
	}
	return out, nil
}

var _ interfaces.PageRepository = (*memPageRepo)(nil)

// memUserRepo is an in-memory UserRepository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return interfaces.ErrDuplicate
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

var _ interfaces.UserRepository = (*memUserRepo)(nil)

func testTime() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}
