package handlers_test

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/content"
	"govportal/pkg/storage"
)

// mockContentService records service calls so handler tests can assert on
// the parsed field sets without a database behind them.
type mockContentService struct {
	mock.Mock
	desc content.Descriptor
}

func (m *mockContentService) Create(ctx context.Context, fields bson.M) (bson.M, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *mockContentService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M, removedPhotos []string) (bson.M, error) {
	args := m.Called(ctx, id, fields, removedPhotos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *mockContentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContentService) ListLocalized(ctx context.Context, lang string) ([]bson.M, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *mockContentService) ListRaw(ctx context.Context) ([]bson.M, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *mockContentService) GetActive(ctx context.Context, lang string) (bson.M, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *mockContentService) Descriptor() content.Descriptor {
	return m.desc
}

// stubBlobStore keeps uploads in memory and remembers their keys in order.
type stubBlobStore struct {
	mu   sync.Mutex
	keys []string
	data map[string][]byte
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{data: map[string][]byte{}}
}

func (b *stubBlobStore) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	body, err := io.ReadAll(request.Reader)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys = append(b.keys, request.Key)
	b.data[request.Key] = body

	return &storage.UploadResponse{Key: request.Key, Size: int64(len(body))}, nil
}

func (b *stubBlobStore) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.data[key]; !ok {
		return storage.ErrNotExist
	}
	delete(b.data, key)
	return nil
}

func (b *stubBlobStore) URL(key string) string {
	return "http://blobs.test/" + key
}

func (b *stubBlobStore) ListFiles(ctx context.Context, prefix string) ([]*storage.FileInfo, error) {
	return nil, nil
}

func (b *stubBlobStore) FileExists(ctx context.Context, key string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.data[key]
	return ok, nil
}

func (b *stubBlobStore) uploadedKeys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string{}, b.keys...)
}
