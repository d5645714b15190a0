package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotExist is returned by Delete and GetFileInfo when the key is not
// present. Callers that clean up replaced media treat it as success.
var ErrNotExist = errors.New("storage: blob does not exist")

type Provider interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
	ListFiles(ctx context.Context, prefix string) ([]*FileInfo, error)
	FileExists(ctx context.Context, key string) (bool, error)
}

type UploadRequest struct {
	Key         string    `json:"key"`
	Reader      io.Reader `json:"-"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
}

type UploadResponse struct {
	Key      string `json:"key"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Location string `json:"location"`
}

type FileInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}
