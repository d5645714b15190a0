package config

import (
	"time"
)

// UploadConfig carries the per-route upload policy limits. Content types
// are checked by extension in the handlers, sizes are checked before any
// byte reaches the blob store.
type UploadConfig struct {
	MaxImageSize    int64         `yaml:"max_image_size"`
	MaxDocumentSize int64         `yaml:"max_document_size"`
	MaxGallerySize  int64         `yaml:"max_gallery_size"`
	ReconcileEvery  time.Duration `yaml:"reconcile_every"`
	ReconcileGrace  time.Duration `yaml:"reconcile_grace"`
}

func loadUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxImageSize:    getEnvAsInt64("UPLOAD_MAX_IMAGE_SIZE", 10<<20),
		MaxDocumentSize: getEnvAsInt64("UPLOAD_MAX_DOCUMENT_SIZE", 10<<20),
		MaxGallerySize:  getEnvAsInt64("UPLOAD_MAX_GALLERY_SIZE", 200<<20),
		ReconcileEvery:  getEnvAsDuration("BLOB_RECONCILE_EVERY", 24*time.Hour),
		ReconcileGrace:  getEnvAsDuration("BLOB_RECONCILE_GRACE", 24*time.Hour),
	}
}
