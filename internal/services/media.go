package services

import (
	"context"
	"errors"

	"govportal/pkg/logger"
	"govportal/pkg/storage"
)

// mediaAction is the outcome of comparing an existing single-media value
// with an incoming one.
type mediaAction int

const (
	// mediaKeep: no new value supplied, the stored key stays.
	mediaKeep mediaAction = iota
	// mediaReplace: a different key arrived, the old blob must go.
	mediaReplace
	// mediaNoop: the new key equals the old one, nothing to delete.
	mediaNoop
)

// resolveMediaChange decides what a single-media update does. hasNew is
// false when the caller did not send the field at all, which preserves the
// stored value; callers are never forced to resend an old key.
func resolveMediaChange(old, new string, hasNew bool) mediaAction {
	if !hasNew || new == "" {
		return mediaKeep
	}
	if old == "" || old == new {
		return mediaNoop
	}
	return mediaReplace
}

// deleteBlob removes a blob best-effort. A missing blob and a failed
// deletion are both logged and swallowed: a dangling file is a lesser harm
// than a failed content write, and the reconciler sweeps leftovers later.
func deleteBlob(ctx context.Context, blobs storage.Provider, log *logger.Logger, key string) {
	if key == "" {
		return
	}

	err := blobs.Delete(ctx, key)
	if err == nil {
		return
	}

	if errors.Is(err, storage.ErrNotExist) {
		log.WithBlobKey(key).Debug("blob already gone")
		return
	}
	log.WithBlobKey(key).WithError(err).Warn("blob cleanup failed")
}
