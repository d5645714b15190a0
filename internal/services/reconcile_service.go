package services

import (
	"context"
	"errors"
	"time"

	"govportal/internal/repositories/interfaces"
	"govportal/pkg/logger"
	"govportal/pkg/storage"
)

// ReconcileService closes the gap left by fire-and-forget blob cleanup:
// a blob whose deletion failed during an update or delete stays on disk
// with nothing referencing it. The sweep lists the blob store, collects
// every media reference from every content collection, and removes blobs
// that nothing references and that are older than the grace period. The
// grace period keeps a freshly uploaded blob alive between the upload and
// the document write that will reference it.
type ReconcileService interface {
	Sweep(ctx context.Context) (int, error)
	Run(ctx context.Context, every time.Duration)
}

type reconcileService struct {
	repos map[string]interfaces.ContentRepository
	media map[string][]string // collection -> media field names
	blobs storage.Provider
	grace time.Duration
	log   *logger.Logger
}

func NewReconcileService(repos map[string]interfaces.ContentRepository, media map[string][]string, blobs storage.Provider, grace time.Duration, log *logger.Logger) ReconcileService {
	return &reconcileService{
		repos: repos,
		media: media,
		blobs: blobs,
		grace: grace,
		log:   log.WithField("component", "blob_reconciler"),
	}
}

func (s *reconcileService) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.Sweep(ctx)
			if err != nil {
				s.log.WithError(err).Error("blob sweep failed")
				continue
			}
			if removed > 0 {
				s.log.WithField("removed", removed).Info("orphaned blobs removed")
			}
		}
	}
}

func (s *reconcileService) Sweep(ctx context.Context) (int, error) {
	referenced, err := s.referencedKeys(ctx)
	if err != nil {
		return 0, err
	}

	files, err := s.blobs.ListFiles(ctx, "")
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-s.grace)
	removed := 0
	for _, file := range files {
		if referenced[file.Key] {
			continue
		}
		if file.LastModified.After(cutoff) {
			continue
		}

		err := s.blobs.Delete(ctx, file.Key)
		if err != nil && !errors.Is(err, storage.ErrNotExist) {
			s.log.WithBlobKey(file.Key).WithError(err).Warn("failed to remove orphaned blob")
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *reconcileService) referencedKeys(ctx context.Context) (map[string]bool, error) {
	referenced := make(map[string]bool)

	for name, repo := range s.repos {
		fields := s.media[name]
		if len(fields) == 0 {
			continue
		}

		docs, err := repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		for _, doc := range docs {
			for _, field := range fields {
				if key, _ := stringField(doc, field); key != "" {
					referenced[key] = true
				}
				if keys, ok := stringListField(doc, field); ok {
					for _, key := range keys {
						referenced[key] = true
					}
				}
			}
		}
	}

	return referenced, nil
}
