package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/content"
	"govportal/internal/repositories/interfaces"
	"govportal/pkg/logger"
	"govportal/pkg/storage"
)

// ContentService is the generic engine behind every content entity type.
// One instance serves one descriptor; all of them share this contract.
type ContentService interface {
	Create(ctx context.Context, fields bson.M) (bson.M, error)
	// Update applies a partial field set. Media fields missing from fields
	// keep their stored value; a replaced single-media blob is deleted from
	// the blob store. removedPhotos lists multi-media keys to detach and
	// delete; new keys in fields under the list-media name are appended.
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M, removedPhotos []string) (bson.M, error)
	// Delete removes the record and, best-effort, every blob it references.
	// Deleting an id that no longer exists succeeds.
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListLocalized(ctx context.Context, lang string) ([]bson.M, error)
	ListRaw(ctx context.Context) ([]bson.M, error)
	// GetActive returns the newest active record localized for lang.
	GetActive(ctx context.Context, lang string) (bson.M, error)
	Descriptor() content.Descriptor
}

type contentService struct {
	desc  content.Descriptor
	repo  interfaces.ContentRepository
	blobs storage.Provider
	log   *logger.Logger
}

func NewContentService(desc content.Descriptor, repo interfaces.ContentRepository, blobs storage.Provider, log *logger.Logger) ContentService {
	return &contentService{
		desc:  desc,
		repo:  repo,
		blobs: blobs,
		log:   log.WithEntity(desc.Name),
	}
}

func (s *contentService) Descriptor() content.Descriptor {
	return s.desc
}

func (s *contentService) Create(ctx context.Context, fields bson.M) (bson.M, error) {
	doc := s.applyEnums(fields, true)

	for _, field := range s.desc.Required {
		value, ok := doc[field]
		if !ok {
			return nil, NewValidationError(fmt.Sprintf("%s is required", field))
		}
		if str, isStr := value.(string); isStr && str == "" {
			return nil, NewValidationError(fmt.Sprintf("%s is required", field))
		}
	}

	inserted, err := s.repo.Insert(ctx, doc)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	s.log.WithRecordID(inserted["_id"].(primitive.ObjectID)).Info("record created")
	return inserted, nil
}

func (s *contentService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M, removedPhotos []string) (bson.M, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	set := s.applyEnums(fields, false)

	// Single-media fields: replace deletes the superseded blob, absence
	// preserves the stored key.
	for _, media := range s.desc.SingleMedia {
		newValue, present := stringField(set, media.Name)
		oldValue, _ := stringField(existing, media.Name)

		switch resolveMediaChange(oldValue, newValue, present) {
		case mediaKeep:
			delete(set, media.Name)
		case mediaReplace:
			deleteBlob(ctx, s.blobs, s.log, oldValue)
		case mediaNoop:
			if newValue == oldValue {
				delete(set, media.Name)
			}
		}
	}

	// List-media: final list = (existing - removed) + appended. The
	// removed keys go to the blob store's trash; removedPhotos itself is
	// never persisted.
	if s.desc.ListMedia != nil {
		name := s.desc.ListMedia.Name
		appended, _ := stringListField(set, name)

		if len(removedPhotos) > 0 || len(appended) > 0 {
			current, _ := stringListField(existing, name)

			removed := make(map[string]bool, len(removedPhotos))
			for _, key := range removedPhotos {
				removed[key] = true
			}

			final := make([]string, 0, len(current)+len(appended))
			for _, key := range current {
				if removed[key] {
					deleteBlob(ctx, s.blobs, s.log, key)
					continue
				}
				final = append(final, key)
			}
			final = append(final, appended...)

			set[name] = final
		} else {
			delete(set, name)
		}
	}

	updated, err := s.repo.UpdateByID(ctx, id, set, nil)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, interfaces.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	s.log.WithRecordID(id).Info("record updated")
	return updated, nil
}

func (s *contentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			// Already gone. Deleting twice is not an error.
			return nil
		}
		return err
	}

	for _, media := range s.desc.SingleMedia {
		if key, _ := stringField(existing, media.Name); key != "" {
			deleteBlob(ctx, s.blobs, s.log, key)
		}
	}
	if s.desc.ListMedia != nil {
		keys, _ := stringListField(existing, s.desc.ListMedia.Name)
		for _, key := range keys {
			deleteBlob(ctx, s.blobs, s.log, key)
		}
	}

	err = s.repo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return err
	}

	s.log.WithRecordID(id).Info("record deleted")
	return nil
}

func (s *contentService) ListLocalized(ctx context.Context, lang string) ([]bson.M, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return content.LocalizeAll(docs, lang, s.desc.Localized), nil
}

func (s *contentService) ListRaw(ctx context.Context) ([]bson.M, error) {
	return s.repo.FindAll(ctx)
}

func (s *contentService) GetActive(ctx context.Context, lang string) (bson.M, error) {
	doc, err := s.repo.FindLatestActive(ctx)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return content.Localize(doc, lang, s.desc.Localized), nil
}

// applyEnums copies fields, forcing enum-constrained values into their
// allowed set. With fillDefaults, absent enum fields get their default;
// updates leave absent fields alone so stored values survive.
func (s *contentService) applyEnums(fields bson.M, fillDefaults bool) bson.M {
	out := make(bson.M, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	for field := range s.desc.Enums {
		candidate, present := stringField(out, field)
		if !present && !fillDefaults {
			continue
		}
		out[field] = s.desc.EnumValue(field, candidate)
	}
	return out
}

func stringField(doc bson.M, name string) (string, bool) {
	value, ok := doc[name]
	if !ok {
		return "", false
	}
	str, _ := value.(string)
	return str, true
}

func stringListField(doc bson.M, name string) ([]string, bool) {
	value, ok := doc[name]
	if !ok {
		return nil, false
	}

	switch list := value.(type) {
	case []string:
		return list, true
	case bson.A:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, isStr := item.(string); isStr {
				out = append(out, str)
			}
		}
		return out, true
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, isStr := item.(string); isStr {
				out = append(out, str)
			}
		}
		return out, true
	}
	return nil, false
}
