package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"govportal/internal/config"
	"govportal/internal/content"
	"govportal/internal/services"
	"govportal/internal/utils"
	"govportal/pkg/logger"
	"govportal/pkg/storage"
)

// ContentHandler is the HTTP face of the generic content engine. One
// instance serves one entity type; uploads are validated and stored here,
// so the service only ever sees blob keys.
type ContentHandler struct {
	service services.ContentService
	blobs   storage.Provider
	uploads *config.UploadConfig
	log     *logger.Logger
}

func NewContentHandler(service services.ContentService, blobs storage.Provider, uploads *config.UploadConfig, log *logger.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		blobs:   blobs,
		uploads: uploads,
		log:     log.WithEntity(service.Descriptor().Name),
	}
}

// Descriptor exposes the served entity's configuration for route setup.
func (h *ContentHandler) Descriptor() content.Descriptor {
	return h.service.Descriptor()
}

func (h *ContentHandler) Create(c *gin.Context) {
	fields, _, err := h.parseRequest(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	desc := h.service.Descriptor()

	doc, err := h.service.Create(c.Request.Context(), fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, desc.Singular+" created", desc.Singular, doc)
}

func (h *ContentHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return
	}

	fields, removedPhotos, err := h.parseRequest(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	desc := h.service.Descriptor()

	doc, err := h.service.Update(c.Request.Context(), id, fields, removedPhotos)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, desc.Singular+" updated", desc.Singular, doc)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return
	}

	desc := h.service.Descriptor()

	err = h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, desc.Singular+" deleted", "", nil)
}

// GetAllLocalized serves GET /api/<entity>/getAll/:lang with every record
// projected into one language.
func (h *ContentHandler) GetAllLocalized(c *gin.Context) {
	desc := h.service.Descriptor()

	docs, err := h.service.ListLocalized(c.Request.Context(), c.Param("lang"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(docs) == 0 {
		utils.EmptyListResponse(c, "no "+desc.Plural+" found", desc.Plural)
		return
	}

	utils.SuccessResponse(c, desc.Plural+" retrieved", desc.Plural, docs)
}

// GetAllRaw serves GET /api/<entity>/getAll with all three language
// variants intact, for the admin editing UI.
func (h *ContentHandler) GetAllRaw(c *gin.Context) {
	desc := h.service.Descriptor()

	docs, err := h.service.ListRaw(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(docs) == 0 {
		utils.EmptyListResponse(c, "no "+desc.Plural+" found", desc.Plural)
		return
	}

	utils.SuccessResponse(c, desc.Plural+" retrieved", desc.Plural, docs)
}

func (h *ContentHandler) GetActive(c *gin.Context) {
	desc := h.service.Descriptor()

	doc, err := h.service.GetActive(c.Request.Context(), c.Param("lang"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, desc.Singular+" retrieved", desc.Singular, doc)
}

func (h *ContentHandler) respondError(c *gin.Context, err error) {
	desc := h.service.Descriptor()

	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, desc.Singular)
	case services.IsValidation(err), errors.Is(err, services.ErrDuplicate):
		utils.BadRequestResponse(c, err.Error())
	default:
		h.log.WithError(err).Error("content operation failed")
		utils.InternalServerErrorResponse(c)
	}
}

// parseRequest turns a multipart or JSON request into the stored field
// set. Files are validated against the descriptor's upload policy and
// persisted to the blob store; only their keys enter the field set.
func (h *ContentHandler) parseRequest(c *gin.Context) (bson.M, []string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return h.parseMultipart(c)
	}
	return h.parseJSON(c)
}

func (h *ContentHandler) parseMultipart(c *gin.Context) (bson.M, []string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	desc := h.service.Descriptor()
	fields := bson.M{}

	for key, values := range form.Value {
		if len(values) == 0 || !desc.AllowedField(key) {
			continue
		}
		value, err := coerceValue(desc, key, values[0])
		if err != nil {
			return nil, nil, err
		}
		fields[key] = value
	}

	removedPhotos := parseRemovedPhotos(form.Value["removedPhotos"])

	// Validate every file before storing any, so a rejected upload never
	// leaves partial blobs behind.
	for _, media := range desc.SingleMedia {
		headers := form.File[media.Name]
		if len(headers) == 0 {
			continue
		}
		if err := h.checkUpload(headers[0], media.Kind); err != nil {
			return nil, nil, err
		}
	}
	if desc.ListMedia != nil {
		for _, header := range form.File[desc.ListMedia.Name] {
			if err := h.checkUpload(header, desc.ListMedia.Kind); err != nil {
				return nil, nil, err
			}
		}
	}

	for _, media := range desc.SingleMedia {
		headers := form.File[media.Name]
		if len(headers) == 0 {
			continue
		}
		key, err := h.storeUpload(c, headers[0])
		if err != nil {
			return nil, nil, err
		}
		fields[media.Name] = key
	}

	if desc.ListMedia != nil {
		headers := form.File[desc.ListMedia.Name]
		if len(headers) > 0 {
			keys := make([]string, 0, len(headers))
			for _, header := range headers {
				key, err := h.storeUpload(c, header)
				if err != nil {
					return nil, nil, err
				}
				keys = append(keys, key)
			}
			fields[desc.ListMedia.Name] = keys
		}
	}

	return fields, removedPhotos, nil
}

func (h *ContentHandler) parseJSON(c *gin.Context) (bson.M, []string, error) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, nil, fmt.Errorf("invalid request body: %w", err)
	}

	desc := h.service.Descriptor()
	fields := bson.M{}
	var removedPhotos []string

	for key, value := range body {
		if key == "removedPhotos" {
			if list, ok := value.([]interface{}); ok {
				for _, item := range list {
					if str, isStr := item.(string); isStr {
						removedPhotos = append(removedPhotos, str)
					}
				}
			}
			continue
		}
		if !desc.AllowedField(key) {
			continue
		}
		fields[key] = value
	}

	return fields, removedPhotos, nil
}

func (h *ContentHandler) checkUpload(header *multipart.FileHeader, kind content.MediaKind) error {
	var allowed bool
	var maxSize int64

	switch kind {
	case content.MediaImage:
		allowed = utils.IsImageFile(header.Filename)
		maxSize = h.uploads.MaxImageSize
	case content.MediaImageVideo:
		allowed = utils.IsImageFile(header.Filename) || utils.IsVideoFile(header.Filename)
		maxSize = h.uploads.MaxGallerySize
	case content.MediaDocument:
		allowed = utils.IsDocumentFile(header.Filename)
		maxSize = h.uploads.MaxDocumentSize
	}

	if !allowed {
		return fmt.Errorf("%s: file type not allowed", header.Filename)
	}
	if header.Size > maxSize {
		return fmt.Errorf("%s: file exceeds size limit", header.Filename)
	}
	return nil
}

func (h *ContentHandler) storeUpload(c *gin.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	defer file.Close()

	key := utils.GenerateBlobKey(header.Filename)

	_, err = h.blobs.Upload(c.Request.Context(), &storage.UploadRequest{
		Key:         key,
		Reader:      file,
		ContentType: utils.ContentTypeByName(header.Filename),
		Size:        header.Size,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return key, nil
}

func coerceValue(desc content.Descriptor, key, raw string) (interface{}, error) {
	for _, boolField := range desc.Bools {
		if key == boolField {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%s must be a boolean", key)
			}
			return value, nil
		}
	}
	if desc.HasActiveFlag && key == "is_active" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a boolean", key)
		}
		return value, nil
	}
	for _, intField := range desc.Ints {
		if key == intField {
			value, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%s must be an integer", key)
			}
			return value, nil
		}
	}
	return raw, nil
}

// parseRemovedPhotos accepts either repeated form entries or one JSON
// array value.
func parseRemovedPhotos(values []string) []string {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var list []string
		if err := json.Unmarshal([]byte(values[0]), &list); err == nil {
			return list
		}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
