package utils

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

func IsImageFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedImageTypes)
}

func IsVideoFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedVideoTypes)
}

func IsDocumentFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedDocumentTypes)
}

// GenerateBlobKey produces the storage key an uploaded file is persisted
// under. Keys never reuse the client-supplied name.
func GenerateBlobKey(originalFilename string) string {
	return fmt.Sprintf("%s%s", uuid.NewString(), GetFileExtension(originalFilename))
}

func ContentTypeByName(filename string) string {
	if ct := mime.TypeByExtension(GetFileExtension(filename)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
