package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileTypeChecks(t *testing.T) {
	assert.True(t, IsImageFile("photo.jpg"))
	assert.True(t, IsImageFile("PHOTO.PNG"))
	assert.False(t, IsImageFile("archive.zip"))
	assert.False(t, IsImageFile("noextension"))

	assert.True(t, IsVideoFile("clip.mp4"))
	assert.False(t, IsVideoFile("clip.jpg"))

	assert.True(t, IsDocumentFile("report.pdf"))
	assert.False(t, IsDocumentFile("report.exe"))
}

func TestGenerateBlobKey(t *testing.T) {
	key := GenerateBlobKey("Фото отчёт.JPG")

	// Client names never leak into the stored key, only the extension.
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotContains(t, key, "Фото")

	other := GenerateBlobKey("Фото отчёт.JPG")
	assert.NotEqual(t, key, other)
}

func TestContentTypeByName(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentTypeByName("doc.pdf"))
	assert.Equal(t, "application/octet-stream", ContentTypeByName("mystery.bin2"))
}
