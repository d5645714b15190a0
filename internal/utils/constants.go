package utils

import "time"

// Application Constants
const (
	AppName    = "govportal"
	AppVersion = "1.0.0"

	// Languages
	LanguageUz      = "uz"
	LanguageRu      = "ru"
	LanguageEn      = "en"
	DefaultLanguage = LanguageUz

	// Authentication
	JWTTokenTTL       = 24 * time.Hour
	PasswordMinLength = 6

	// File Upload
	MaxImageSize    = 10 * 1024 * 1024  // 10MB
	MaxDocumentSize = 10 * 1024 * 1024  // 10MB
	MaxGallerySize  = 200 * 1024 * 1024 // 200MB, image+video galleries
)

// Allowed upload extensions, without the leading dot.
var (
	AllowedImageTypes    = []string{"jpg", "jpeg", "png", "gif", "webp", "svg"}
	AllowedVideoTypes    = []string{"mp4", "webm", "mov"}
	AllowedDocumentTypes = []string{"pdf", "doc", "docx", "ppt", "pptx"}
)

// Error Messages
const (
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgUserExists         = "user already exists"
	ErrMsgInvalidToken       = "invalid token"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgInternalServer     = "internal server error"
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgNotFound           = "not found"
	ErrMsgValidationFailed   = "validation failed"
	ErrMsgUploadRejected     = "upload rejected"
)
