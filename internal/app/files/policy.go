/*
Package files holds the upload policy applied by the HTTP layer before anything reaches
object storage: size limits, accepted content types, and key ownership rules.
*/
package files

import (
	"mime"
	"path/filepath"
	"strings"

	"aaelink/internal/pkg/auth/jwt"
	"aaelink/internal/pkg/errs"
	"aaelink/internal/pkg/randx"
)

const (
	// MaxFileSizeMB is the maximum allowed file size in megabytes.
	MaxFileSizeMB = 25

	// MaxFileSize is the maximum allowed file size in bytes.
	MaxFileSize = MaxFileSizeMB * 1024 * 1024
)

// AllowedMIMETypes is the set of content types users may share.
var AllowedMIMETypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"image/webp":         {},
	"image/gif":          {},
	"application/pdf":    {},
	"application/zip":    {},
	"text/plain":         {},
	"text/csv":           {},
	"application/msword": {},

	"application/vnd.ms-excel": {},

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
}

// ExtToMIME maps file extensions to the content type they must be uploaded with.
var ExtToMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// ValidateFileSize checks that fileSize is positive and within MaxFileSize.
func ValidateFileSize(fileSize int64) *errs.CustomError {
	if fileSize <= 0 {
		return errs.NewError(errs.ErrInvalidParams)
	}

	if fileSize > MaxFileSize {
		return errs.NewError(errs.ErrFileSizeTooLarge, MaxFileSizeMB)
	}

	return nil
}

// NormalizeMIMEType lower-cases mimeType and strips parameters such as "; charset=utf-8".
func NormalizeMIMEType(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(mimeType))
	}
	return mediaType
}

// ValidateFileType checks that mimeType is allowed and agrees with fileName's extension.
// It returns the normalized content type to store the object with.
func ValidateFileType(fileName string, mimeType string) (string, *errs.CustomError) {
	normalized := NormalizeMIMEType(mimeType)

	if _, ok := AllowedMIMETypes[normalized]; !ok {
		return "", errs.NewError(errs.ErrFileTypeNotAllowed)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	expectedMIME, ok := ExtToMIME[ext]
	if !ok || expectedMIME != normalized {
		return "", errs.NewError(errs.ErrFileTypeNotAllowed)
	}

	return normalized, nil
}

// ContentTypeFor picks the content type for an uploaded file: the declared type when
// present, otherwise the one implied by the extension.
func ContentTypeFor(fileName, declared string) string {
	if declared != "" && NormalizeMIMEType(declared) != "application/octet-stream" {
		return declared
	}
	return ExtToMIME[strings.ToLower(filepath.Ext(fileName))]
}

// CanAccessKey reports whether the identity may read or delete key.
// Admins may access any key; everyone else only keys under their own prefix.
func CanAccessKey(identity *jwt.Payload, key string) bool {
	if identity == nil || key == "" {
		return false
	}
	if identity.IsAdmin() {
		return true
	}

	prefix := randx.OwnerPrefix(identity.ID)
	return strings.HasPrefix(key, prefix) && len(key) > len(prefix) && !strings.Contains(key, "..")
}
