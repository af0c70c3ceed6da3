/*
Package handler provides the HTTP handlers and routing for the AAELink file service.

This file maps file requests onto the object storage gateway and translates gateway
failures into coded error responses without exposing backend detail.
*/
package handler

import (
	"net/http"
	"strconv"
	"time"

	"aaelink/internal/app/files"
	"aaelink/internal/app/storage"
	"aaelink/internal/pkg/auth/jwt"
	"aaelink/internal/pkg/errs"
	"aaelink/internal/pkg/randx"
	"aaelink/internal/pkg/req"
	"aaelink/internal/pkg/resp"
)

// MaxURLExpiry is the longest validity a client may request for a signed URL (the SigV4 limit).
const MaxURLExpiry = 7 * 24 * time.Hour

// FileFormField is the multipart field carrying the uploaded file.
const FileFormField = "file"

// PresignUploadInput defines the JSON input for a direct-to-storage upload.
type PresignUploadInput struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`

	// ExpiresIn is the URL validity in seconds; zero selects the default.
	ExpiresIn int64 `json:"expiresIn,omitempty"`
}

// storageError maps a gateway error to the response sent to the client.
func storageError(err error) *errs.CustomError {
	switch storage.KindOf(err) {
	case storage.KindUpload:
		return errs.NewError(errs.ErrFileStorageFailed)
	case storage.KindDeletion:
		return errs.NewError(errs.ErrFileDeleteFailed)
	case storage.KindURLGeneration:
		return errs.NewError(errs.ErrURLGenerationFailed)
	default:
		return errs.NewError(errs.ErrUnknown, err)
	}
}

// parseExpiry converts a seconds value into a duration. Zero means "use the gateway default".
func parseExpiry(seconds int64) (time.Duration, *errs.CustomError) {
	if seconds < 0 || seconds > int64(MaxURLExpiry/time.Second) {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}
	return time.Duration(seconds) * time.Second, nil
}

func parseExpiryQuery(r *http.Request) (time.Duration, *errs.CustomError) {
	raw := r.URL.Query().Get("expiresIn")
	if raw == "" {
		return 0, nil
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}
	return parseExpiry(seconds)
}

// accessibleKey reads the "k" query parameter and checks the caller may use it.
func accessibleKey(r *http.Request) (string, *errs.CustomError) {
	key := r.URL.Query().Get("k")
	if key == "" {
		return "", errs.NewError(errs.ErrInvalidParams)
	}
	if !files.CanAccessKey(jwt.GetPayloadFromContext(r), key) {
		return "", errs.NewError(errs.ErrFileKeyInvalid)
	}
	return key, nil
}

// HandleUploadFile stores a multipart file through the gateway and returns its key,
// a 24-hour download URL and the backend etag.
func HandleUploadFile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)

		file, customErr := req.ReadFormFile(w, r, FileFormField, files.MaxFileSize)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := files.ValidateFileSize(int64(len(file.Data))); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		contentType, customErr := files.ValidateFileType(file.Name, files.ContentTypeFor(file.Name, file.ContentType))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		fileKey := randx.ObjectKey(identity.ID, file.Name)

		result, err := deps.StorageService.UploadFile(r.Context(), file.Data, fileKey, contentType)
		if err != nil {
			resp.RespondError(w, r, storageError(err))
			return
		}

		resp.RespondCreated(w, r, map[string]any{
			"fileKey":  fileKey,
			"fileName": file.Name,
			"mimeType": contentType,
			"fileSize": len(file.Data),
			"url":      result.URL,
			"etag":     result.ETag,
		})
	}
}

// HandlePresignUploadURL returns a signed PUT URL for a direct upload together with
// the matching download URL.
func HandlePresignUploadURL(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)

		var input PresignUploadInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := files.ValidateFileSize(input.FileSize); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		contentType, customErr := files.ValidateFileType(input.FileName, input.MimeType)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		expires, customErr := parseExpiry(input.ExpiresIn)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		fileKey := randx.ObjectKey(identity.ID, input.FileName)

		pair, err := deps.StorageService.GenerateUploadURL(r.Context(), fileKey, contentType, expires)
		if err != nil {
			resp.RespondError(w, r, storageError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"fileKey":     fileKey,
			"fileName":    input.FileName,
			"mimeType":    contentType,
			"uploadUrl":   pair.UploadURL,
			"downloadUrl": pair.DownloadURL,
		})
	}
}

// HandleGetFileURL returns a signed download URL for an existing key.
func HandleGetFileURL(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileKey, customErr := accessibleKey(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		expires, customErr := parseExpiryQuery(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		url, err := deps.StorageService.GetFileURL(r.Context(), fileKey, expires)
		if err != nil {
			resp.RespondError(w, r, storageError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"fileKey": fileKey,
			"url":     url,
		})
	}
}

// HandleDownloadFile redirects to a freshly signed download URL.
func HandleDownloadFile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileKey, customErr := accessibleKey(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		url, err := deps.StorageService.GetFileURL(r.Context(), fileKey, storage.DefaultURLDuration)
		if err != nil {
			resp.RespondError(w, r, storageError(err))
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}

// HandleDeleteFile removes an object. Deleting a key that no longer exists succeeds.
func HandleDeleteFile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileKey, customErr := accessibleKey(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.StorageService.DeleteFile(r.Context(), fileKey); err != nil {
			resp.RespondError(w, r, storageError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"fileKey": fileKey})
	}
}
