/*
Package req provides helper functions for HTTP request parsing and data binding.

It wraps JSON and multipart decoding with size limits and maps every failure to
an errs.CustomError that handlers can return directly.
*/
package req

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"aaelink/internal/pkg/errs"
)

const (
	// MaxFormMemory is the memory ParseMultipartForm may use before spilling file parts to disk.
	MaxFormMemory int64 = 8 << 20 // 8 MB

	// multipartOverhead is allowed on top of the file limit for boundaries and part headers.
	multipartOverhead int64 = 1 << 20 // 1 MB

	// MaxJSONBodySize bounds JSON request bodies.
	MaxJSONBodySize int64 = 64 << 10 // 64 KB
)

// FormFile is a file read from a multipart request.
type FormFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// BindJSON decodes the JSON request body into dst, rejecting unknown fields and trailing data.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if isTooLarge(err) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// ReadFormFile parses a multipart request and reads the file in field fully into memory.
// maxFileSize bounds the file; larger uploads yield ErrFileSizeTooLarge or ErrRequestEntityTooLarge.
func ReadFormFile(w http.ResponseWriter, r *http.Request, field string, maxFileSize int64) (*FormFile, *errs.CustomError) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(MaxFormMemory); err != nil {
		if isTooLarge(err) {
			return nil, errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return nil, errs.NewError(errs.ErrFormParseFailed)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errs.NewError(errs.ErrFileMissing)
		}
		return nil, errs.NewError(errs.ErrFormParseFailed)
	}
	defer file.Close()

	if header.Size > maxFileSize {
		return nil, errs.NewError(errs.ErrFileSizeTooLarge, (maxFileSize+(1<<20)-1)>>20)
	}

	data, err := readAllLimited(file, maxFileSize)
	if err != nil {
		return nil, errs.NewError(errs.ErrFormParseFailed)
	}

	return &FormFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readAllLimited(file multipart.File, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(file, limit))
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
