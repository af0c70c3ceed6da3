package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// A zero Status is filled in as 400 by NewError.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process uploaded data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: File Errors
	ErrFileMissing:        {Code: ErrFileMissing, Message: "No file was provided."},
	ErrFileSizeTooLarge:   {Code: ErrFileSizeTooLarge, Message: "File is too large (max %d MB).", Status: http.StatusRequestEntityTooLarge},
	ErrFileTypeNotAllowed: {Code: ErrFileTypeNotAllowed, Message: "This file type is not allowed."},
	ErrFileKeyInvalid:     {Code: ErrFileKeyInvalid, Message: "Invalid file."},

	// 3xxx: Identity Errors
	ErrUnauthorized: {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown:             {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrFileStorageFailed:   {Code: ErrFileStorageFailed, Message: "File upload failed. Please try again.", Status: http.StatusBadGateway},
	ErrFileDeleteFailed:    {Code: ErrFileDeleteFailed, Message: "File could not be deleted. Please try again.", Status: http.StatusBadGateway},
	ErrURLGenerationFailed: {Code: ErrURLGenerationFailed, Message: "File link could not be created. Please try again.", Status: http.StatusBadGateway},
}
