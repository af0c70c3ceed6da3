/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally within
the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed indicates failure to parse multipart or URL-encoded form data.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: File Errors
const (
	// ErrFileMissing indicates that the multipart request carried no file field.
	ErrFileMissing = 2001

	// ErrFileSizeTooLarge indicates that the declared or actual file size exceeds the upload policy.
	ErrFileSizeTooLarge = 2002

	// ErrFileTypeNotAllowed indicates that the MIME type or extension is not accepted by the upload policy.
	ErrFileTypeNotAllowed = 2003

	// ErrFileKeyInvalid indicates that the object key is empty or outside the caller's prefix.
	ErrFileKeyInvalid = 2004
)

// 3xxx: Identity Errors
const (
	// ErrUnauthorized indicates that the request carried no valid identity.
	ErrUnauthorized = 3001
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrFileStorageFailed indicates that storing the file in object storage failed.
	ErrFileStorageFailed = 5101

	// ErrFileDeleteFailed indicates that removing the file from object storage failed.
	ErrFileDeleteFailed = 5102

	// ErrURLGenerationFailed indicates that a signed URL could not be produced.
	ErrURLGenerationFailed = 5103
)
