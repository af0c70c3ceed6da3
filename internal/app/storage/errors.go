package storage

import "errors"

// Kind classifies a gateway failure by the operation that raised it, not by its cause.
type Kind int

const (
	KindInitialization Kind = iota + 1
	KindUpload
	KindDeletion
	KindURLGeneration
)

func (k Kind) String() string {
	switch k {
	case KindInitialization:
		return "initialization"
	case KindUpload:
		return "upload"
	case KindDeletion:
		return "deletion"
	case KindURLGeneration:
		return "url_generation"
	default:
		return "unknown"
	}
}

// message is the caller-facing text for a kind. It never includes backend detail.
func (k Kind) message() string {
	switch k {
	case KindInitialization:
		return "storage initialization failed"
	case KindUpload:
		return "upload failed"
	case KindDeletion:
		return "delete failed"
	case KindURLGeneration:
		return "url generation failed"
	default:
		return "storage operation failed"
	}
}

// Sentinels for errors.Is matching on kind.
var (
	ErrInitialization = &Error{Kind: KindInitialization}
	ErrUpload         = &Error{Kind: KindUpload}
	ErrDeletion       = &Error{Kind: KindDeletion}
	ErrURLGeneration  = &Error{Kind: KindURLGeneration}
)

// Error is returned by every StorageService operation.
// Error() yields only the coarse message; the backend cause stays reachable through Unwrap.
type Error struct {
	Kind Kind
	Op   string
	Key  string
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a gateway error, or zero if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
