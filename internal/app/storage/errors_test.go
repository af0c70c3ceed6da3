package storage

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesKind(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("handler: %w", &Error{Kind: KindDeletion, Op: opDeleteFile, Key: "a", Err: cause})

	if !errors.Is(err, ErrDeletion) {
		t.Error("errors.Is should match the deletion sentinel")
	}
	if errors.Is(err, ErrUpload) {
		t.Error("errors.Is should not match another kind")
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable")
	}
	if KindOf(err) != KindDeletion {
		t.Errorf("KindOf = %s", KindOf(err))
	}
	if KindOf(cause) != 0 {
		t.Error("KindOf on a foreign error should be zero")
	}
}

func TestErrorMessagesAreCoarse(t *testing.T) {
	tests := map[Kind]string{
		KindInitialization: "storage initialization failed",
		KindUpload:         "upload failed",
		KindDeletion:       "delete failed",
		KindURLGeneration:  "url generation failed",
	}

	for kind, want := range tests {
		err := &Error{Kind: kind, Err: errors.New("NoSuchBucket: the bucket does not exist")}
		if err.Error() != want {
			t.Errorf("%s: Error() = %q, want %q", kind, err.Error(), want)
		}
	}
}
