package files

import (
	"testing"

	"aaelink/internal/pkg/auth/jwt"
	"aaelink/internal/pkg/errs"
)

func TestValidateFileSize(t *testing.T) {
	tests := []struct {
		size     int64
		wantCode int
	}{
		{0, errs.ErrInvalidParams},
		{-1, errs.ErrInvalidParams},
		{1, 0},
		{MaxFileSize, 0},
		{MaxFileSize + 1, errs.ErrFileSizeTooLarge},
	}

	for _, tt := range tests {
		err := ValidateFileSize(tt.size)
		switch {
		case tt.wantCode == 0 && err != nil:
			t.Errorf("size %d: unexpected error %v", tt.size, err)
		case tt.wantCode != 0 && (err == nil || err.Code != tt.wantCode):
			t.Errorf("size %d: got %v, want code %d", tt.size, err, tt.wantCode)
		}
	}
}

func TestValidateFileType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		mimeType string
		want     string
		wantErr  bool
	}{
		{"png", "a.png", "image/png", "image/png", false},
		{"upper case", "A.PNG", "IMAGE/PNG", "image/png", false},
		{"charset parameter", "notes.txt", "text/plain; charset=utf-8", "text/plain", false},
		{"mismatched ext", "a.png", "image/jpeg", "", true},
		{"disallowed type", "run.sh", "application/x-sh", "", true},
		{"no extension", "README", "text/plain", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFileType(tt.fileName, tt.mimeType)
			if tt.wantErr {
				if err == nil || err.Code != errs.ErrFileTypeNotAllowed {
					t.Fatalf("got %v, want ErrFileTypeNotAllowed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("content type = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := ContentTypeFor("a.pdf", ""); got != "application/pdf" {
		t.Errorf("empty declared: got %q", got)
	}
	if got := ContentTypeFor("a.pdf", "application/octet-stream"); got != "application/pdf" {
		t.Errorf("octet-stream declared: got %q", got)
	}
	if got := ContentTypeFor("a.pdf", "text/plain"); got != "text/plain" {
		t.Errorf("declared type should win: got %q", got)
	}
}

func TestCanAccessKey(t *testing.T) {
	member := &jwt.Payload{ID: "u1"}
	admin := &jwt.Payload{ID: "root", Role: jwt.RoleAdmin}

	tests := []struct {
		name     string
		identity *jwt.Payload
		key      string
		want     bool
	}{
		{"own key", member, "u1/abc.png", true},
		{"foreign key", member, "u2/abc.png", false},
		{"prefix only", member, "u1/", false},
		{"similar prefix", member, "u10/abc.png", false},
		{"traversal", member, "u1/../u2/abc.png", false},
		{"empty key", member, "", false},
		{"anonymous", nil, "u1/abc.png", false},
		{"admin", admin, "u2/abc.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessKey(tt.identity, tt.key); got != tt.want {
				t.Errorf("CanAccessKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
