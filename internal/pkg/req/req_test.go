package req

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"aaelink/internal/pkg/errs"
)

type presignInput struct {
	FileName string `json:"fileName"`
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantCode    int
	}{
		{"valid", "application/json", `{"fileName":"a.png"}`, 0},
		{"charset suffix", "application/json; charset=utf-8", `{"fileName":"a.png"}`, 0},
		{"wrong media type", "text/plain", `{"fileName":"a.png"}`, errs.ErrUnsupportedMediaType},
		{"malformed", "application/json", `{"fileName":`, errs.ErrInvalidJSONFormat},
		{"unknown field", "application/json", `{"other":1}`, errs.ErrInvalidJSONFormat},
		{"trailing data", "application/json", `{"fileName":"a"}{"fileName":"b"}`, errs.ErrExtraContentInBody},
		{"too large", "application/json", `{"fileName":"` + strings.Repeat("x", int(MaxJSONBodySize)) + `"}`, errs.ErrRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.contentType)

			var in presignInput
			customErr := BindJSON(httptest.NewRecorder(), r, &in)

			if tt.wantCode == 0 {
				if customErr != nil {
					t.Fatalf("unexpected error: %v", customErr)
				}
				if in.FileName != "a.png" {
					t.Errorf("FileName = %q", in.FileName)
				}
				return
			}
			if customErr == nil || customErr.Code != tt.wantCode {
				t.Fatalf("got %v, want code %d", customErr, tt.wantCode)
			}
		})
	}
}

func multipartRequest(t *testing.T, field, fileName, contentType string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write(data)
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/api/files", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestReadFormFile(t *testing.T) {
	r := multipartRequest(t, "file", "greeting.txt", "text/plain", []byte("hello"))

	f, customErr := ReadFormFile(httptest.NewRecorder(), r, "file", 1<<20)
	if customErr != nil {
		t.Fatalf("unexpected error: %v", customErr)
	}
	if f.Name != "greeting.txt" || f.ContentType != "text/plain" || string(f.Data) != "hello" {
		t.Errorf("unexpected file: %+v", f)
	}
}

func TestReadFormFileMissingField(t *testing.T) {
	r := multipartRequest(t, "other", "greeting.txt", "text/plain", []byte("hello"))

	_, customErr := ReadFormFile(httptest.NewRecorder(), r, "file", 1<<20)
	if customErr == nil || customErr.Code != errs.ErrFileMissing {
		t.Fatalf("got %v, want ErrFileMissing", customErr)
	}
}

func TestReadFormFileTooLarge(t *testing.T) {
	r := multipartRequest(t, "file", "big.bin", "application/octet-stream", bytes.Repeat([]byte("a"), 2048))

	_, customErr := ReadFormFile(httptest.NewRecorder(), r, "file", 1024)
	if customErr == nil || customErr.Code != errs.ErrFileSizeTooLarge {
		t.Fatalf("got %v, want ErrFileSizeTooLarge", customErr)
	}
}

func TestReadFormFileNotMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/files", strings.NewReader("plain"))
	r.Header.Set("Content-Type", "text/plain")

	_, customErr := ReadFormFile(httptest.NewRecorder(), r, "file", 1024)
	if customErr == nil || customErr.Code != errs.ErrFormParseFailed {
		t.Fatalf("got %v, want ErrFormParseFailed", customErr)
	}
}
