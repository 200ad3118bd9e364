package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upireceipts.in/app/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReceiptRouter(t *testing.T, store storage.Store) *gin.Engine {
	t.Helper()
	r := gin.New()
	h := NewReceiptHandler(discardLogger(), store)
	r.GET("/receipts/:name", h.Get)
	return r
}

func seededStore(t *testing.T, name string, data []byte) storage.Store {
	t.Helper()
	l := storage.NewLocal(t.TempDir())
	require.NoError(t, l.Save(context.Background(), name, data))
	return l
}

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReceiptHandler_FullBody(t *testing.T) {
	body := bytes.Repeat([]byte("a"), 1000)
	r := newReceiptRouter(t, seededStore(t, "receipt-T1.pdf", body))

	w := get(r, "/receipts/receipt-T1.pdf", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, w.Body.Bytes())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "bytes", w.Header().Get("Accept-Ranges"))
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
}

func TestReceiptHandler_Range(t *testing.T) {
	body := bytes.Repeat([]byte("a"), 1000)
	r := newReceiptRouter(t, seededStore(t, "receipt-T1.pdf", body))

	tests := []struct {
		name        string
		rangeHeader string
		wantLen     int
		wantContent string
	}{
		{"first hundred bytes", "bytes=0-99", 100, "bytes 0-99/1000"},
		{"open-ended tail", "bytes=900-", 100, "bytes 900-999/1000"},
		{"end clamped to size", "bytes=990-5000", 10, "bytes 990-999/1000"},
		{"single byte", "bytes=0-0", 1, "bytes 0-0/1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/receipts/receipt-T1.pdf", map[string]string{"Range": tt.rangeHeader})

			assert.Equal(t, http.StatusPartialContent, w.Code)
			assert.Equal(t, tt.wantContent, w.Header().Get("Content-Range"))
			assert.Len(t, w.Body.Bytes(), tt.wantLen)
		})
	}
}

func TestReceiptHandler_BadRanges(t *testing.T) {
	body := bytes.Repeat([]byte("a"), 1000)
	r := newReceiptRouter(t, seededStore(t, "receipt-T1.pdf", body))

	for _, rangeHeader := range []string{
		"bytes=0-99,200-299", // multi-range: rejected, not partially honored
		"bytes=-500",         // suffix form unsupported
		"bytes=abc-",
		"bytes=2000-", // start past EOF
		"bytes=99-0",  // inverted
		"items=0-99",  // wrong unit
	} {
		t.Run(rangeHeader, func(t *testing.T) {
			w := get(r, "/receipts/receipt-T1.pdf", map[string]string{"Range": rangeHeader})
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestReceiptHandler_NameValidation(t *testing.T) {
	r := newReceiptRouter(t, seededStore(t, "receipt-T1.pdf", []byte("x")))

	for _, name := range []string{
		"receipt-abc.pdf.exe",
		"receipt-..%2F..%2Fetc%2Fpasswd.pdf",
		"passwd",
		"receipt-T1.PDF",
	} {
		t.Run(name, func(t *testing.T) {
			w := get(r, "/receipts/"+name, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestReceiptHandler_NotFound(t *testing.T) {
	r := newReceiptRouter(t, storage.NewLocal(t.TempDir()))

	w := get(r, "/receipts/receipt-missing.pdf", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestParseByteRange(t *testing.T) {
	start, end, err := parseByteRange("bytes=10-19", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(10), start)
	assert.Equal(t, int64(19), end)

	start, end, err = parseByteRange("bytes=50-", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(50), start)
	assert.Equal(t, int64(99), end)

	_, _, err = parseByteRange("bytes=100-", 100)
	assert.Error(t, err)
}
