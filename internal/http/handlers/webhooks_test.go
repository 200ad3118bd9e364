package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upireceipts.in/app/internal/modules/payments"
	"upireceipts.in/app/internal/modules/receipts"
	"upireceipts.in/app/internal/notify"
	"upireceipts.in/app/internal/shared/apperr"
	"upireceipts.in/app/internal/storage"
)

type mapLookup map[string]*payments.Record

func (m mapLookup) FindCompleted(ctx context.Context, id string) (*payments.Record, error) {
	if rec, ok := m[id]; ok {
		return rec, nil
	}
	return nil, apperr.NotFoundErr("No completed payment found for this transaction ID.")
}

func newWebhookRouter(t *testing.T, lookup payments.Lookup, mock *notify.Mock) *gin.Engine {
	t.Helper()

	pipeline := receipts.NewPipeline(receipts.PipelineConfig{
		Lookup:     lookup,
		Store:      storage.NewLocal(t.TempDir()),
		Dispatcher: mock,
		Logger:     discardLogger(),
		BaseURL:    "http://receipts.test",
	})

	r := gin.New()
	h := NewWebhookHandler(discardLogger(), pipeline)
	r.POST("/webhooks/chat", h.Handle)
	return r
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/chat", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_Success(t *testing.T) {
	mock := &notify.Mock{}
	r := newWebhookRouter(t, mapLookup{
		"T1": {TransactionID: "T1", Done: true, Name: "Asha", Amount: 500},
	}, mock)

	w := postForm(r, url.Values{"From": {"addr1"}, "Body": {"Transaction ID: T1"}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		PDFURL  string `json:"pdfUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "http://receipts.test/receipts/receipt-T1.pdf", resp.PDFURL)

	sent := mock.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "addr1", sent[0].To)
}

func TestWebhookHandler_NotFound(t *testing.T) {
	mock := &notify.Mock{}
	r := newWebhookRouter(t, mapLookup{}, mock)

	w := postForm(r, url.Values{"From": {"addr1"}, "Body": {"Transaction ID: T1"}})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	// Fallback notice went to the original sender
	sent := mock.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "addr1", sent[0].To)
	assert.Empty(t, sent[0].MediaURLs)
}

func TestWebhookHandler_InvalidFormat(t *testing.T) {
	mock := &notify.Mock{}
	r := newWebhookRouter(t, mapLookup{}, mock)

	w := postForm(r, url.Values{"From": {"addr1"}, "Body": {"no marker"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, mock.Messages(), 1)
}

func TestWebhookHandler_MissingFields(t *testing.T) {
	mock := &notify.Mock{}
	r := newWebhookRouter(t, mapLookup{}, mock)

	w := postForm(r, url.Values{"From": {"addr1"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Bind failure never reaches the pipeline, so no fallback is sent
	assert.Empty(t, mock.Messages())
}
