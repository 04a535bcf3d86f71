package create

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monicarachel101026-prog/Nailora/internal/http/middlewarectx"
	"github.com/monicarachel101026-prog/Nailora/internal/migrations"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/services/community"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/repository"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newHandler(t *testing.T, maxValueBytes int) *Handler {
	t.Helper()
	store, err := kvstore.NewMemory(maxValueBytes)
	require.NoError(t, err)
	require.NoError(t, migrations.Run(store.DB))
	t.Cleanup(func() {
		_ = store.Close()
	})
	logger := newNoopLogger()
	return New(logger, community.New(repository.New(store), logger))
}

func doRequest(handler *Handler, body models.DummyPost) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(payload))
	ana := &models.User{ID: "u1", Name: "Ana", Avatar: "https://i.pravatar.cc/150?u=ana"}
	req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, ana))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateHandler_OversizedImage(t *testing.T) {
	handler := newHandler(t, 512)

	rec := doRequest(handler, models.DummyPost{
		Caption: "Hasil nail art hari ini",
		Image:   strings.Repeat("A", 4096),
	})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Error", resp.Status)
	assert.Equal(t, "storage quota exceeded", resp.Error)
}

func TestCreateHandler_Success(t *testing.T) {
	handler := newHandler(t, 0)

	rec := doRequest(handler, models.DummyPost{Caption: "Hasil nail art hari ini"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Post models.Post `json:"post"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "Ana", resp.Data.Post.UserName)
}
