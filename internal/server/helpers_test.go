package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ia-admin/internal/config"
	"ia-admin/internal/database"
	"ia-admin/internal/handlers"
	"ia-admin/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestAPI builds the router over a fresh seeded sqlite database.
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()

	lg := logging.New(logging.Config{Level: slog.LevelError, Output: io.Discard})

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "api.db"), slog.LevelError, lg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	catalog, err := database.LoadCatalog("")
	require.NoError(t, err)
	_, err = database.SeedCatalog(db, catalog)
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, handlers.Setup(lg, "pass"))

	return NewRouter(&config.Config{GinMode: gin.TestMode}, lg)
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func detail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rr)["detail"]
}

// mustCreate posts body and returns the created row.
func mustCreate(t *testing.T, r http.Handler, path string, body any) map[string]any {
	t.Helper()
	rr := do(t, r, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[map[string]any](t, rr)
}
