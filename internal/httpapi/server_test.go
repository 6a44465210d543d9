package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Drakarta/Solide-Inc/internal/testutil"
	"github.com/Drakarta/Solide-Inc/repository"
)

// newTestRouter wires a full server against an in-memory database.
func newTestRouter(t *testing.T, name string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	d := testutil.OpenInMemoryDB(t, name)
	s := &Server{
		Users:   repository.NewUserRepository(d),
		Bottles: repository.NewBottleRepository(d),
		Water:   repository.NewWaterDataRepository(d),
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return NewRouter(s)
}

// do performs a request with the given form-encoded parameters in the query
// string and decodes the JSON response body.
func do(t *testing.T, r *gin.Engine, method, path string, params map[string]string) (int, map[string]any) {
	t.Helper()
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response body: %s", w.Body.String())
	return w.Code, body
}

// register is a shorthand used by tests that need an existing account.
func register(t *testing.T, r *gin.Engine, email, username, password string) {
	t.Helper()
	code, body := do(t, r, http.MethodPost, "/user/register", map[string]string{
		"email": email, "username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, code, "register %s: %v", email, body)
}

// login returns the user id for valid credentials.
func login(t *testing.T, r *gin.Engine, email, password string) int64 {
	t.Helper()
	code, body := do(t, r, http.MethodGet, "/user/login", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, code, "login %s: %v", email, body)
	id, ok := body["user"].(float64)
	require.True(t, ok, "login response missing user id: %v", body)
	return int64(id)
}
