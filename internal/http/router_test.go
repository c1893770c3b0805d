package apphttp_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apphttp "github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
)

func testRouter() http.Handler {
	return apphttp.NewRouter(apphttp.Deps{
		Config: config.Config{JWTSecret: "test-secret"},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestRouter_Healthz(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := testRouter()

	for _, method := range []string{http.MethodDelete, http.MethodPut, http.MethodPatch} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, "/api/check-sendgrid-config", nil))

		require.Equal(t, http.StatusMethodNotAllowed, w.Code, method)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, "Method not allowed", body["error"])
	}
}

func TestRouter_NotFound(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AdminRoutesNeedAuth(t *testing.T) {
	r := testRouter()

	for _, path := range []string{"/api/orders", "/api/tickets", "/api/dashboard/stats"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
