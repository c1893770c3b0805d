package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/handlers"
)

func mailConfigRouter(cfg config.SendGridConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/check-sendgrid-config", handlers.NewMailConfigHandler(cfg).Check)
	return r
}

func TestMailConfigCheck_NotConfigured(t *testing.T) {
	r := mailConfigRouter(config.SendGridConfig{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/check-sendgrid-config", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["configured"])
	require.Equal(t, false, body["hasApiKey"])
	require.Equal(t, false, body["hasFromEmail"])
}

func TestMailConfigCheck_PartiallyConfigured(t *testing.T) {
	r := mailConfigRouter(config.SendGridConfig{APIKey: "SG.xxx"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/check-sendgrid-config", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["configured"])
	require.Equal(t, true, body["hasApiKey"])
	require.Equal(t, false, body["hasFromEmail"])
}

func TestMailConfigCheck_Configured(t *testing.T) {
	r := mailConfigRouter(config.SendGridConfig{
		APIKey:    "SG.xxx",
		FromEmail: "noreply@smartbuy.test",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/check-sendgrid-config", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["configured"])
	require.Equal(t, true, body["hasApiKey"])
	require.Equal(t, true, body["hasFromEmail"])
}
