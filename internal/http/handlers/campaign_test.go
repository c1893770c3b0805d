package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/http/handlers"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/sms"
)

type phoneList []string

func (p phoneList) ActivePhoneNumbers(ctx context.Context) ([]string, error) {
	return p, nil
}

func campaignRouter(dir sms.PhoneDirectory, provider sms.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := sms.NewCampaignService(dir, provider, nil, logger)
	r := gin.New()
	r.POST("/api/send-sms-campaign", handlers.NewCampaignHandler(svc).Send)
	return r
}

func TestCampaignSend_Accounting(t *testing.T) {
	mock := &sms.Mock{FailFor: map[string]bool{"+4522222222": true}}
	r := campaignRouter(phoneList{"+4511111111", "+4522222222"}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/send-sms-campaign",
		strings.NewReader(`{"message":"Summer sale!"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success       bool     `json:"success"`
		Sent          int      `json:"sent"`
		Failed        int      `json:"failed"`
		FailedNumbers []string `json:"failed_numbers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, 1, body.Sent)
	require.Equal(t, 1, body.Failed)
	require.Equal(t, []string{"+4522222222"}, body.FailedNumbers)
}

func TestCampaignSend_NoRecipients(t *testing.T) {
	r := campaignRouter(phoneList{}, &sms.Mock{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/send-sms-campaign",
		strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "No phone numbers found", body["error"])
}

func TestCampaignSend_EmptyBodyAllowed(t *testing.T) {
	mock := &sms.Mock{}
	r := campaignRouter(phoneList{"+4511111111"}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/send-sms-campaign", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"+4511111111"}, mock.Sent)
}
