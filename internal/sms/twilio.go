package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioProvider posts to the Messages endpoint using a messaging service
// sid, so the sender number is picked on Twilio's side.
type TwilioProvider struct {
	cfg    config.TwilioConfig
	client *http.Client
}

func NewTwilioProvider(cfg config.TwilioConfig) *TwilioProvider {
	return &TwilioProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type twilioResponse struct {
	SID     string `json:"sid"`
	Message string `json:"message"`
}

func (p *TwilioProvider) Send(ctx context.Context, toPhone, body string) (string, error) {
	if !p.cfg.Configured() {
		return "", fmt.Errorf("twilio credentials not configured")
	}

	base := p.cfg.BaseURL
	if base == "" {
		base = twilioAPIBase
	}
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(base, "/"), p.cfg.AccountSID)

	form := url.Values{}
	form.Set("To", toPhone)
	form.Set("MessagingServiceSid", p.cfg.MessagingServiceSID)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.cfg.AccountSID, p.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var out twilioResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil && res.StatusCode < 400 {
		return "", fmt.Errorf("twilio response decode: %w", err)
	}
	if res.StatusCode >= 400 {
		if out.Message != "" {
			return "", fmt.Errorf("twilio API error %d: %s", res.StatusCode, out.Message)
		}
		return "", fmt.Errorf("twilio API error %d", res.StatusCode)
	}

	return out.SID, nil
}
