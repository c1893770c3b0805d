package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
)

const sendGridURL = "https://api.sendgrid.com/v3/mail/send"

type SendGrid struct {
	cfg    config.SendGridConfig
	apiURL string
	client *http.Client
}

func NewSendGrid(cfg config.SendGridConfig) *SendGrid {
	return &SendGrid{
		cfg:    cfg,
		apiURL: sendGridURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgPersonalization struct {
	To  []sgAddress `json:"to"`
	Cc  []sgAddress `json:"cc,omitempty"`
	Bcc []sgAddress `json:"bcc,omitempty"`
}

type sgPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

func (s *SendGrid) Send(ctx context.Context, e Email) error {
	if !s.cfg.Configured() {
		return fmt.Errorf("sendgrid credentials not configured")
	}
	if len(e.To) == 0 {
		return fmt.Errorf("mailer: at least one recipient required")
	}

	from := e.From
	if from == "" {
		from = s.cfg.FromEmail
	}

	p := sgPersonalization{To: addresses(e.To)}
	p.Cc = addresses(e.Cc)
	p.Bcc = addresses(e.Bcc)

	payload := sgPayload{
		Personalizations: []sgPersonalization{p},
		From:             sgAddress{Email: from, Name: e.FromName},
		Subject:          e.Subject,
	}
	// SendGrid requires text/plain before text/html
	if e.TextBody != "" {
		payload.Content = append(payload.Content, sgContent{Type: "text/plain", Value: e.TextBody})
	}
	if e.HTMLBody != "" {
		payload.Content = append(payload.Content, sgContent{Type: "text/html", Value: e.HTMLBody})
	}
	if len(payload.Content) == 0 {
		return fmt.Errorf("mailer: textBody or htmlBody required")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("sendgrid API error %d: %s", res.StatusCode, string(snippet))
	}
	return nil
}

func addresses(in []string) []sgAddress {
	if len(in) == 0 {
		return nil
	}
	out := make([]sgAddress, len(in))
	for i, a := range in {
		out[i] = sgAddress{Email: a}
	}
	return out
}
