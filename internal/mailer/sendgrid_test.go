package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/config"
)

func TestSendGridSend(t *testing.T) {
	var gotAuth string
	var gotPayload sgPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sg := NewSendGrid(config.SendGridConfig{
		APIKey:    "SG.test",
		FromEmail: "noreply@smartbuy.test",
	})
	sg.apiURL = srv.URL

	err := sg.Send(context.Background(), Email{
		To:       []string{"nina@example.test"},
		Subject:  "Your ticket was updated",
		TextBody: "We replied to your ticket.",
		HTMLBody: "<p>We replied to your ticket.</p>",
	})
	if err != nil {
		t.Fatalf("Send returned unexpected error: %v", err)
	}

	if gotAuth != "Bearer SG.test" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotPayload.From.Email != "noreply@smartbuy.test" {
		t.Errorf("from = %q", gotPayload.From.Email)
	}
	if len(gotPayload.Personalizations) != 1 ||
		len(gotPayload.Personalizations[0].To) != 1 ||
		gotPayload.Personalizations[0].To[0].Email != "nina@example.test" {
		t.Errorf("personalizations = %+v", gotPayload.Personalizations)
	}
	// text/plain must come before text/html
	if len(gotPayload.Content) != 2 ||
		gotPayload.Content[0].Type != "text/plain" ||
		gotPayload.Content[1].Type != "text/html" {
		t.Errorf("content = %+v", gotPayload.Content)
	}
}

func TestSendGridSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"The provided authorization grant is invalid"}]}`))
	}))
	defer srv.Close()

	sg := NewSendGrid(config.SendGridConfig{APIKey: "SG.bad", FromEmail: "noreply@smartbuy.test"})
	sg.apiURL = srv.URL

	err := sg.Send(context.Background(), Email{
		To:       []string{"nina@example.test"},
		Subject:  "x",
		TextBody: "y",
	})
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}

func TestSendGridSend_Validation(t *testing.T) {
	sg := NewSendGrid(config.SendGridConfig{APIKey: "SG.test", FromEmail: "noreply@smartbuy.test"})

	if err := sg.Send(context.Background(), Email{Subject: "x", TextBody: "y"}); err == nil {
		t.Error("expected an error without recipients")
	}
	if err := sg.Send(context.Background(), Email{To: []string{"a@b.test"}, Subject: "x"}); err == nil {
		t.Error("expected an error without any body")
	}
}
